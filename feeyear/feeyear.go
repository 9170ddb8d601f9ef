package feeyear

import (
	"errors"
	"fmt"
	"sort"
)

// FeeYear is one configured annual due. Its amount is the expected fee for
// that year, not what any given member actually paid.
type FeeYear struct {
	Year        int    `json:"year"`
	Amount      int64  `json:"amount"` // Expected amount in rupees
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

var (
	ErrDuplicateYear = errors.New("fee year already registered")
	ErrYearNotFound  = errors.New("fee year not found")
)

// Registry holds the configured fee years, ordered by year.
type Registry struct {
	years []FeeYear
}

func NewRegistry(years ...FeeYear) *Registry {
	r := &Registry{}
	for _, fy := range years {
		r.years = append(r.years, fy)
	}
	r.sortYears()
	return r
}

func (r *Registry) Add(year int, amount int64, description string) (FeeYear, error) {
	if r.Has(year) {
		return FeeYear{}, fmt.Errorf("year %d: %w", year, ErrDuplicateYear)
	}

	if description == "" {
		description = fmt.Sprintf("Annual Fee %d", year)
	}

	fy := FeeYear{
		Year:        year,
		Amount:      amount,
		Description: description,
		IsActive:    true,
	}
	r.years = append(r.years, fy)
	r.sortYears()

	return fy, nil
}

func (r *Registry) Get(year int) (FeeYear, bool) {
	for _, fy := range r.years {
		if fy.Year == year {
			return fy, true
		}
	}
	return FeeYear{}, false
}

func (r *Registry) Has(year int) bool {
	_, ok := r.Get(year)
	return ok
}

// Years returns the registered years in ascending order.
func (r *Registry) Years() []int {
	years := make([]int, 0, len(r.years))
	for _, fy := range r.years {
		years = append(years, fy.Year)
	}
	return years
}

// All returns every registered fee year, sorted by year.
func (r *Registry) All() []FeeYear {
	out := make([]FeeYear, len(r.years))
	copy(out, r.years)
	return out
}

// Active returns only the fee years offered in collection and pending-fee
// menus. Inactive years stay in the member schema and still count toward
// totals.
func (r *Registry) Active() []FeeYear {
	var out []FeeYear
	for _, fy := range r.years {
		if fy.IsActive {
			out = append(out, fy)
		}
	}
	return out
}

func (r *Registry) ToggleActive(year int) (FeeYear, error) {
	for i := range r.years {
		if r.years[i].Year == year {
			r.years[i].IsActive = !r.years[i].IsActive
			return r.years[i], nil
		}
	}
	return FeeYear{}, fmt.Errorf("year %d: %w", year, ErrYearNotFound)
}

// Update changes a fee year's expected amount and description. Amounts
// members already paid are captured per member and are not touched.
func (r *Registry) Update(year int, amount int64, description string) (FeeYear, error) {
	for i := range r.years {
		if r.years[i].Year == year {
			r.years[i].Amount = amount
			r.years[i].Description = description
			return r.years[i], nil
		}
	}
	return FeeYear{}, fmt.Errorf("year %d: %w", year, ErrYearNotFound)
}

// Delete removes a year from the registry. It reports whether the year was
// registered; deleting an unknown year is a no-op.
func (r *Registry) Delete(year int) bool {
	for i := range r.years {
		if r.years[i].Year == year {
			r.years = append(r.years[:i], r.years[i+1:]...)
			return true
		}
	}
	return false
}

// YearByDescription resolves a fee-type label like "Annual Fee 2024" back to
// its registered year.
func (r *Registry) YearByDescription(description string) (FeeYear, bool) {
	for _, fy := range r.years {
		if fy.Description == description {
			return fy, true
		}
	}
	return FeeYear{}, false
}

func (r *Registry) Len() int {
	return len(r.years)
}

func (r *Registry) sortYears() {
	sort.Slice(r.years, func(i, j int) bool {
		return r.years[i].Year < r.years[j].Year
	})
}
