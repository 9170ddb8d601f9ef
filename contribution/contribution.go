package contribution

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Contribution is a voluntary payment to the club outside the fee schedule,
// for example a sponsorship or a donation toward an event.
type Contribution struct {
	ID              uuid.UUID `json:"id"`
	Date            time.Time `json:"date"`
	ContributorName string    `json:"contributorName"`
	Villa           string    `json:"villa"`
	Type            string    `json:"type"`
	Purpose         string    `json:"purpose"`
	Amount          int64     `json:"amount"` // Amount in rupees
	Receipt         string    `json:"receipt,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

var (
	ErrNotFound      = errors.New("contribution not found")
	ErrEmptyName     = errors.New("contributor name can't be empty")
	ErrInvalidAmount = errors.New("amount must be positive")
)

func New(date time.Time, contributorName, villa, typ, purpose string, amount int64, receipt string) (Contribution, error) {
	if contributorName == "" {
		return Contribution{}, ErrEmptyName
	}
	if amount <= 0 {
		return Contribution{}, ErrInvalidAmount
	}

	return Contribution{
		ID:              uuid.New(),
		Date:            date,
		ContributorName: contributorName,
		Villa:           villa,
		Type:            typ,
		Purpose:         purpose,
		Amount:          amount,
		Receipt:         receipt,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

type Book struct {
	contributions []Contribution
}

func NewBook(contributions ...Contribution) *Book {
	b := &Book{}
	b.contributions = append(b.contributions, contributions...)
	return b
}

func (b *Book) Add(c Contribution) Contribution {
	b.contributions = append(b.contributions, c)
	return c
}

func (b *Book) Get(id uuid.UUID) (Contribution, error) {
	for _, c := range b.contributions {
		if c.ID == id {
			return c, nil
		}
	}
	return Contribution{}, fmt.Errorf("contribution %s: %w", id, ErrNotFound)
}

func (b *Book) Update(id uuid.UUID, date time.Time, contributorName, villa, typ, purpose string, amount int64, receipt string) (Contribution, error) {
	if contributorName == "" {
		return Contribution{}, ErrEmptyName
	}
	if amount <= 0 {
		return Contribution{}, ErrInvalidAmount
	}

	for i := range b.contributions {
		if b.contributions[i].ID == id {
			c := &b.contributions[i]
			c.Date = date
			c.ContributorName = contributorName
			c.Villa = villa
			c.Type = typ
			c.Purpose = purpose
			c.Amount = amount
			c.Receipt = receipt
			return *c, nil
		}
	}
	return Contribution{}, fmt.Errorf("contribution %s: %w", id, ErrNotFound)
}

func (b *Book) Delete(id uuid.UUID) error {
	for i, c := range b.contributions {
		if c.ID == id {
			b.contributions = append(b.contributions[:i], b.contributions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("contribution %s: %w", id, ErrNotFound)
}

func (b *Book) ByType(typ string) []Contribution {
	var out []Contribution
	for _, c := range b.contributions {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}

func (b *Book) All() []Contribution {
	out := make([]Contribution, len(b.contributions))
	copy(out, b.contributions)
	return out
}

func (b *Book) Total() int64 {
	var total int64
	for _, c := range b.contributions {
		total += c.Amount
	}
	return total
}
