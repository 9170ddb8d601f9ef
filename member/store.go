package member

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Store is the ordered in-memory member collection. It is not safe for
// concurrent use; the engine serializes access.
type Store struct {
	members []Member
}

func NewStore(members ...Member) *Store {
	s := &Store{}
	for _, m := range members {
		s.members = append(s.members, clone(m))
	}
	return s
}

func (s *Store) Add(m Member) Member {
	s.members = append(s.members, clone(m))
	return clone(m)
}

func (s *Store) Get(id uuid.UUID) (Member, error) {
	for _, m := range s.members {
		if m.ID == id {
			return clone(m), nil
		}
	}
	return Member{}, fmt.Errorf("member %s: %w", id, ErrNotFound)
}

// Update holds the fields a caller may patch. Nil means "leave as is".
type Update struct {
	Name          *string
	VillaNo       *string
	Status        *string
	MembershipFee *int64
	IsActive      *bool
}

// Update merges the patch into the member. TotalPaid is recomputed only when
// the membership fee changed, using the supplied registered years.
func (s *Store) Update(id uuid.UUID, patch Update, years []int) (Member, error) {
	i := s.index(id)
	if i < 0 {
		return Member{}, fmt.Errorf("member %s: %w", id, ErrNotFound)
	}

	m := &s.members[i]
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.VillaNo != nil {
		m.VillaNo = *patch.VillaNo
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.IsActive != nil {
		m.IsActive = *patch.IsActive
	}
	if patch.MembershipFee != nil {
		m.MembershipFee = *patch.MembershipFee
		m.TotalPaid = ComputeTotalPaid(*m, years)
	}

	return clone(*m), nil
}

// Delete removes the member. Transactions and pending fees referencing the
// member are left in place.
func (s *Store) Delete(id uuid.UUID) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("member %s: %w", id, ErrNotFound)
	}
	s.members = slices.Delete(s.members, i, i+1)
	return nil
}

// SetFee records the amount paid for one registered year and recomputes
// TotalPaid. Amount 0 marks the year unpaid again.
func (s *Store) SetFee(id uuid.UUID, year int, amount int64, years []int) (Member, error) {
	if !slices.Contains(years, year) {
		return Member{}, fmt.Errorf("year %d: %w", year, ErrYearNotRegistered)
	}
	if amount < 0 {
		return Member{}, ErrNegativeFee
	}

	i := s.index(id)
	if i < 0 {
		return Member{}, fmt.Errorf("member %s: %w", id, ErrNotFound)
	}

	m := &s.members[i]
	if m.Fees == nil {
		m.Fees = make(map[int]int64)
	}
	m.Fees[year] = amount
	m.TotalPaid = ComputeTotalPaid(*m, years)

	return clone(*m), nil
}

// SetMembershipFee overwrites the member's membership fee and recomputes
// TotalPaid.
func (s *Store) SetMembershipFee(id uuid.UUID, amount int64, years []int) (Member, error) {
	i := s.index(id)
	if i < 0 {
		return Member{}, fmt.Errorf("member %s: %w", id, ErrNotFound)
	}

	m := &s.members[i]
	m.MembershipFee = amount
	m.TotalPaid = ComputeTotalPaid(*m, years)

	return clone(*m), nil
}

// BackfillYear adds fee[year]=0 to every member that does not have the year
// yet. TotalPaid is unchanged since 0 contributes nothing.
func (s *Store) BackfillYear(year int) {
	for i := range s.members {
		if s.members[i].Fees == nil {
			s.members[i].Fees = make(map[int]int64)
		}
		if _, ok := s.members[i].Fees[year]; !ok {
			s.members[i].Fees[year] = 0
		}
	}
}

// RemoveYear deletes fee[year] from every member and recomputes TotalPaid
// against the years that remain registered.
func (s *Store) RemoveYear(year int, remaining []int) {
	for i := range s.members {
		delete(s.members[i].Fees, year)
		s.members[i].TotalPaid = ComputeTotalPaid(s.members[i], remaining)
	}
}

// AnyPaidForYear reports whether any member has a non-zero amount recorded
// for the year. Callers use it to confirm destructive fee-year deletion.
func (s *Store) AnyPaidForYear(year int) bool {
	for _, m := range s.members {
		if m.Fees[year] > 0 {
			return true
		}
	}
	return false
}

func (s *Store) All() []Member {
	out := make([]Member, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, clone(m))
	}
	return out
}

func (s *Store) Len() int {
	return len(s.members)
}

func (s *Store) index(id uuid.UUID) int {
	for i, m := range s.members {
		if m.ID == id {
			return i
		}
	}
	return -1
}
