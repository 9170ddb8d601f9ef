package pending

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const StatusPending = "Pending"

// MembershipFeeType is the fee-type label for a pending membership due, as
// opposed to an annual fee-year label.
const MembershipFeeType = "Membership Fee"

// Fee is an explicitly tracked outstanding obligation, created by an admin
// and consumed when the fee is collected.
type Fee struct {
	ID          uuid.UUID `json:"id"`
	MemberID    uuid.UUID `json:"memberId"`
	MemberName  string    `json:"memberName,omitempty"`
	MemberVilla string    `json:"memberVilla,omitempty"`
	FeeType     string    `json:"feeType"`
	Amount      int64     `json:"amount"` // Amount in rupees
	DueDate     time.Time `json:"dueDate"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedDate time.Time `json:"createdDate"`
}

var (
	ErrDuplicate = errors.New("pending fee of this type already exists for the member")
	ErrNotFound  = errors.New("pending fee not found")
)

func New(memberID uuid.UUID, memberName, memberVilla, feeType string, amount int64, dueDate time.Time, notes string) Fee {
	return Fee{
		ID:          uuid.New(),
		MemberID:    memberID,
		MemberName:  memberName,
		MemberVilla: memberVilla,
		FeeType:     feeType,
		Amount:      amount,
		DueDate:     dueDate,
		Notes:       notes,
		Status:      StatusPending,
		CreatedDate: time.Now().UTC(),
	}
}

// Tracker queues pending fees. At most one entry may exist per
// (member, fee type) pair at a time; the check runs only at creation.
type Tracker struct {
	fees []Fee
}

func NewTracker(fees ...Fee) *Tracker {
	t := &Tracker{}
	t.fees = append(t.fees, fees...)
	return t
}

func (t *Tracker) Add(f Fee) error {
	for _, existing := range t.fees {
		if existing.MemberID == f.MemberID && existing.FeeType == f.FeeType {
			return fmt.Errorf("%s for member %s: %w", f.FeeType, f.MemberID, ErrDuplicate)
		}
	}
	t.fees = append(t.fees, f)
	return nil
}

func (t *Tracker) Get(id uuid.UUID) (Fee, error) {
	for _, f := range t.fees {
		if f.ID == id {
			return f, nil
		}
	}
	return Fee{}, fmt.Errorf("pending fee %s: %w", id, ErrNotFound)
}

// Remove deletes the entry without collecting it.
func (t *Tracker) Remove(id uuid.UUID) error {
	for i, f := range t.fees {
		if f.ID == id {
			t.fees = append(t.fees[:i], t.fees[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("pending fee %s: %w", id, ErrNotFound)
}

func (t *Tracker) ForMember(memberID uuid.UUID) []Fee {
	var out []Fee
	for _, f := range t.fees {
		if f.MemberID == memberID {
			out = append(out, f)
		}
	}
	return out
}

func (t *Tracker) All() []Fee {
	out := make([]Fee, len(t.fees))
	copy(out, t.fees)
	return out
}

func (t *Tracker) Len() int {
	return len(t.fees)
}
