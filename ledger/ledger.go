package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Transaction is one audit-log entry: a fee collection or a manual
// adjustment. Entries are never mutated after creation; corrections are
// recorded as new adjustment entries.
type Transaction struct {
	ID         uuid.UUID `json:"id"`
	MemberID   uuid.UUID `json:"memberId"`
	MemberName string    `json:"memberName,omitempty"`
	Type       string    `json:"type"`
	Amount     int64     `json:"amount"` // Amount in rupees, negative for downward adjustments
	Date       time.Time `json:"date"`
	Timestamp  time.Time `json:"timestamp"`

	IsAdjustment     bool   `json:"isAdjustment,omitempty"`
	AdjustmentReason string `json:"adjustmentReason,omitempty"`
	AdjustmentNotes  string `json:"adjustmentNotes,omitempty"`
	OriginalAmount   int64  `json:"originalAmount,omitempty"`
	NewAmount        int64  `json:"newAmount,omitempty"`

	FromPending  bool      `json:"fromPending,omitempty"`
	PendingFeeID uuid.UUID `json:"pendingFeeId,omitempty"`
}

var ErrEmptyType = errors.New("transaction type can't be empty")

// AnnualKey is the transaction type for an annual fee collection.
func AnnualKey(year int) string {
	return fmt.Sprintf("annual_%d", year)
}

// AdjustmentKey is the transaction type for a manual fee correction.
func AdjustmentKey(year int) string {
	return fmt.Sprintf("fee_adjustment_%d", year)
}

// TypeKey normalizes a free-form fee label ("Membership Fee") into a
// transaction type key ("membership_fee").
func TypeKey(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(label), "_"))
}

func NewCollection(memberID uuid.UUID, memberName, typeKey string, amount int64, date time.Time) (Transaction, error) {
	if typeKey == "" {
		return Transaction{}, ErrEmptyType
	}

	return Transaction{
		ID:         uuid.New(),
		MemberID:   memberID,
		MemberName: memberName,
		Type:       typeKey,
		Amount:     amount,
		Date:       date,
		Timestamp:  time.Now().UTC(),
	}, nil
}

func NewAdjustment(memberID uuid.UUID, memberName string, year int, oldAmount, newAmount int64, reason, notes string, date time.Time) Transaction {
	return Transaction{
		ID:               uuid.New(),
		MemberID:         memberID,
		MemberName:       memberName,
		Type:             AdjustmentKey(year),
		Amount:           newAmount - oldAmount,
		Date:             date,
		Timestamp:        time.Now().UTC(),
		IsAdjustment:     true,
		AdjustmentReason: reason,
		AdjustmentNotes:  notes,
		OriginalAmount:   oldAmount,
		NewAmount:        newAmount,
	}
}
