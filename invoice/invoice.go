package invoice

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/passionhills/clubledger/feeyear"
	"github.com/passionhills/clubledger/member"
)

const StatusGenerated = "Generated"

type LineItem struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"` // Amount in rupees
}

// Invoice bills a member for every fee year still unpaid on their record,
// priced at the registry's configured amount for that year.
type Invoice struct {
	ID          uuid.UUID  `json:"id"`
	Number      string     `json:"invoiceNumber"`
	MemberID    uuid.UUID  `json:"memberId"`
	MemberName  string     `json:"memberName"`
	MemberVilla string     `json:"memberVilla"`
	Items       []LineItem `json:"items"`
	Total       int64      `json:"total"`
	Date        time.Time  `json:"date"`
	Status      string     `json:"status"`
}

var (
	ErrNotFound      = errors.New("invoice not found")
	ErrNothingUnpaid = errors.New("member has no unpaid fee years")
)

// Generate builds an invoice from the member's unpaid fee years. It fails
// when every registered year is already paid.
func Generate(m member.Member, years []feeyear.FeeYear, now time.Time) (Invoice, error) {
	inv := Invoice{
		ID:          uuid.New(),
		Number:      fmt.Sprintf("INV-%d", now.UnixMilli()),
		MemberID:    m.ID,
		MemberName:  m.Name,
		MemberVilla: m.VillaNo,
		Date:        now,
		Status:      StatusGenerated,
	}

	for _, fy := range years {
		if m.Fees[fy.Year] != 0 {
			continue
		}
		inv.Items = append(inv.Items, LineItem{Description: fy.Description, Amount: fy.Amount})
		inv.Total += fy.Amount
	}

	if len(inv.Items) == 0 {
		return Invoice{}, fmt.Errorf("member %s: %w", m.ID, ErrNothingUnpaid)
	}

	return inv, nil
}

type Book struct {
	invoices []Invoice
}

func NewBook(invoices ...Invoice) *Book {
	b := &Book{}
	b.invoices = append(b.invoices, invoices...)
	return b
}

func (b *Book) Add(inv Invoice) Invoice {
	b.invoices = append(b.invoices, inv)
	return inv
}

func (b *Book) Get(id uuid.UUID) (Invoice, error) {
	for _, inv := range b.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return Invoice{}, fmt.Errorf("invoice %s: %w", id, ErrNotFound)
}

func (b *Book) Delete(id uuid.UUID) error {
	for i, inv := range b.invoices {
		if inv.ID == id {
			b.invoices = append(b.invoices[:i], b.invoices[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("invoice %s: %w", id, ErrNotFound)
}

func (b *Book) All() []Invoice {
	out := make([]Invoice, len(b.invoices))
	copy(out, b.invoices)
	return out
}
