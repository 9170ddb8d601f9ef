package expense

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      int64     `json:"amount"` // Amount in rupees
	PaidBy      string    `json:"paidBy"`
	Status      string    `json:"status"`
	Receipt     string    `json:"receipt,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

var (
	ErrNotFound         = errors.New("expense not found")
	ErrEmptyDescription = errors.New("description can't be empty")
	ErrInvalidAmount    = errors.New("amount must be positive")
)

func New(date time.Time, description, category string, amount int64, paidBy, status, receipt string) (Expense, error) {
	if description == "" {
		return Expense{}, ErrEmptyDescription
	}
	if amount <= 0 {
		return Expense{}, ErrInvalidAmount
	}

	return Expense{
		ID:          uuid.New(),
		Date:        date,
		Description: description,
		Category:    category,
		Amount:      amount,
		PaidBy:      paidBy,
		Status:      status,
		Receipt:     receipt,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Book holds the club's expense records.
type Book struct {
	expenses []Expense
}

func NewBook(expenses ...Expense) *Book {
	b := &Book{}
	b.expenses = append(b.expenses, expenses...)
	return b
}

func (b *Book) Add(e Expense) Expense {
	b.expenses = append(b.expenses, e)
	return e
}

func (b *Book) Get(id uuid.UUID) (Expense, error) {
	for _, e := range b.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return Expense{}, fmt.Errorf("expense %s: %w", id, ErrNotFound)
}

// Update replaces the editable fields of an existing expense in place.
func (b *Book) Update(id uuid.UUID, date time.Time, description, category string, amount int64, paidBy, status, receipt string) (Expense, error) {
	if description == "" {
		return Expense{}, ErrEmptyDescription
	}
	if amount <= 0 {
		return Expense{}, ErrInvalidAmount
	}

	for i := range b.expenses {
		if b.expenses[i].ID == id {
			e := &b.expenses[i]
			e.Date = date
			e.Description = description
			e.Category = category
			e.Amount = amount
			e.PaidBy = paidBy
			e.Status = status
			e.Receipt = receipt
			return *e, nil
		}
	}
	return Expense{}, fmt.Errorf("expense %s: %w", id, ErrNotFound)
}

func (b *Book) Delete(id uuid.UUID) error {
	for i, e := range b.expenses {
		if e.ID == id {
			b.expenses = append(b.expenses[:i], b.expenses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("expense %s: %w", id, ErrNotFound)
}

func (b *Book) ByCategory(category string) []Expense {
	var out []Expense
	for _, e := range b.expenses {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

func (b *Book) ByStatus(status string) []Expense {
	var out []Expense
	for _, e := range b.expenses {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out
}

func (b *Book) All() []Expense {
	out := make([]Expense, len(b.expenses))
	copy(out, b.expenses)
	return out
}

func (b *Book) Total() int64 {
	var total int64
	for _, e := range b.expenses {
		total += e.Amount
	}
	return total
}
