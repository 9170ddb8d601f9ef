package contribution

import (
	"errors"
	"testing"
	"time"
)

func TestAddUpdateDelete(t *testing.T) {
	b := NewBook()
	date := time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)

	c, err := New(date, "VARUN", "12", "sponsorship", "Summer Cup prizes", 2000, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b.Add(c)

	updated, err := b.Update(c.ID, date, "VARUN", "12", "sponsorship", "Summer Cup prizes and trophies", 2500, "rcpt-3")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Amount != 2500 || updated.Purpose != "Summer Cup prizes and trophies" {
		t.Errorf("Update result = %+v", updated)
	}

	if err := b.Delete(c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := b.Delete(c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(time.Now(), "", "12", "donation", "x", 100, ""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("empty name: got %v", err)
	}
	if _, err := New(time.Now(), "X", "12", "donation", "x", -1, ""); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative amount: got %v", err)
	}
}

func TestByTypeAndTotal(t *testing.T) {
	b := NewBook()
	now := time.Now()
	for _, tc := range []struct {
		name, typ string
		amount    int64
	}{
		{"VARUN", "sponsorship", 2000},
		{"BINU", "donation", 500},
		{"JOSEPH", "donation", 700},
	} {
		c, err := New(now, tc.name, "", tc.typ, "", tc.amount, "")
		if err != nil {
			t.Fatal(err)
		}
		b.Add(c)
	}

	if got := b.ByType("donation"); len(got) != 2 {
		t.Errorf("ByType = %d, want 2", len(got))
	}
	if b.Total() != 3200 {
		t.Errorf("Total = %d, want 3200", b.Total())
	}
}
