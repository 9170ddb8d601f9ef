package invoice

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/passionhills/clubledger/feeyear"
	"github.com/passionhills/clubledger/member"
)

var years = []feeyear.FeeYear{
	{Year: 2023, Amount: 500, Description: "Annual Fee 2023", IsActive: true},
	{Year: 2024, Amount: 500, Description: "Annual Fee 2024", IsActive: true},
	{Year: 2025, Amount: 600, Description: "Annual Fee 2025", IsActive: true},
}

func TestGenerateBillsUnpaidYears(t *testing.T) {
	m, err := member.New("RENITH", "25", "FOUNDING MEMBER", 3000, time.Now(), []int{2023, 2024, 2025})
	if err != nil {
		t.Fatal(err)
	}
	m.Fees[2023] = 500 // paid

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	inv, err := Generate(m, years, now)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(inv.Items) != 2 {
		t.Fatalf("Items = %d, want 2", len(inv.Items))
	}
	if inv.Items[0].Description != "Annual Fee 2024" || inv.Items[1].Description != "Annual Fee 2025" {
		t.Errorf("Items = %+v", inv.Items)
	}
	if inv.Total != 1100 {
		t.Errorf("Total = %d, want 1100", inv.Total)
	}
	if !strings.HasPrefix(inv.Number, "INV-") {
		t.Errorf("Number = %q", inv.Number)
	}
	if inv.Status != StatusGenerated {
		t.Errorf("Status = %q", inv.Status)
	}
}

func TestGenerateFailsWhenFullyPaid(t *testing.T) {
	m, err := member.New("BINU", "23", "FOUNDING MEMBER", 3000, time.Now(), []int{2023})
	if err != nil {
		t.Fatal(err)
	}
	m.Fees[2023] = 500

	_, err = Generate(m, years[:1], time.Now())
	if !errors.Is(err, ErrNothingUnpaid) {
		t.Errorf("got %v, want ErrNothingUnpaid", err)
	}
}

func TestBookDelete(t *testing.T) {
	m, err := member.New("X", "1", "NEW MEMBER", 3000, time.Now(), []int{2023})
	if err != nil {
		t.Fatal(err)
	}
	inv, err := Generate(m, years[:1], time.Now())
	if err != nil {
		t.Fatal(err)
	}

	b := NewBook()
	b.Add(inv)
	if err := b.Delete(inv.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := b.Delete(inv.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}
