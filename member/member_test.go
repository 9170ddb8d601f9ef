package member

import (
	"errors"
	"testing"
	"time"
)

var testYears = []int{2023, 2024, 2025}

func newTestMember(t *testing.T) Member {
	t.Helper()
	m, err := New("PRAVEEN", "16", "FOUNDING MEMBER", 3000, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), testYears)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestNewInitializesAllYearsUnpaid(t *testing.T) {
	m := newTestMember(t)

	if len(m.Fees) != len(testYears) {
		t.Fatalf("got %d fee years, want %d", len(m.Fees), len(testYears))
	}
	for _, year := range testYears {
		if m.Fees[year] != 0 {
			t.Errorf("fee[%d] = %d, want 0", year, m.Fees[year])
		}
	}
	if m.TotalPaid != 3000 {
		t.Errorf("TotalPaid = %d, want membership fee 3000", m.TotalPaid)
	}
	if !m.IsActive {
		t.Error("new member should be active")
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New("", "16", "NEW MEMBER", 3000, time.Now(), testYears); !errors.Is(err, ErrEmptyName) {
		t.Errorf("empty name: got %v, want ErrEmptyName", err)
	}
	if _, err := New("X", "16", "NEW MEMBER", -1, time.Now(), testYears); !errors.Is(err, ErrNegativeFee) {
		t.Errorf("negative fee: got %v, want ErrNegativeFee", err)
	}
}

func TestComputeTotalPaid(t *testing.T) {
	m := newTestMember(t)
	m.Fees[2023] = 500
	m.Fees[2024] = 500

	if got := ComputeTotalPaid(m, testYears); got != 4000 {
		t.Errorf("ComputeTotalPaid = %d, want 4000", got)
	}

	// A year missing from the map counts as 0.
	delete(m.Fees, 2025)
	if got := ComputeTotalPaid(m, testYears); got != 4000 {
		t.Errorf("ComputeTotalPaid with missing year = %d, want 4000", got)
	}
}

func TestHasUnpaidFee(t *testing.T) {
	m := newTestMember(t)
	if !HasUnpaidFee(m, testYears) {
		t.Error("all years at 0 should report unpaid")
	}

	for _, year := range testYears {
		m.Fees[year] = 500
	}
	if HasUnpaidFee(m, testYears) {
		t.Error("all years paid should not report unpaid")
	}
}

func TestStoreSetFee(t *testing.T) {
	s := NewStore()
	m := s.Add(newTestMember(t))

	got, err := s.SetFee(m.ID, 2023, 500, testYears)
	if err != nil {
		t.Fatalf("SetFee: %v", err)
	}
	if got.Fees[2023] != 500 {
		t.Errorf("fee[2023] = %d, want 500", got.Fees[2023])
	}
	if got.TotalPaid != 3500 {
		t.Errorf("TotalPaid = %d, want 3500", got.TotalPaid)
	}

	// Same amount twice leaves the member unchanged.
	again, err := s.SetFee(m.ID, 2023, 500, testYears)
	if err != nil {
		t.Fatalf("SetFee again: %v", err)
	}
	if again.TotalPaid != got.TotalPaid || again.Fees[2023] != got.Fees[2023] {
		t.Errorf("repeated SetFee changed state: %+v vs %+v", again, got)
	}

	// Setting back to 0 marks the year unpaid again.
	back, err := s.SetFee(m.ID, 2023, 0, testYears)
	if err != nil {
		t.Fatalf("SetFee to 0: %v", err)
	}
	if back.TotalPaid != 3000 {
		t.Errorf("TotalPaid after reset = %d, want 3000", back.TotalPaid)
	}
}

func TestStoreSetFeeErrors(t *testing.T) {
	s := NewStore()
	m := s.Add(newTestMember(t))

	if _, err := s.SetFee(m.ID, 2030, 500, testYears); !errors.Is(err, ErrYearNotRegistered) {
		t.Errorf("unregistered year: got %v, want ErrYearNotRegistered", err)
	}
	if _, err := s.SetFee(m.ID, 2023, -5, testYears); !errors.Is(err, ErrNegativeFee) {
		t.Errorf("negative amount: got %v, want ErrNegativeFee", err)
	}

	other := newTestMember(t)
	if _, err := s.SetFee(other.ID, 2023, 500, testYears); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown member: got %v, want ErrNotFound", err)
	}
}

func TestStoreUpdateRecomputesOnlyOnMembershipFeeChange(t *testing.T) {
	s := NewStore()
	m := s.Add(newTestMember(t))
	if _, err := s.SetFee(m.ID, 2023, 500, testYears); err != nil {
		t.Fatal(err)
	}

	name := "PRAVEEN K"
	got, err := s.Update(m.ID, Update{Name: &name}, testYears)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Name != name {
		t.Errorf("Name = %q, want %q", got.Name, name)
	}
	if got.TotalPaid != 3500 {
		t.Errorf("TotalPaid changed on name patch: %d", got.TotalPaid)
	}

	fee := int64(2000)
	got, err = s.Update(m.ID, Update{MembershipFee: &fee}, testYears)
	if err != nil {
		t.Fatalf("Update fee: %v", err)
	}
	if got.TotalPaid != 2500 {
		t.Errorf("TotalPaid = %d, want 2500 after membership fee change", got.TotalPaid)
	}
}

func TestStoreBackfillAndRemoveYear(t *testing.T) {
	s := NewStore()
	var ids []Member
	for n := 0; n < 3; n++ {
		ids = append(ids, s.Add(newTestMember(t)))
	}
	if _, err := s.SetFee(ids[0].ID, 2023, 500, testYears); err != nil {
		t.Fatal(err)
	}

	s.BackfillYear(2026)
	for _, m := range s.All() {
		if amount, ok := m.Fees[2026]; !ok || amount != 0 {
			t.Errorf("member %s: fee[2026] = %d (present %v), want 0", m.Name, amount, ok)
		}
		if m.Fees[2023] != 0 && m.TotalPaid != 3500 {
			t.Errorf("backfill changed TotalPaid: %d", m.TotalPaid)
		}
	}

	s.RemoveYear(2023, []int{2024, 2025, 2026})
	for _, m := range s.All() {
		if _, ok := m.Fees[2023]; ok {
			t.Error("fee[2023] still present after RemoveYear")
		}
		if m.TotalPaid != 3000 {
			t.Errorf("TotalPaid = %d, want 3000 after removing paid year", m.TotalPaid)
		}
	}
}

func TestStoreAnyPaidForYear(t *testing.T) {
	s := NewStore()
	m := s.Add(newTestMember(t))

	if s.AnyPaidForYear(2023) {
		t.Error("no payments yet")
	}
	if _, err := s.SetFee(m.ID, 2023, 500, testYears); err != nil {
		t.Fatal(err)
	}
	if !s.AnyPaidForYear(2023) {
		t.Error("payment recorded, AnyPaidForYear should be true")
	}
}

func TestStoreDelete(t *testing.T) {
	s := NewStore()
	m := s.Add(newTestMember(t))

	if err := s.Delete(m.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(m.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestStoreGetReturnsCopy(t *testing.T) {
	s := NewStore()
	m := s.Add(newTestMember(t))

	got, err := s.Get(m.ID)
	if err != nil {
		t.Fatal(err)
	}
	got.Fees[2023] = 9999

	fresh, err := s.Get(m.ID)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Fees[2023] != 0 {
		t.Error("mutating a returned member leaked into the store")
	}
}
