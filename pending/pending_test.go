package pending

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAddRejectsDuplicateMemberAndType(t *testing.T) {
	tr := NewTracker()
	memberID := uuid.New()
	due := time.Now().AddDate(0, 0, 30)

	if err := tr.Add(New(memberID, "BINU", "23", "Annual Fee 2024", 500, due, "")); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	err := tr.Add(New(memberID, "BINU", "23", "Annual Fee 2024", 500, due, ""))
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate: got %v, want ErrDuplicate", err)
	}

	// Different type for the same member is fine.
	if err := tr.Add(New(memberID, "BINU", "23", MembershipFeeType, 3000, due, "")); err != nil {
		t.Errorf("different type: %v", err)
	}
	// Same type for a different member is fine.
	if err := tr.Add(New(uuid.New(), "JOSEPH", "20", "Annual Fee 2024", 500, due, "")); err != nil {
		t.Errorf("different member: %v", err)
	}
}

func TestRemoveFreesTheSlot(t *testing.T) {
	tr := NewTracker()
	memberID := uuid.New()
	f := New(memberID, "RENITH", "25", "Annual Fee 2025", 500, time.Now(), "")
	if err := tr.Add(f); err != nil {
		t.Fatal(err)
	}

	if err := tr.Remove(f.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := tr.Remove(f.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second remove: got %v, want ErrNotFound", err)
	}

	// The (member, type) pair is usable again after removal.
	if err := tr.Add(New(memberID, "RENITH", "25", "Annual Fee 2025", 500, time.Now(), "")); err != nil {
		t.Errorf("re-add after remove: %v", err)
	}
}

func TestGetAndForMember(t *testing.T) {
	tr := NewTracker()
	memberID := uuid.New()
	f := New(memberID, "JAIMON", "11/6", "Tournament Fee", 150, time.Now(), "friendly cup")
	if err := tr.Add(f); err != nil {
		t.Fatal(err)
	}

	got, err := tr.Get(f.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusPending {
		t.Errorf("Status = %q, want %q", got.Status, StatusPending)
	}

	if _, err := tr.Get(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: got %v, want ErrNotFound", err)
	}

	if list := tr.ForMember(memberID); len(list) != 1 {
		t.Errorf("ForMember = %d entries, want 1", len(list))
	}
}
