package event

import (
	"testing"
	"time"
)

func mustEvent(t *testing.T, c *Calendar, title string, startsAt time.Time, typ, priority string) Event {
	t.Helper()
	e, err := New(title, typ, startsAt, "Clubhouse", "", priority)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c.Add(e)
}

func TestUpcomingWindowAndOrder(t *testing.T) {
	c := NewCalendar()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	later := mustEvent(t, c, "Monthly Meeting", now.AddDate(0, 0, 5), "meeting", PriorityMedium)
	soon := mustEvent(t, c, "Doubles Night", now.AddDate(0, 0, 1), "tournament", PriorityHigh)
	mustEvent(t, c, "AGM", now.AddDate(0, 0, 30), "meeting", PriorityHigh)      // outside window
	mustEvent(t, c, "Old Social", now.AddDate(0, 0, -1), "social", PriorityLow) // already past

	got := c.Upcoming(now, 7)
	if len(got) != 2 {
		t.Fatalf("Upcoming = %d events, want 2", len(got))
	}
	if got[0].ID != soon.ID || got[1].ID != later.ID {
		t.Errorf("wrong order: %s, %s", got[0].Title, got[1].Title)
	}
}

func TestUpcomingSkipsInactive(t *testing.T) {
	c := NewCalendar()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	e := mustEvent(t, c, "Cancelled Cup", now.AddDate(0, 0, 2), "tournament", PriorityHigh)

	if _, err := c.SetActive(e.ID, false); err != nil {
		t.Fatal(err)
	}

	if got := c.Upcoming(now, 7); len(got) != 0 {
		t.Errorf("inactive event listed: %v", got)
	}
}

func TestFiltered(t *testing.T) {
	c := NewCalendar()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mustEvent(t, c, "Doubles Night", now.AddDate(0, 0, 1), "tournament", PriorityHigh)
	mustEvent(t, c, "Monthly Meeting", now.AddDate(0, 0, 2), "meeting", PriorityMedium)
	mustEvent(t, c, "Summer Cup", now.AddDate(0, 0, 3), "tournament", PriorityMedium)

	if got := c.Filtered("tournament", ""); len(got) != 2 {
		t.Errorf("type filter = %d, want 2", len(got))
	}
	if got := c.Filtered("tournament", PriorityHigh); len(got) != 1 {
		t.Errorf("type+priority filter = %d, want 1", len(got))
	}

	// Newest first.
	got := c.Filtered("", "")
	if len(got) != 3 || !got[0].StartsAt.After(got[1].StartsAt) {
		t.Errorf("Filtered order wrong: %v", got)
	}
}

func TestNewDefaultsPriority(t *testing.T) {
	e, err := New("Practice", "training", time.Now(), "", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if e.Priority != PriorityMedium {
		t.Errorf("Priority = %q, want medium", e.Priority)
	}

	if _, err := New("", "training", time.Now(), "", "", ""); err == nil {
		t.Error("empty title accepted")
	}
}
