package event

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Event is a club calendar entry: a tournament, meeting, maintenance slot
// and so on.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	StartsAt    time.Time `json:"startsAt"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

var (
	ErrNotFound   = errors.New("event not found")
	ErrEmptyTitle = errors.New("title can't be empty")
)

func New(title, typ string, startsAt time.Time, location, description, priority string) (Event, error) {
	if title == "" {
		return Event{}, ErrEmptyTitle
	}
	if priority == "" {
		priority = PriorityMedium
	}

	return Event{
		ID:          uuid.New(),
		Title:       title,
		Type:        typ,
		StartsAt:    startsAt,
		Location:    location,
		Description: description,
		Priority:    priority,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

type Calendar struct {
	events []Event
}

func NewCalendar(events ...Event) *Calendar {
	c := &Calendar{}
	c.events = append(c.events, events...)
	return c
}

func (c *Calendar) Add(e Event) Event {
	c.events = append(c.events, e)
	return e
}

func (c *Calendar) Get(id uuid.UUID) (Event, error) {
	for _, e := range c.events {
		if e.ID == id {
			return e, nil
		}
	}
	return Event{}, fmt.Errorf("event %s: %w", id, ErrNotFound)
}

func (c *Calendar) Update(id uuid.UUID, title, typ string, startsAt time.Time, location, description, priority string) (Event, error) {
	if title == "" {
		return Event{}, ErrEmptyTitle
	}

	for i := range c.events {
		if c.events[i].ID == id {
			e := &c.events[i]
			e.Title = title
			e.Type = typ
			e.StartsAt = startsAt
			e.Location = location
			e.Description = description
			e.Priority = priority
			return *e, nil
		}
	}
	return Event{}, fmt.Errorf("event %s: %w", id, ErrNotFound)
}

// SetActive marks an event cancelled (false) or reinstated (true) without
// losing its record.
func (c *Calendar) SetActive(id uuid.UUID, active bool) (Event, error) {
	for i := range c.events {
		if c.events[i].ID == id {
			c.events[i].IsActive = active
			return c.events[i], nil
		}
	}
	return Event{}, fmt.Errorf("event %s: %w", id, ErrNotFound)
}

func (c *Calendar) Delete(id uuid.UUID) error {
	for i, e := range c.events {
		if e.ID == id {
			c.events = append(c.events[:i], c.events[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("event %s: %w", id, ErrNotFound)
}

// Upcoming returns active events starting within the window [now, now+days],
// soonest first.
func (c *Calendar) Upcoming(now time.Time, days int) []Event {
	end := now.AddDate(0, 0, days)

	var out []Event
	for _, e := range c.events {
		if !e.IsActive {
			continue
		}
		if e.StartsAt.Before(now) || e.StartsAt.After(end) {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartsAt.Before(out[j].StartsAt)
	})
	return out
}

// Filtered returns active events matching the optional type and priority
// filters, newest first. Empty filter values match everything.
func (c *Calendar) Filtered(typ, priority string) []Event {
	var out []Event
	for _, e := range c.events {
		if !e.IsActive {
			continue
		}
		if typ != "" && e.Type != typ {
			continue
		}
		if priority != "" && e.Priority != priority {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartsAt.After(out[j].StartsAt)
	})
	return out
}

func (c *Calendar) All() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}
