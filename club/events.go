package club

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/passionhills/clubledger/event"
)

// eventStart combines the separate date and time form fields. A missing time
// means the start of the day.
func eventStart(date, clock string) time.Time {
	t := parseDate(date)
	if clock == "" {
		return t
	}
	hm, err := time.Parse("15:04", clock)
	if err != nil {
		return t
	}
	return t.Add(time.Duration(hm.Hour())*time.Hour + time.Duration(hm.Minute())*time.Minute)
}

func (e *Engine) AddEvent(in EventInput) (event.Event, error) {
	if err := validateInput(in); err != nil {
		return event.Event{}, err
	}

	ev, err := event.New(in.Title, in.Type, eventStart(in.Date, in.Time), in.Location, in.Description, in.Priority)
	if err != nil {
		return event.Event{}, fmt.Errorf("adding event: %w", err)
	}
	e.events.Add(ev)

	e.record("Event Created", fmt.Sprintf("Created new event: %s", ev.Title))
	return ev, nil
}

func (e *Engine) UpdateEvent(id uuid.UUID, in EventInput) (event.Event, error) {
	if err := validateInput(in); err != nil {
		return event.Event{}, err
	}

	ev, err := e.events.Update(id, in.Title, in.Type, eventStart(in.Date, in.Time), in.Location, in.Description, in.Priority)
	if err != nil {
		return event.Event{}, err
	}

	e.record("Event Updated", fmt.Sprintf("Updated event: %s", ev.Title))
	return ev, nil
}

// SetEventActive cancels or reinstates an event without deleting it.
func (e *Engine) SetEventActive(id uuid.UUID, active bool) (event.Event, error) {
	ev, err := e.events.SetActive(id, active)
	if err != nil {
		return event.Event{}, err
	}

	state := "Cancelled"
	if active {
		state = "Reinstated"
	}
	e.record("Event Updated", fmt.Sprintf("%s event: %s", state, ev.Title))
	return ev, nil
}

func (e *Engine) DeleteEvent(id uuid.UUID) error {
	ev, err := e.events.Get(id)
	if err != nil {
		return err
	}
	if err := e.events.Delete(id); err != nil {
		return err
	}
	e.record("Event Deleted", fmt.Sprintf("Deleted event: %s", ev.Title))
	return nil
}

func (e *Engine) Events(typ, priority string) []event.Event {
	return e.events.Filtered(typ, priority)
}

// UpcomingEvents lists active events starting within the next days days.
func (e *Engine) UpcomingEvents(days int) []event.Event {
	return e.events.Upcoming(e.now(), days)
}
