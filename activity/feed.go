package activity

import (
	"context"
	"sync"
)

// Feed is an in-memory Logger. The mutex only matters when a Worker writes
// from its own goroutine; engine callers are single-threaded.
type Feed struct {
	mu      sync.Mutex
	entries []Entry
}

func NewFeed(entries ...Entry) *Feed {
	f := &Feed{}
	f.entries = append(f.entries, entries...)
	return f
}

func (f *Feed) Save(_ context.Context, e Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, e)
	return nil
}

func (f *Feed) GetByType(_ context.Context, entryType string) ([]Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := make([]Entry, 0)
	for _, e := range f.entries {
		if e.Type == entryType {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (f *Feed) All() []Entry {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}
