package activity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is one line of the club's audit feed ("Fee Collected", "Member
// Added", ...).
type Entry struct {
	ID          uuid.UUID         `json:"id"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type EntryOption func(*Entry)

func WithType(entryType string) EntryOption {
	return func(e *Entry) {
		e.Type = entryType
	}
}

func WithDescription(description string) EntryOption {
	return func(e *Entry) {
		e.Description = description
	}
}

func WithMetadata(metadata map[string]string) EntryOption {
	return func(e *Entry) {
		e.Metadata = metadata
	}
}

func NewEntry(opts ...EntryOption) Entry {
	e := Entry{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Metadata:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

type Logger interface {
	Save(ctx context.Context, e Entry) error
	GetByType(ctx context.Context, entryType string) ([]Entry, error)
}
