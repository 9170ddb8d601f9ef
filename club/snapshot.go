package club

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/passionhills/clubledger/activity"
	"github.com/passionhills/clubledger/contribution"
	"github.com/passionhills/clubledger/event"
	"github.com/passionhills/clubledger/expense"
	"github.com/passionhills/clubledger/feeyear"
	"github.com/passionhills/clubledger/invoice"
	"github.com/passionhills/clubledger/ledger"
	"github.com/passionhills/clubledger/member"
	"github.com/passionhills/clubledger/pending"
)

const SnapshotVersion = "2.0"

// Snapshot is the full engine state in the exchange format the club's
// backup files use.
type Snapshot struct {
	Members       []member.Member             `json:"members"`
	Transactions  []ledger.Transaction        `json:"transactions"`
	Invoices      []invoice.Invoice           `json:"invoices"`
	Activities    []activity.Entry            `json:"activities"`
	Expenses      []expense.Expense           `json:"expenses"`
	Contributions []contribution.Contribution `json:"contributions"`
	PendingFees   []pending.Fee               `json:"pendingFees"`
	FeeYears      []feeyear.FeeYear           `json:"feeYears"`
	Events        []event.Event               `json:"events"`
	Settings      Settings                    `json:"settings"`
	ExportDate    time.Time                   `json:"exportDate"`
	Version       string                      `json:"version"`
}

var ErrInvalidSnapshot = errors.New("invalid database file format")

// requiredCollections must be present as arrays on import. pendingFees,
// feeYears and events are optional for compatibility with older backups.
var requiredCollections = []string{
	"members", "transactions", "invoices", "activities", "expenses", "contributions",
}

// Snapshot copies out the entire state. Persistence is coarse-grained by
// design: every save writes the whole snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Members:       e.members.All(),
		Transactions:  e.ledger.All(),
		Invoices:      e.invoices.All(),
		Activities:    e.activities.All(),
		Expenses:      e.expenses.All(),
		Contributions: e.contributions.All(),
		PendingFees:   e.pendingFees.All(),
		FeeYears:      e.feeYears.All(),
		Events:        e.events.All(),
		Settings:      e.settings,
		ExportDate:    e.now(),
		Version:       SnapshotVersion,
	}
}

func (e *Engine) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(e.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// Restore replaces the engine state wholesale. Per-record consistency is not
// re-validated; the snapshot is trusted to be one the engine produced.
func (e *Engine) Restore(s Snapshot) {
	e.members = member.NewStore(s.Members...)
	e.ledger = ledger.NewLog(s.Transactions...)
	e.invoices = invoice.NewBook(s.Invoices...)
	e.activities = activity.NewFeed(s.Activities...)
	e.expenses = expense.NewBook(s.Expenses...)
	e.contributions = contribution.NewBook(s.Contributions...)
	e.pendingFees = pending.NewTracker(s.PendingFees...)
	e.feeYears = feeyear.NewRegistry(s.FeeYears...)
	e.events = event.NewCalendar(s.Events...)

	if s.Settings == (Settings{}) {
		e.settings = DefaultSettings()
	} else {
		e.settings = s.Settings
	}
}

// ImportJSON validates the document structure, then replaces engine state
// with its contents. Required collections must be present and array-typed;
// records inside them are not schema-checked.
func (e *Engine) ImportJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	for _, key := range requiredCollections {
		value, ok := raw[key]
		if !ok || !isJSONArray(value) {
			return fmt.Errorf("%w: %q missing or not an array", ErrInvalidSnapshot, key)
		}
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	e.Restore(s)
	e.record("Data Import", "Imported database snapshot")
	return nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
