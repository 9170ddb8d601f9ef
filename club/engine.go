// Package club wires the fee ledger stores into one engine. Every logical
// operation that spans more than one store (collecting a fee, deleting a fee
// year, collecting a pending fee) is a single engine method, so callers can
// never observe a half-applied mutation.
package club

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

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

// Engine owns all club state. It is single-threaded: every operation
// completes before the next is processed, so no locking is needed.
type Engine struct {
	members       *member.Store
	feeYears      *feeyear.Registry
	ledger        *ledger.Log
	pendingFees   *pending.Tracker
	expenses      *expense.Book
	contributions *contribution.Book
	events        *event.Calendar
	invoices      *invoice.Book
	activities    *activity.Feed
	settings      Settings

	now func() time.Time
}

type Option func(*Engine)

// WithClock replaces the engine's time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func WithSettings(s Settings) Option {
	return func(e *Engine) {
		e.settings = s
	}
}

// WithFeeYears seeds the registry before any members exist.
func WithFeeYears(years ...feeyear.FeeYear) Option {
	return func(e *Engine) {
		e.feeYears = feeyear.NewRegistry(years...)
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		members:       member.NewStore(),
		feeYears:      feeyear.NewRegistry(),
		ledger:        ledger.NewLog(),
		pendingFees:   pending.NewTracker(),
		expenses:      expense.NewBook(),
		contributions: contribution.NewBook(),
		events:        event.NewCalendar(),
		invoices:      invoice.NewBook(),
		activities:    activity.NewFeed(),
		settings:      DefaultSettings(),
		now:           func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// record appends one activity-feed entry. Feed writes cannot fail, so the
// error is dropped.
func (e *Engine) record(entryType, description string) {
	entry := activity.NewEntry(
		activity.WithType(entryType),
		activity.WithDescription(description),
	)
	_ = e.activities.Save(context.Background(), entry)
}

func (e *Engine) Activities() []activity.Entry {
	return e.activities.All()
}

// Members

func (e *Engine) AddMember(in AddMemberInput) (member.Member, error) {
	if err := validateInput(in); err != nil {
		return member.Member{}, err
	}

	m, err := member.New(in.Name, in.VillaNo, in.Status, in.MembershipFee, parseDate(in.JoinDate), e.feeYears.Years())
	if err != nil {
		return member.Member{}, fmt.Errorf("adding member: %w", err)
	}
	m = e.members.Add(m)
	e.record("Member Added", fmt.Sprintf("Added new member: %s", m.Name))

	return m, nil
}

func (e *Engine) UpdateMember(id uuid.UUID, in UpdateMemberInput) (member.Member, error) {
	if err := validateInput(in); err != nil {
		return member.Member{}, err
	}

	patch := member.Update{
		Name:          in.Name,
		VillaNo:       in.VillaNo,
		Status:        in.Status,
		MembershipFee: in.MembershipFee,
		IsActive:      in.IsActive,
	}
	m, err := e.members.Update(id, patch, e.feeYears.Years())
	if err != nil {
		return member.Member{}, err
	}
	e.record("Member Updated", fmt.Sprintf("Updated details for %s", m.Name))

	return m, nil
}

// DeleteMember removes the member only. Transactions and pending fees that
// reference the member stay behind as orphans.
func (e *Engine) DeleteMember(id uuid.UUID) error {
	m, err := e.members.Get(id)
	if err != nil {
		return err
	}
	if err := e.members.Delete(id); err != nil {
		return err
	}
	e.record("Member Deleted", fmt.Sprintf("Deleted member: %s", m.Name))
	return nil
}

func (e *Engine) Member(id uuid.UUID) (member.Member, error) {
	return e.members.Get(id)
}

func (e *Engine) Members() []member.Member {
	return e.members.All()
}

func (e *Engine) HasUnpaidFee(id uuid.UUID) (bool, error) {
	m, err := e.members.Get(id)
	if err != nil {
		return false, err
	}
	return member.HasUnpaidFee(m, e.feeYears.Years()), nil
}
