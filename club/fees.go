package club

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/passionhills/clubledger/feeyear"
	"github.com/passionhills/clubledger/ledger"
	"github.com/passionhills/clubledger/member"
)

// CollectFee records an annual fee payment: it sets the member's amount for
// the year and appends the collection transaction in one step.
func (e *Engine) CollectFee(in CollectFeeInput) (member.Member, ledger.Transaction, error) {
	if err := validateInput(in); err != nil {
		return member.Member{}, ledger.Transaction{}, err
	}

	m, err := e.members.SetFee(in.MemberID, in.Year, in.Amount, e.feeYears.Years())
	if err != nil {
		return member.Member{}, ledger.Transaction{}, err
	}

	t, err := ledger.NewCollection(m.ID, m.Name, ledger.AnnualKey(in.Year), in.Amount, parseDate(in.Date))
	if err != nil {
		return member.Member{}, ledger.Transaction{}, err
	}
	e.ledger.Append(t)

	e.record("Fee Collected", fmt.Sprintf("Collected annual %d ₹%d from %s", in.Year, in.Amount, m.Name))
	return m, t, nil
}

// AdjustFee corrects a member's stored fee-year amount and records a signed
// delta transaction carrying the audit metadata.
func (e *Engine) AdjustFee(in AdjustFeeInput) (member.Member, ledger.Transaction, error) {
	if err := validateInput(in); err != nil {
		return member.Member{}, ledger.Transaction{}, err
	}

	before, err := e.members.Get(in.MemberID)
	if err != nil {
		return member.Member{}, ledger.Transaction{}, err
	}
	oldAmount := before.Fees[in.Year]

	m, err := e.members.SetFee(in.MemberID, in.Year, in.NewAmount, e.feeYears.Years())
	if err != nil {
		return member.Member{}, ledger.Transaction{}, err
	}

	t := ledger.NewAdjustment(m.ID, m.Name, in.Year, oldAmount, in.NewAmount, in.Reason, in.Notes, e.now())
	e.ledger.Append(t)

	e.record("Fee Adjusted", fmt.Sprintf("%s's %d fee changed from ₹%d to ₹%d. Reason: %s",
		m.Name, in.Year, oldAmount, in.NewAmount, in.Reason))
	return m, t, nil
}

// Fee years

// AddFeeYear registers a new annual due and backfills fee[year]=0 on every
// existing member.
func (e *Engine) AddFeeYear(in AddFeeYearInput) (feeyear.FeeYear, error) {
	if err := validateInput(in); err != nil {
		return feeyear.FeeYear{}, err
	}

	fy, err := e.feeYears.Add(in.Year, in.Amount, in.Description)
	if err != nil {
		return feeyear.FeeYear{}, err
	}
	e.members.BackfillYear(in.Year)

	e.record("Fee Year Added", fmt.Sprintf("Added fee year %d with amount ₹%d", fy.Year, fy.Amount))
	return fy, nil
}

func (e *Engine) ToggleFeeYear(year int) (feeyear.FeeYear, error) {
	fy, err := e.feeYears.ToggleActive(year)
	if err != nil {
		return feeyear.FeeYear{}, err
	}

	state := "Deactivated"
	if fy.IsActive {
		state = "Activated"
	}
	e.record("Fee Year Updated", fmt.Sprintf("%s fee year %d", state, year))
	return fy, nil
}

func (e *Engine) UpdateFeeYear(in UpdateFeeYearInput) (feeyear.FeeYear, error) {
	if err := validateInput(in); err != nil {
		return feeyear.FeeYear{}, err
	}

	fy, err := e.feeYears.Update(in.Year, in.Amount, in.Description)
	if err != nil {
		return feeyear.FeeYear{}, err
	}
	e.record("Fee Year Updated", fmt.Sprintf("Updated fee year %d: ₹%d - %s", fy.Year, fy.Amount, fy.Description))
	return fy, nil
}

// DeleteFeeYear unregisters the year, removes it from every member
// (recomputing their totals) and purges the year's collection transactions.
// Deleting an unregistered year is a no-op. Callers that want confirmation
// when payments exist should ask HasPaidMembers first.
func (e *Engine) DeleteFeeYear(year int) error {
	if !e.feeYears.Delete(year) {
		return nil
	}

	e.members.RemoveYear(year, e.feeYears.Years())
	e.ledger.PurgeByType(ledger.AnnualKey(year))

	e.record("Fee Year Deleted", fmt.Sprintf("Deleted fee year %d", year))
	return nil
}

// HasPaidMembers reports whether any member already paid toward the year,
// so the caller can confirm before a destructive DeleteFeeYear.
func (e *Engine) HasPaidMembers(year int) bool {
	return e.members.AnyPaidForYear(year)
}

func (e *Engine) FeeYears() []feeyear.FeeYear {
	return e.feeYears.All()
}

func (e *Engine) ActiveFeeYears() []feeyear.FeeYear {
	return e.feeYears.Active()
}

// Transactions

func (e *Engine) Transactions() []ledger.Transaction {
	return e.ledger.All()
}

func (e *Engine) TransactionsForMember(id uuid.UUID) []ledger.Transaction {
	return e.ledger.ByMember(id)
}
