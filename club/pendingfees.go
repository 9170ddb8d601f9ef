package club

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/passionhills/clubledger/ledger"
	"github.com/passionhills/clubledger/member"
	"github.com/passionhills/clubledger/pending"
)

// AddPendingFee queues an explicit obligation for a member. At most one
// pending fee per (member, fee type) may exist at a time.
func (e *Engine) AddPendingFee(in AddPendingFeeInput) (pending.Fee, error) {
	if err := validateInput(in); err != nil {
		return pending.Fee{}, err
	}

	m, err := e.members.Get(in.MemberID)
	if err != nil {
		return pending.Fee{}, err
	}

	f := pending.New(m.ID, m.Name, m.VillaNo, in.FeeType, in.Amount, parseDate(in.DueDate), in.Notes)
	if err := e.pendingFees.Add(f); err != nil {
		return pending.Fee{}, err
	}

	e.record("Pending Fee Added", fmt.Sprintf("Added pending %s ₹%d for %s", f.FeeType, f.Amount, m.Name))
	return f, nil
}

// CollectPendingFee converts a tracked pending fee into a member update plus
// a transaction, then removes it from the queue. A fee type matching a
// registered year's description sets that year's amount; "Membership Fee"
// sets the membership fee. Both use set semantics. Other fee types only
// produce a transaction.
func (e *Engine) CollectPendingFee(id uuid.UUID) (member.Member, ledger.Transaction, error) {
	f, err := e.pendingFees.Get(id)
	if err != nil {
		return member.Member{}, ledger.Transaction{}, err
	}

	m, err := e.members.Get(f.MemberID)
	if err != nil {
		return member.Member{}, ledger.Transaction{}, err
	}

	if fy, ok := e.feeYears.YearByDescription(f.FeeType); ok {
		m, err = e.members.SetFee(f.MemberID, fy.Year, f.Amount, e.feeYears.Years())
	} else if f.FeeType == pending.MembershipFeeType {
		m, err = e.members.SetMembershipFee(f.MemberID, f.Amount, e.feeYears.Years())
	}
	if err != nil {
		return member.Member{}, ledger.Transaction{}, err
	}

	t, err := ledger.NewCollection(m.ID, m.Name, ledger.TypeKey(f.FeeType), f.Amount, e.now())
	if err != nil {
		return member.Member{}, ledger.Transaction{}, err
	}
	t.FromPending = true
	t.PendingFeeID = f.ID
	e.ledger.Append(t)

	if err := e.pendingFees.Remove(id); err != nil {
		return member.Member{}, ledger.Transaction{}, err
	}

	e.record("Pending Fee Collected", fmt.Sprintf("Collected %s ₹%d from %s", f.FeeType, f.Amount, m.Name))
	return m, t, nil
}

// RemovePendingFee deletes the entry without collecting it. Confirmation is
// the caller's policy.
func (e *Engine) RemovePendingFee(id uuid.UUID) error {
	f, err := e.pendingFees.Get(id)
	if err != nil {
		return err
	}
	if err := e.pendingFees.Remove(id); err != nil {
		return err
	}
	e.record("Pending Fee Removed", fmt.Sprintf("Removed pending %s for %s", f.FeeType, f.MemberName))
	return nil
}

func (e *Engine) PendingFees() []pending.Fee {
	return e.pendingFees.All()
}

func (e *Engine) PendingFeesForMember(id uuid.UUID) []pending.Fee {
	return e.pendingFees.ForMember(id)
}
