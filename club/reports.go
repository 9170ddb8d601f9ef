package club

import (
	"github.com/passionhills/clubledger/contribution"
	"github.com/passionhills/clubledger/expense"
	"github.com/passionhills/clubledger/report"
)

func (e *Engine) TotalCollected() int64 {
	return report.TotalCollected(e.members.All())
}

// ImplicitPendingCount counts unpaid (member, year) pairs. It is independent
// of the tracked pending-fee queue.
func (e *Engine) ImplicitPendingCount() int {
	return report.ImplicitPendingCount(e.members.All(), e.feeYears.Years())
}

func (e *Engine) ImplicitPendingAmount() int64 {
	return report.ImplicitPendingAmount(e.members.All(), e.feeYears.All())
}

func (e *Engine) FinancialSummary() report.FinancialSummary {
	return report.Summarize(e.members.All(), e.feeYears.All(), e.contributions.All(), e.expenses.All())
}

func (e *Engine) MemberStatistics() report.MemberStatistics {
	return report.Statistics(e.members.All())
}

func (e *Engine) ExpenseTotalsByCategory() map[string]int64 {
	return report.PerCategoryTotals(e.expenses.All(),
		func(x expense.Expense) string { return x.Category },
		func(x expense.Expense) int64 { return x.Amount })
}

func (e *Engine) ContributionTotalsByType() map[string]int64 {
	return report.PerCategoryTotals(e.contributions.All(),
		func(c contribution.Contribution) string { return c.Type },
		func(c contribution.Contribution) int64 { return c.Amount })
}
