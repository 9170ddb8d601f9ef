package report

import (
	"github.com/passionhills/clubledger/contribution"
	"github.com/passionhills/clubledger/expense"
	"github.com/passionhills/clubledger/feeyear"
	"github.com/passionhills/clubledger/member"
)

// TotalCollected sums every member's stored TotalPaid.
func TotalCollected(members []member.Member) int64 {
	var total int64
	for _, m := range members {
		total += m.TotalPaid
	}
	return total
}

// ImplicitPendingCount counts (member, year) pairs whose recorded amount is
// zero. This is the derived notion of "pending" and is independent of the
// explicitly tracked pending-fee queue; the two are never merged into one
// figure.
func ImplicitPendingCount(members []member.Member, years []int) int {
	count := 0
	for _, m := range members {
		for _, year := range years {
			if m.Fees[year] == 0 {
				count++
			}
		}
	}
	return count
}

// ImplicitPendingAmount prices each unpaid (member, year) pair at the
// year's configured amount, not at anything stored on the member.
func ImplicitPendingAmount(members []member.Member, years []feeyear.FeeYear) int64 {
	var total int64
	for _, m := range members {
		for _, fy := range years {
			if m.Fees[fy.Year] == 0 {
				total += fy.Amount
			}
		}
	}
	return total
}

// FinancialSummary is the club's income/expense breakdown.
type FinancialSummary struct {
	MembershipFees     int64         `json:"membershipFees"`
	AnnualFees         map[int]int64 `json:"annualFees"`
	MemberFees         int64         `json:"memberFees"`
	Contributions      int64         `json:"contributions"`
	Expenses           int64         `json:"expenses"`
	TotalIncome        int64         `json:"totalIncome"`
	NetBalance         int64         `json:"netBalance"`
	ImplicitPendingDue int64         `json:"implicitPendingDue"`
}

func Summarize(members []member.Member, years []feeyear.FeeYear, contributions []contribution.Contribution, expenses []expense.Expense) FinancialSummary {
	s := FinancialSummary{AnnualFees: make(map[int]int64, len(years))}

	for _, m := range members {
		s.MembershipFees += m.MembershipFee
	}
	for _, fy := range years {
		for _, m := range members {
			s.AnnualFees[fy.Year] += m.Fees[fy.Year]
		}
	}

	s.MemberFees = s.MembershipFees
	for _, total := range s.AnnualFees {
		s.MemberFees += total
	}

	for _, c := range contributions {
		s.Contributions += c.Amount
	}
	for _, e := range expenses {
		s.Expenses += e.Amount
	}

	s.TotalIncome = s.MemberFees + s.Contributions
	s.NetBalance = s.TotalIncome - s.Expenses
	s.ImplicitPendingDue = ImplicitPendingAmount(members, years)

	return s
}

// MemberStatistics counts members by status label and active flag.
type MemberStatistics struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	Inactive int            `json:"inactive"`
}

func Statistics(members []member.Member) MemberStatistics {
	stats := MemberStatistics{ByStatus: make(map[string]int)}
	for _, m := range members {
		stats.Total++
		stats.ByStatus[m.Status]++
		if !m.IsActive {
			stats.Inactive++
		}
	}
	return stats
}

// PerCategoryTotals groups any collection and sums an amount per group. It
// backs the expense-by-category and contribution-by-type reports.
func PerCategoryTotals[T any](items []T, key func(T) string, amount func(T) int64) map[string]int64 {
	totals := make(map[string]int64)
	for _, item := range items {
		totals[key(item)] += amount(item)
	}
	return totals
}
