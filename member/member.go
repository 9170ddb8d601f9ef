package member

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	VillaNo       string        `json:"villaNo"`
	Status        string        `json:"status"`
	MembershipFee int64         `json:"membershipFee"` // Amount in rupees
	Fees          map[int]int64 `json:"fees"`          // Fee year -> amount paid, 0 = unpaid
	TotalPaid     int64         `json:"totalPaid"`
	JoinDate      time.Time     `json:"joinDate"`
	IsActive      bool          `json:"isActive"`
}

var (
	ErrNotFound          = errors.New("member not found")
	ErrEmptyName         = errors.New("name can't be empty")
	ErrNegativeFee       = errors.New("fee amount must not be negative")
	ErrYearNotRegistered = errors.New("fee year not registered")
)

// New builds a member with every registered fee year initialized to 0
// (unpaid). TotalPaid starts at the membership fee.
func New(name, villaNo, status string, membershipFee int64, joinDate time.Time, years []int) (Member, error) {
	if name == "" {
		return Member{}, ErrEmptyName
	}
	if membershipFee < 0 {
		return Member{}, ErrNegativeFee
	}

	fees := make(map[int]int64, len(years))
	for _, year := range years {
		fees[year] = 0
	}

	return Member{
		ID:            uuid.New(),
		Name:          name,
		VillaNo:       villaNo,
		Status:        status,
		MembershipFee: membershipFee,
		Fees:          fees,
		TotalPaid:     membershipFee,
		JoinDate:      joinDate,
		IsActive:      true,
	}, nil
}

// ComputeTotalPaid returns membershipFee plus the member's recorded amount
// for every registered year, treating a missing year as 0. Inactive years
// count the same as active ones.
func ComputeTotalPaid(m Member, years []int) int64 {
	total := m.MembershipFee
	for _, year := range years {
		total += m.Fees[year]
	}
	return total
}

// HasUnpaidFee reports whether any registered year is missing or 0 on the
// member.
func HasUnpaidFee(m Member, years []int) bool {
	for _, year := range years {
		if m.Fees[year] == 0 {
			return true
		}
	}
	return false
}

func clone(m Member) Member {
	fees := make(map[int]int64, len(m.Fees))
	for year, amount := range m.Fees {
		fees[year] = amount
	}
	m.Fees = fees
	return m
}
