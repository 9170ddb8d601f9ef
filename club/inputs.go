package club

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var validate = validator.New()

func validateInput(in any) error {
	if err := validate.Struct(in); err != nil {
		return &ValidationError{err: err}
	}
	return nil
}

// parseDate assumes the datetime tag already accepted the value.
func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

type AddMemberInput struct {
	Name          string `json:"name" validate:"required"`
	VillaNo       string `json:"villaNo" validate:"required"`
	Status        string `json:"status" validate:"required"`
	MembershipFee int64  `json:"membershipFee" validate:"gte=0"`
	JoinDate      string `json:"joinDate" validate:"required,datetime=2006-01-02"`
}

// UpdateMemberInput patches a member. Nil fields are left untouched.
type UpdateMemberInput struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1"`
	VillaNo       *string `json:"villaNo,omitempty"`
	Status        *string `json:"status,omitempty"`
	MembershipFee *int64  `json:"membershipFee,omitempty" validate:"omitempty,gte=0"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

type CollectFeeInput struct {
	MemberID uuid.UUID `json:"memberId" validate:"required"`
	Year     int       `json:"year" validate:"required"`
	Amount   int64     `json:"amount" validate:"gte=0"`
	Date     string    `json:"date" validate:"required,datetime=2006-01-02"`
}

type AdjustFeeInput struct {
	MemberID  uuid.UUID `json:"memberId" validate:"required"`
	Year      int       `json:"year" validate:"required"`
	NewAmount int64     `json:"newAmount" validate:"gte=0"`
	Reason    string    `json:"reason" validate:"required"`
	Notes     string    `json:"notes"`
}

type AddFeeYearInput struct {
	Year        int    `json:"year" validate:"required,gte=2000,lte=2200"`
	Amount      int64  `json:"amount" validate:"gte=0"`
	Description string `json:"description"`
}

type UpdateFeeYearInput struct {
	Year        int    `json:"year" validate:"required"`
	Amount      int64  `json:"amount" validate:"gte=0"`
	Description string `json:"description" validate:"required"`
}

type AddPendingFeeInput struct {
	MemberID uuid.UUID `json:"memberId" validate:"required"`
	FeeType  string    `json:"feeType" validate:"required"`
	Amount   int64     `json:"amount" validate:"gt=0"`
	DueDate  string    `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Notes    string    `json:"notes"`
}

type ExpenseInput struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Amount      int64  `json:"amount" validate:"gt=0"`
	PaidBy      string `json:"paidBy" validate:"required"`
	Status      string `json:"status" validate:"required"`
	Receipt     string `json:"receipt"`
}

type ContributionInput struct {
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	ContributorName string `json:"contributorName" validate:"required"`
	Villa           string `json:"villa" validate:"required"`
	Type            string `json:"type" validate:"required"`
	Purpose         string `json:"purpose" validate:"required"`
	Amount          int64  `json:"amount" validate:"gt=0"`
	Receipt         string `json:"receipt"`
}

type EventInput struct {
	Title       string `json:"title" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"omitempty,datetime=15:04"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Priority    string `json:"priority" validate:"omitempty,oneof=high medium low"`
}

type SettingsInput struct {
	ClubName             string `json:"clubName" validate:"required"`
	DefaultMembershipFee int64  `json:"defaultMembershipFee" validate:"gte=0"`
	DefaultAnnualFee     int64  `json:"defaultAnnualFee" validate:"gte=0"`
	CurrentYear          int    `json:"currentYear" validate:"required,gte=2000,lte=2200"`
}
