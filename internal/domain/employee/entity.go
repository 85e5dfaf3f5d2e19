package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                    string
	Code                  string
	FullName              string
	Department            string
	BaseSalary            decimal.Decimal
	BaseBonus             decimal.Decimal
	BonusPercentage       decimal.Decimal
	MealAllowance         decimal.Decimal
	MedicalInsurance      decimal.Decimal
	SocialInsurance       decimal.Decimal
	WorkDaysPerWeek       int
	AnnualLeaveBalance    decimal.Decimal
	EidBonus              decimal.Decimal
	PenaltiesValue        decimal.Decimal
	ViolationsInstallment decimal.Decimal
	Advances              decimal.Decimal
	MonthlyLateAllowance  int
	Status                Status
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusDisabled Status = "disabled"
)

// Weekly-off weekdays by work-week configuration. A 5-day week rests on
// Friday and Saturday, a 6-day week on Friday only.
func (e Employee) WeeklyOffDays() []time.Weekday {
	if e.WorkDaysPerWeek == 5 {
		return []time.Weekday{time.Friday, time.Saturday}
	}
	return []time.Weekday{time.Friday}
}
