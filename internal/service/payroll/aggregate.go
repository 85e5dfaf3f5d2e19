package payroll

import (
	"sort"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// PeriodTotals is the per-category aggregation of one employee's attendance
// days over a reporting period, before valuation.
type PeriodTotals struct {
	WorkDays              int
	AbsenceDays           int
	AnnualLeaveDays       int
	MedicalLeaveDays      int
	OfficialLeaveDays     int
	LeaveCompensationDays int
	WeeklyLeaveDays       int
	AppropriateValueDays  int

	WorkHours              decimal.Decimal
	OvertimeHours          decimal.Decimal
	LateMinutes            int
	LeaveCompensationValue decimal.Decimal
	AppropriateValue       decimal.Decimal

	// RemainingLateAllowance is the allowance left after the last day of the
	// period: max(0, monthlyLateAllowance - cumulative late minutes). It is
	// computed day by day in ascending date order and never increases within
	// a period.
	RemainingLateAllowance int

	// LateDeductionDays is the fractional day-equivalent of the late minutes
	// exceeding the monthly allowance, per the policy conversion rate.
	LateDeductionDays decimal.Decimal
}

// AggregatePeriod folds an employee's attendance days over a period into
// per-category counts and sums. Days are sorted into ascending date order
// before the running late-allowance computation.
func AggregatePeriod(days []attendance.Day, workDaysPerWeek int, policy Policy) PeriodTotals {
	ordered := make([]attendance.Day, len(days))
	copy(ordered, days)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	totals := PeriodTotals{
		WorkHours:              decimal.Zero,
		OvertimeHours:          decimal.Zero,
		LeaveCompensationValue: decimal.Zero,
		AppropriateValue:       decimal.Zero,
		LateDeductionDays:      decimal.Zero,
	}

	cumulativeLate := 0
	allowance := 0
	for _, day := range ordered {
		category := ClassifyDay(day.State, day.Date.Weekday(), workDaysPerWeek)
		switch category {
		case CategoryWork:
			totals.WorkDays++
		case CategoryAbsence:
			totals.AbsenceDays++
		case CategoryAnnualLeave:
			totals.AnnualLeaveDays++
		case CategoryMedicalLeave:
			totals.MedicalLeaveDays++
		case CategoryOfficialLeave:
			totals.OfficialLeaveDays++
		case CategoryLeaveCompensation:
			totals.LeaveCompensationDays++
			totals.LeaveCompensationValue = totals.LeaveCompensationValue.Add(day.LeaveCompensationValue)
		case CategoryWeeklyOff:
			totals.WeeklyLeaveDays++
		case CategoryAppropriateValue:
			totals.AppropriateValueDays++
			totals.AppropriateValue = totals.AppropriateValue.Add(day.AppropriateValue)
		}

		totals.WorkHours = totals.WorkHours.Add(day.WorkHours)
		totals.OvertimeHours = totals.OvertimeHours.Add(day.OvertimeHours)

		cumulativeLate += day.LateMinutes
		totals.LateMinutes = cumulativeLate
		// Each day carries the allowance snapshot that applied to it; the
		// most recent snapshot governs the period.
		allowance = day.MonthlyLateAllowance
		remaining := allowance - cumulativeLate
		if remaining < 0 {
			remaining = 0
		}
		totals.RemainingLateAllowance = remaining
	}

	if excess := cumulativeLate - allowance; excess > 0 && policy.LateMinutesPerDeductionDay > 0 {
		totals.LateDeductionDays = decimal.NewFromInt(int64(excess)).
			Div(decimal.NewFromInt(int64(policy.LateMinutesPerDeductionDay)))
	}

	return totals
}
