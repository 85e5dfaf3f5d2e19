package payroll

import (
	"testing"
	"time"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, date string, state attendance.DayState) attendance.Day {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return attendance.Day{
		EmployeeCode:         "1001",
		Date:                 d,
		State:                state,
		MonthlyLateAllowance: 120,
	}
}

func TestAggregatePeriod_Counts(t *testing.T) {
	// March 2024: the 1st is a Friday.
	days := []attendance.Day{
		day(t, "2024-03-01", attendance.DayStateNone),    // Friday -> weekly off
		day(t, "2024-03-02", attendance.DayStateNone),    // Saturday -> weekly off (5-day week)
		day(t, "2024-03-03", attendance.DayStateNone),    // Sunday -> work
		day(t, "2024-03-04", attendance.DayStateAbsence), // Monday
		day(t, "2024-03-05", attendance.DayStateAnnualLeave),
		day(t, "2024-03-06", attendance.DayStateMedicalLeave),
		day(t, "2024-03-07", attendance.DayStateOfficialLeave),
		day(t, "2024-03-10", attendance.DayStateLeaveCompensation),
		day(t, "2024-03-11", attendance.DayStateAppropriateValue),
	}

	totals := AggregatePeriod(days, 5, DefaultPolicy())

	assert.Equal(t, 1, totals.WorkDays)
	assert.Equal(t, 1, totals.AbsenceDays)
	assert.Equal(t, 1, totals.AnnualLeaveDays)
	assert.Equal(t, 1, totals.MedicalLeaveDays)
	assert.Equal(t, 1, totals.OfficialLeaveDays)
	assert.Equal(t, 1, totals.LeaveCompensationDays)
	assert.Equal(t, 1, totals.AppropriateValueDays)
	assert.Equal(t, 2, totals.WeeklyLeaveDays)
}

func TestAggregatePeriod_SixDayWeekSaturdayIsWork(t *testing.T) {
	days := []attendance.Day{
		day(t, "2024-03-01", attendance.DayStateNone), // Friday
		day(t, "2024-03-02", attendance.DayStateNone), // Saturday
	}

	totals := AggregatePeriod(days, 6, DefaultPolicy())

	assert.Equal(t, 1, totals.WeeklyLeaveDays)
	assert.Equal(t, 1, totals.WorkDays)
}

func TestAggregatePeriod_SumsHoursAndValues(t *testing.T) {
	d1 := day(t, "2024-03-03", attendance.DayStateNone)
	d1.WorkHours = decimal.NewFromInt(9)
	d1.OvertimeHours = decimal.NewFromInt(2)
	d2 := day(t, "2024-03-04", attendance.DayStateNone)
	d2.WorkHours = decimal.NewFromInt(8)
	d2.OvertimeHours = decimal.NewFromInt(1)
	d3 := day(t, "2024-03-05", attendance.DayStateLeaveCompensation)
	d3.LeaveCompensationValue = decimal.NewFromInt(600)

	totals := AggregatePeriod([]attendance.Day{d1, d2, d3}, 5, DefaultPolicy())

	assert.True(t, totals.WorkHours.Equal(decimal.NewFromInt(17)), "work hours %s", totals.WorkHours)
	assert.True(t, totals.OvertimeHours.Equal(decimal.NewFromInt(3)), "overtime %s", totals.OvertimeHours)
	assert.True(t, totals.LeaveCompensationValue.Equal(decimal.NewFromInt(600)))
}

func TestAggregatePeriod_RemainingLateAllowanceNonIncreasing(t *testing.T) {
	dates := []string{"2024-03-03", "2024-03-04", "2024-03-05", "2024-03-06"}
	lates := []int{30, 0, 50, 70}

	var days []attendance.Day
	for i, date := range dates {
		d := day(t, date, attendance.DayStateNone)
		d.LateMinutes = lates[i]
		days = append(days, d)
	}

	// Recompute the prefix aggregation day by day and assert the remaining
	// allowance never increases.
	prev := 120
	for i := 1; i <= len(days); i++ {
		totals := AggregatePeriod(days[:i], 5, DefaultPolicy())
		assert.LessOrEqual(t, totals.RemainingLateAllowance, prev,
			"remaining allowance increased at day %d", i)
		prev = totals.RemainingLateAllowance
	}

	totals := AggregatePeriod(days, 5, DefaultPolicy())
	assert.Equal(t, 0, totals.RemainingLateAllowance)
	assert.Equal(t, 150, totals.LateMinutes)
}

func TestAggregatePeriod_LateDeductionDays(t *testing.T) {
	d1 := day(t, "2024-03-03", attendance.DayStateNone)
	d1.LateMinutes = 100
	d2 := day(t, "2024-03-04", attendance.DayStateNone)
	d2.LateMinutes = 50

	// 150 cumulative minutes against a 120-minute allowance leaves a
	// 30-minute excess; at 120 minutes per deduction day that is 0.25 days.
	totals := AggregatePeriod([]attendance.Day{d1, d2}, 5, DefaultPolicy())
	assert.True(t, totals.LateDeductionDays.Equal(decimal.NewFromFloat(0.25)),
		"late deduction days %s", totals.LateDeductionDays)

	// Within the allowance there is no deduction.
	d2.LateMinutes = 10
	totals = AggregatePeriod([]attendance.Day{d1, d2}, 5, DefaultPolicy())
	assert.True(t, totals.LateDeductionDays.IsZero())
}

func TestAggregatePeriod_SortsByDate(t *testing.T) {
	// Feed days out of order; the running allowance must still be computed
	// in ascending date order.
	d1 := day(t, "2024-03-04", attendance.DayStateNone)
	d1.LateMinutes = 100
	d1.MonthlyLateAllowance = 120
	d2 := day(t, "2024-03-03", attendance.DayStateNone)
	d2.LateMinutes = 10
	d2.MonthlyLateAllowance = 60

	totals := AggregatePeriod([]attendance.Day{d1, d2}, 5, DefaultPolicy())

	// The later day's snapshot (120) governs: 110 cumulative, 10 remaining.
	assert.Equal(t, 10, totals.RemainingLateAllowance)
}

func TestAggregatePeriod_Empty(t *testing.T) {
	totals := AggregatePeriod(nil, 5, DefaultPolicy())
	assert.Equal(t, 0, totals.WorkDays)
	assert.True(t, totals.LateDeductionDays.IsZero())
}
