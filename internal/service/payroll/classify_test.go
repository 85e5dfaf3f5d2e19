package payroll

import (
	"testing"
	"time"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func TestClassifyDay_StatesWinOverWeeklyOff(t *testing.T) {
	// Friday is a weekly-off day for both configurations, but a stored
	// state always takes precedence.
	cases := []struct {
		state attendance.DayState
		want  DayCategory
	}{
		{attendance.DayStateAbsence, CategoryAbsence},
		{attendance.DayStateAnnualLeave, CategoryAnnualLeave},
		{attendance.DayStateMedicalLeave, CategoryMedicalLeave},
		{attendance.DayStateOfficialLeave, CategoryOfficialLeave},
		{attendance.DayStateLeaveCompensation, CategoryLeaveCompensation},
		{attendance.DayStateAppropriateValue, CategoryAppropriateValue},
	}
	for _, c := range cases {
		got := ClassifyDay(c.state, time.Friday, 5)
		assert.Equal(t, c.want, got, "state %s on Friday", c.state)
	}
}

func TestClassifyDay_WeeklyOffByWorkWeek(t *testing.T) {
	// 5-day week: Friday and Saturday off. 6-day week: Friday only.
	assert.Equal(t, CategoryWeeklyOff, ClassifyDay(attendance.DayStateNone, time.Friday, 5))
	assert.Equal(t, CategoryWeeklyOff, ClassifyDay(attendance.DayStateNone, time.Saturday, 5))
	assert.Equal(t, CategoryWeeklyOff, ClassifyDay(attendance.DayStateNone, time.Friday, 6))
	assert.Equal(t, CategoryWork, ClassifyDay(attendance.DayStateNone, time.Saturday, 6))
}

func TestClassifyDay_DefaultIsWork(t *testing.T) {
	for _, wd := range []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday} {
		assert.Equal(t, CategoryWork, ClassifyDay(attendance.DayStateNone, wd, 5), "weekday %s", wd)
		assert.Equal(t, CategoryWork, ClassifyDay(attendance.DayStateNone, wd, 6), "weekday %s", wd)
	}
}

func TestClassifyDay_IsPure(t *testing.T) {
	// Same inputs, same output, every time.
	for i := 0; i < 3; i++ {
		assert.Equal(t, CategoryWeeklyOff, ClassifyDay(attendance.DayStateNone, time.Saturday, 5))
		assert.Equal(t, CategoryAbsence, ClassifyDay(attendance.DayStateAbsence, time.Saturday, 5))
	}
}
