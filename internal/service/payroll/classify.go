package payroll

import (
	"time"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/attendance"
)

// DayCategory is the single classification of one attendance day.
type DayCategory string

const (
	CategoryWork              DayCategory = "work"
	CategoryAbsence           DayCategory = "absence"
	CategoryAnnualLeave       DayCategory = "annual_leave"
	CategoryMedicalLeave      DayCategory = "medical_leave"
	CategoryOfficialLeave     DayCategory = "official_leave"
	CategoryLeaveCompensation DayCategory = "leave_compensation"
	CategoryWeeklyOff         DayCategory = "weekly_off"
	CategoryAppropriateValue  DayCategory = "appropriate_value"
)

// IsWeeklyOff reports whether the weekday is an unpaid scheduled off-day for
// the given work-week configuration: a 5-day week rests on Friday and
// Saturday, a 6-day week on Friday only.
func IsWeeklyOff(weekday time.Weekday, workDaysPerWeek int) bool {
	if weekday == time.Friday {
		return true
	}
	return workDaysPerWeek == 5 && weekday == time.Saturday
}

// ClassifyDay maps a day state plus the employee's work-week configuration
// into exactly one category. A stored state always wins over the weekly-off
// default; with no state set, the day is WEEKLY_OFF on configured off-days
// and WORK otherwise. Pure function of its inputs; assumes the state was
// validated at the write boundary.
func ClassifyDay(state attendance.DayState, weekday time.Weekday, workDaysPerWeek int) DayCategory {
	switch state {
	case attendance.DayStateAbsence:
		return CategoryAbsence
	case attendance.DayStateAnnualLeave:
		return CategoryAnnualLeave
	case attendance.DayStateMedicalLeave:
		return CategoryMedicalLeave
	case attendance.DayStateOfficialLeave:
		return CategoryOfficialLeave
	case attendance.DayStateLeaveCompensation:
		return CategoryLeaveCompensation
	case attendance.DayStateAppropriateValue:
		return CategoryAppropriateValue
	}
	if IsWeeklyOff(weekday, workDaysPerWeek) {
		return CategoryWeeklyOff
	}
	return CategoryWork
}
