package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayState is the single classification flag of an attendance day. Exactly
// one state is stored per day; the legacy flag combinations accepted at the
// write boundary collapse into this tagged variant, so an invalid multi-flag
// day cannot be represented.
type DayState string

const (
	// DayStateNone means no override: the day is a work day or a weekly-off
	// day depending on the employee's work-week configuration.
	DayStateNone              DayState = "none"
	DayStateAbsence           DayState = "absence"
	DayStateAnnualLeave       DayState = "annual_leave"
	DayStateMedicalLeave      DayState = "medical_leave"
	DayStateOfficialLeave     DayState = "official_leave"
	DayStateLeaveCompensation DayState = "leave_compensation"
	DayStateAppropriateValue  DayState = "appropriate_value"
)

// LeaveStates are the states that bulk leave creation may assign.
var LeaveStates = []DayState{
	DayStateAbsence,
	DayStateAnnualLeave,
	DayStateMedicalLeave,
	DayStateOfficialLeave,
}

func IsValidDayState(s DayState) bool {
	switch s {
	case DayStateNone, DayStateAbsence, DayStateAnnualLeave, DayStateMedicalLeave,
		DayStateOfficialLeave, DayStateLeaveCompensation, DayStateAppropriateValue:
		return true
	}
	return false
}

// Day is one raw attendance record per employee per calendar date.
type Day struct {
	ID                     string
	EmployeeCode           string
	Date                   time.Time
	CheckIn                *time.Time
	CheckOut               *time.Time
	WorkHours              decimal.Decimal
	OvertimeHours          decimal.Decimal
	LateMinutes            int
	State                  DayState
	LeaveCompensationValue decimal.Decimal
	AppropriateValue       decimal.Decimal
	AnnualLeaveBalance     decimal.Decimal
	MonthlyLateAllowance   int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
