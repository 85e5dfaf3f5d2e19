package attendance

import (
	"time"

	"github.com/hadir-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// EditDayRequest mutates a single attendance day. It accepts the flag set the
// fingerprint frontend sends; ResolveState collapses the flags into one
// DayState and rejects any combination of more than one.
type EditDayRequest struct {
	ID                     string           `json:"-"`
	CheckIn                *string          `json:"check_in,omitempty"`
	CheckOut               *string          `json:"check_out,omitempty"`
	WorkHours              *decimal.Decimal `json:"work_hours,omitempty"`
	OvertimeHours          *decimal.Decimal `json:"overtime_hours,omitempty"`
	LateMinutes            *int             `json:"late_minutes,omitempty"`
	Absence                bool             `json:"absence"`
	AnnualLeave            bool             `json:"annual_leave"`
	MedicalLeave           bool             `json:"medical_leave"`
	OfficialLeave          bool             `json:"official_leave"`
	LeaveCompensationValue decimal.Decimal  `json:"leave_compensation_value"`
	AppropriateValue       decimal.Decimal  `json:"appropriate_value"`
}

// ResolveState validates the mutual-exclusivity invariant and returns the
// single day state the request encodes.
func (r *EditDayRequest) ResolveState() (DayState, error) {
	var errs validator.ValidationErrors

	if r.LeaveCompensationValue.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "leave_compensation_value", Message: "must be non-negative"})
	}
	if r.AppropriateValue.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "appropriate_value", Message: "must be non-negative"})
	}
	if r.WorkHours != nil && r.WorkHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "work_hours", Message: "must be non-negative"})
	}
	if r.OvertimeHours != nil && r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if r.LateMinutes != nil && *r.LateMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_minutes", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return DayStateNone, errs
	}

	state := DayStateNone
	set := 0
	if r.Absence {
		state = DayStateAbsence
		set++
	}
	if r.AnnualLeave {
		state = DayStateAnnualLeave
		set++
	}
	if r.MedicalLeave {
		state = DayStateMedicalLeave
		set++
	}
	if r.OfficialLeave {
		state = DayStateOfficialLeave
		set++
	}
	if r.LeaveCompensationValue.IsPositive() {
		state = DayStateLeaveCompensation
		set++
	}
	if r.AppropriateValue.IsPositive() {
		state = DayStateAppropriateValue
		set++
	}
	if set > 1 {
		return DayStateNone, validator.ValidationErrors{{
			Field:   "flags",
			Message: ErrConflictingStates.Error(),
		}}
	}
	return state, nil
}

// CreateLeaveRangeRequest creates one leave-typed day per calendar date in
// [DateFrom, DateTo] for one employee, or for all active employees when
// EmployeeCode is empty.
type CreateLeaveRangeRequest struct {
	EmployeeCode string `json:"employee_code,omitempty"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
	LeaveType    string `json:"leave_type"`
}

func (r *CreateLeaveRangeRequest) Validate() (from, to time.Time, state DayState, err error) {
	from, to, errs := validator.ValidateDateRange(r.DateFrom, r.DateTo)

	state = DayState(r.LeaveType)
	valid := false
	for _, s := range LeaveStates {
		if state == s {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "must be one of absence, annual_leave, medical_leave, official_leave",
		})
	}
	if r.EmployeeCode != "" && !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must be 1-10 digits"})
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, DayStateNone, errs
	}
	return from, to, state, nil
}

// PurgeRequest bulk-deletes attendance days over a range. Admin only.
type PurgeRequest struct {
	EmployeeCode string `json:"employee_code,omitempty"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}

func (r *PurgeRequest) Validate() (from, to time.Time, err error) {
	from, to, errs := validator.ValidateDateRange(r.DateFrom, r.DateTo)
	if r.EmployeeCode != "" && !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must be 1-10 digits"})
	}
	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	return from, to, nil
}

type DayResponse struct {
	ID                     string          `json:"id"`
	EmployeeCode           string          `json:"employee_code"`
	Date                   string          `json:"date"`
	CheckIn                *string         `json:"check_in,omitempty"`
	CheckOut               *string         `json:"check_out,omitempty"`
	WorkHours              decimal.Decimal `json:"work_hours"`
	OvertimeHours          decimal.Decimal `json:"overtime_hours"`
	LateMinutes            int             `json:"late_minutes"`
	State                  string          `json:"state"`
	LeaveCompensationValue decimal.Decimal `json:"leave_compensation_value"`
	AppropriateValue       decimal.Decimal `json:"appropriate_value"`
	AnnualLeaveBalance     decimal.Decimal `json:"annual_leave_balance"`
	MonthlyLateAllowance   int             `json:"monthly_late_allowance"`
}

// ImportSummary reports the outcome of a fingerprint-file import.
type ImportSummary struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
