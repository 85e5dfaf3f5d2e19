package payroll

import (
	"github.com/hadir-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// SalaryReportRequest asks for one employee's report, or for every active
// employee when EmployeeCode is empty.
type SalaryReportRequest struct {
	EmployeeCode string
	DateFrom     string
	DateTo       string
}

func (r *SalaryReportRequest) Validate() error {
	_, _, errs := validator.ValidateDateRange(r.DateFrom, r.DateTo)
	if r.EmployeeCode != "" && !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must be 1-10 digits"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Monetary fields are rounded to 2 decimal places here, at the presentation
// boundary; the engine itself keeps full precision.
type SalaryReportResponse struct {
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`

	TotalWorkDays              int `json:"total_work_days"`
	TotalAbsenceDays           int `json:"total_absence_days"`
	TotalAnnualLeaveDays       int `json:"total_annual_leave_days"`
	TotalMedicalLeaveDays      int `json:"total_medical_leave_days"`
	TotalOfficialLeaveDays     int `json:"total_official_leave_days"`
	TotalLeaveCompensationDays int `json:"total_leave_compensation_days"`
	TotalWeeklyLeaveDays       int `json:"total_weekly_leave_days"`
	TotalAppropriateValueDays  int `json:"total_appropriate_value_days"`

	TotalWorkHours     decimal.Decimal `json:"total_work_hours"`
	TotalOvertimeHours decimal.Decimal `json:"total_overtime_hours"`
	TotalLateMinutes   int             `json:"total_late_minutes"`

	RemainingLateAllowance    int             `json:"remaining_late_allowance"`
	LateDeductionDays         decimal.Decimal `json:"late_deduction_days"`
	MedicalLeaveDeductionDays decimal.Decimal `json:"medical_leave_deduction_days"`
	TotalDeductionDays        decimal.Decimal `json:"total_deduction_days"`

	BaseSalary             decimal.Decimal `json:"base_salary"`
	DailySalary            decimal.Decimal `json:"daily_salary"`
	OvertimeValue          decimal.Decimal `json:"overtime_value"`
	LeaveCompensationValue decimal.Decimal `json:"leave_compensation_value"`
	TotalAppropriateValue  decimal.Decimal `json:"total_appropriate_value"`
	MealAllowance          decimal.Decimal `json:"meal_allowance"`
	EidBonus               decimal.Decimal `json:"eid_bonus"`
	MedicalInsurance       decimal.Decimal `json:"medical_insurance"`
	SocialInsurance        decimal.Decimal `json:"social_insurance"`
	DeductionsValue        decimal.Decimal `json:"deductions_value"`
	NetSalary              decimal.Decimal `json:"net_salary"`
}

type SalaryRunResponse struct {
	Reports []SalaryReportResponse  `json:"reports"`
	Totals  SalaryRunTotalsResponse `json:"totals"`
}

type SalaryRunTotalsResponse struct {
	EmployeeCount        int             `json:"employee_count"`
	TotalNetSalary       decimal.Decimal `json:"total_net_salary"`
	TotalDeductionsValue decimal.Decimal `json:"total_deductions_value"`
	TotalOvertimeValue   decimal.Decimal `json:"total_overtime_value"`
	TotalAbsenceDays     int             `json:"total_absence_days"`
	TotalWorkDays        int             `json:"total_work_days"`
}

// ========== BONUS DTOs ==========

type GenerateBonusRequest struct {
	PeriodMonth   int      `json:"period_month"`
	PeriodYear    int      `json:"period_year"`
	EmployeeCodes []string `json:"employee_codes,omitempty"` // Empty = all active employees
}

func (r *GenerateBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2000 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateBonusRequest edits the four editable bonus fields. TieUpValue and
// Deductions are validated against the stored row: a decrease is rejected,
// never clamped.
type UpdateBonusRequest struct {
	ID              string           `json:"-"`
	TieUpValue      *decimal.Decimal `json:"tie_up_value,omitempty"`
	ProductionValue *decimal.Decimal `json:"production_value,omitempty"`
	Advances        *decimal.Decimal `json:"advances,omitempty"`
	Deductions      *decimal.Decimal `json:"deductions,omitempty"`
}

func (r *UpdateBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, v := range map[string]*decimal.Decimal{
		"tie_up_value":     r.TieUpValue,
		"production_value": r.ProductionValue,
		"advances":         r.Advances,
		"deductions":       r.Deductions,
	} {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BonusReportResponse struct {
	ID              string          `json:"id"`
	EmployeeCode    string          `json:"employee_code"`
	EmployeeName    string          `json:"employee_name"`
	PeriodMonth     int             `json:"period_month"`
	PeriodYear      int             `json:"period_year"`
	BaseBonus       decimal.Decimal `json:"base_bonus"`
	BonusPercentage decimal.Decimal `json:"bonus_percentage"`
	TotalWorkDays   int             `json:"total_work_days"`
	Absences        int             `json:"absences"`
	AnnualLeave     int             `json:"annual_leave"`
	MedicalLeave    int             `json:"medical_leave"`
	TotalLeaveDays  int             `json:"total_leave_days"`
	TieUpValue      decimal.Decimal `json:"tie_up_value"`
	ProductionValue decimal.Decimal `json:"production_value"`
	Advances        decimal.Decimal `json:"advances"`
	Deductions      decimal.Decimal `json:"deductions"`
	NetBonus        decimal.Decimal `json:"net_bonus"`
	Status          string          `json:"status"`
}
