package employee

import (
	"github.com/hadir-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Code                  string           `json:"code"`
	FullName              string           `json:"full_name"`
	Department            string           `json:"department"`
	BaseSalary            decimal.Decimal  `json:"base_salary"`
	BaseBonus             decimal.Decimal  `json:"base_bonus"`
	BonusPercentage       decimal.Decimal  `json:"bonus_percentage"`
	MealAllowance         *decimal.Decimal `json:"meal_allowance,omitempty"`
	MedicalInsurance      decimal.Decimal  `json:"medical_insurance"`
	SocialInsurance       decimal.Decimal  `json:"social_insurance"`
	WorkDaysPerWeek       int              `json:"work_days_per_week"`
	AnnualLeaveBalance    decimal.Decimal  `json:"annual_leave_balance"`
	EidBonus              decimal.Decimal  `json:"eid_bonus"`
	PenaltiesValue        decimal.Decimal  `json:"penalties_value"`
	ViolationsInstallment decimal.Decimal  `json:"violations_installment"`
	Advances              decimal.Decimal  `json:"advances"`
	MonthlyLateAllowance  int              `json:"monthly_late_allowance"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be 1-10 digits"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be greater than zero"})
	}
	if r.WorkDaysPerWeek != 5 && r.WorkDaysPerWeek != 6 {
		errs = append(errs, validator.ValidationError{Field: "work_days_per_week", Message: "must be 5 or 6"})
	}
	if r.MonthlyLateAllowance < 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_late_allowance", Message: "must be non-negative"})
	}
	for field, v := range map[string]decimal.Decimal{
		"base_bonus":             r.BaseBonus,
		"bonus_percentage":       r.BonusPercentage,
		"medical_insurance":      r.MedicalInsurance,
		"social_insurance":       r.SocialInsurance,
		"annual_leave_balance":   r.AnnualLeaveBalance,
		"eid_bonus":              r.EidBonus,
		"penalties_value":        r.PenaltiesValue,
		"violations_installment": r.ViolationsInstallment,
		"advances":               r.Advances,
	} {
		if v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	if r.MealAllowance != nil && r.MealAllowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "meal_allowance", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Code                  string           `json:"-"`
	FullName              *string          `json:"full_name,omitempty"`
	Department            *string          `json:"department,omitempty"`
	BaseSalary            *decimal.Decimal `json:"base_salary,omitempty"`
	BaseBonus             *decimal.Decimal `json:"base_bonus,omitempty"`
	BonusPercentage       *decimal.Decimal `json:"bonus_percentage,omitempty"`
	MealAllowance         *decimal.Decimal `json:"meal_allowance,omitempty"`
	MedicalInsurance      *decimal.Decimal `json:"medical_insurance,omitempty"`
	SocialInsurance       *decimal.Decimal `json:"social_insurance,omitempty"`
	WorkDaysPerWeek       *int             `json:"work_days_per_week,omitempty"`
	AnnualLeaveBalance    *decimal.Decimal `json:"annual_leave_balance,omitempty"`
	EidBonus              *decimal.Decimal `json:"eid_bonus,omitempty"`
	PenaltiesValue        *decimal.Decimal `json:"penalties_value,omitempty"`
	ViolationsInstallment *decimal.Decimal `json:"violations_installment,omitempty"`
	Advances              *decimal.Decimal `json:"advances,omitempty"`
	MonthlyLateAllowance  *int             `json:"monthly_late_allowance,omitempty"`
	Status                *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BaseSalary != nil && !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be greater than zero"})
	}
	if r.WorkDaysPerWeek != nil && *r.WorkDaysPerWeek != 5 && *r.WorkDaysPerWeek != 6 {
		errs = append(errs, validator.ValidationError{Field: "work_days_per_week", Message: "must be 5 or 6"})
	}
	if r.MonthlyLateAllowance != nil && *r.MonthlyLateAllowance < 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_late_allowance", Message: "must be non-negative"})
	}
	if r.Status != nil && *r.Status != string(StatusActive) && *r.Status != string(StatusDisabled) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active' or 'disabled'"})
	}
	for field, v := range map[string]*decimal.Decimal{
		"base_bonus":             r.BaseBonus,
		"bonus_percentage":       r.BonusPercentage,
		"meal_allowance":         r.MealAllowance,
		"medical_insurance":      r.MedicalInsurance,
		"social_insurance":       r.SocialInsurance,
		"annual_leave_balance":   r.AnnualLeaveBalance,
		"eid_bonus":              r.EidBonus,
		"penalties_value":        r.PenaltiesValue,
		"violations_installment": r.ViolationsInstallment,
		"advances":               r.Advances,
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

// BulkAdjustRequest applies a financial adjustment to every active employee
// that is not linked to an admin account. Nil fields are left untouched.
type BulkAdjustRequest struct {
	EidBonus             *decimal.Decimal `json:"eid_bonus,omitempty"`
	Advances             *decimal.Decimal `json:"advances,omitempty"`
	PenaltiesValue       *decimal.Decimal `json:"penalties_value,omitempty"`
	MonthlyLateAllowance *int             `json:"monthly_late_allowance,omitempty"`
	AnnualLeaveBalance   *decimal.Decimal `json:"annual_leave_balance,omitempty"`
}

func (r *BulkAdjustRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EidBonus == nil && r.Advances == nil && r.PenaltiesValue == nil &&
		r.MonthlyLateAllowance == nil && r.AnnualLeaveBalance == nil {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "at least one field is required"})
	}
	for field, v := range map[string]*decimal.Decimal{
		"eid_bonus":            r.EidBonus,
		"advances":             r.Advances,
		"penalties_value":      r.PenaltiesValue,
		"annual_leave_balance": r.AnnualLeaveBalance,
	} {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	if r.MonthlyLateAllowance != nil && *r.MonthlyLateAllowance < 0 {
		errs = append(errs, validator.ValidationError{Field: "monthly_late_allowance", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                    string          `json:"id"`
	Code                  string          `json:"code"`
	FullName              string          `json:"full_name"`
	Department            string          `json:"department"`
	BaseSalary            decimal.Decimal `json:"base_salary"`
	BaseBonus             decimal.Decimal `json:"base_bonus"`
	BonusPercentage       decimal.Decimal `json:"bonus_percentage"`
	MealAllowance         decimal.Decimal `json:"meal_allowance"`
	MedicalInsurance      decimal.Decimal `json:"medical_insurance"`
	SocialInsurance       decimal.Decimal `json:"social_insurance"`
	WorkDaysPerWeek       int             `json:"work_days_per_week"`
	AnnualLeaveBalance    decimal.Decimal `json:"annual_leave_balance"`
	EidBonus              decimal.Decimal `json:"eid_bonus"`
	PenaltiesValue        decimal.Decimal `json:"penalties_value"`
	ViolationsInstallment decimal.Decimal `json:"violations_installment"`
	Advances              decimal.Decimal `json:"advances"`
	MonthlyLateAllowance  int             `json:"monthly_late_allowance"`
	Status                string          `json:"status"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

type EmployeeFilter struct {
	Department *string
	Status     *string
	Page       int
	Limit      int
}
