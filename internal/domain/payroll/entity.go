package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryReport is the aggregation of one employee's attendance days over a
// period combined with the employee's financial attributes. It is derived on
// every query, never stored.
type SalaryReport struct {
	EmployeeCode string
	EmployeeName string
	Department   string
	DateFrom     time.Time
	DateTo       time.Time

	// Day-category counts. After reconciliation the seven category counts
	// (work, absence, annual, medical, official, leave compensation, weekly
	// leave) sum to exactly 30.
	TotalWorkDays              int
	TotalAbsenceDays           int
	TotalAnnualLeaveDays       int
	TotalMedicalLeaveDays      int
	TotalOfficialLeaveDays     int
	TotalLeaveCompensationDays int
	TotalWeeklyLeaveDays       int
	TotalAppropriateValueDays  int

	TotalWorkHours     decimal.Decimal
	TotalOvertimeHours decimal.Decimal
	TotalLateMinutes   int

	RemainingLateAllowance    int
	LateDeductionDays         decimal.Decimal
	MedicalLeaveDeductionDays decimal.Decimal
	TotalDeductionDays        decimal.Decimal

	DailySalary             decimal.Decimal
	HourlyRate              decimal.Decimal
	BaseSalary              decimal.Decimal
	OvertimeValue           decimal.Decimal
	LeaveCompensationValue  decimal.Decimal
	TotalAppropriateValue   decimal.Decimal
	MealAllowance           decimal.Decimal
	EidBonus                decimal.Decimal
	MedicalInsurance        decimal.Decimal
	SocialInsurance         decimal.Decimal
	DeductionsValue         decimal.Decimal
	NetSalary               decimal.Decimal
}

// SalaryRunTotals aggregates a multi-employee salary run.
type SalaryRunTotals struct {
	EmployeeCount        int
	TotalNetSalary       decimal.Decimal
	TotalDeductionsValue decimal.Decimal
	TotalOvertimeValue   decimal.Decimal
	TotalAbsenceDays     int
	TotalWorkDays        int
}

type BonusStatus string

const (
	BonusStatusDraft BonusStatus = "draft"
	BonusStatusPaid  BonusStatus = "paid"
)

// BonusReport is the persisted per-employee bonus aggregate for one period.
// TieUpValue and Deductions are monotonic: an edit may never reduce them
// below the stored value.
type BonusReport struct {
	ID              string
	EmployeeCode    string
	PeriodMonth     int
	PeriodYear      int
	BaseBonus       decimal.Decimal
	BonusPercentage decimal.Decimal
	TotalWorkDays   int
	Absences        int
	AnnualLeave     int
	MedicalLeave    int
	TotalLeaveDays  int
	TieUpValue      decimal.Decimal
	ProductionValue decimal.Decimal
	Advances        decimal.Decimal
	Deductions      decimal.Decimal
	NetBonus        decimal.Decimal
	Status          BonusStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
}
