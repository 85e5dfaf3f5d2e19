package payroll

import (
	"github.com/hadir-hr/payroll-backend-go/internal/domain/employee"
	payrollDomain "github.com/hadir-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// BuildBonusReport computes a fresh bonus report for one employee from the
// reconciled period totals. The base entitlement (baseBonus scaled by the
// bonus percentage) is pro-rated by the payable ratio: absence and leave
// days reduce eligibility proportionally against the 30-day payroll month.
// The editable fields (tie-up, production, advances, deductions) start at
// zero and enter the net through RecomputeNetBonus.
func BuildBonusReport(emp employee.Employee, totals PeriodTotals, month, year int) payrollDomain.BonusReport {
	totalLeaveDays := totals.AnnualLeaveDays + totals.MedicalLeaveDays

	report := payrollDomain.BonusReport{
		EmployeeCode:    emp.Code,
		PeriodMonth:     month,
		PeriodYear:      year,
		BaseBonus:       emp.BaseBonus,
		BonusPercentage: emp.BonusPercentage,
		TotalWorkDays:   totals.WorkDays,
		Absences:        totals.AbsenceDays,
		AnnualLeave:     totals.AnnualLeaveDays,
		MedicalLeave:    totals.MedicalLeaveDays,
		TotalLeaveDays:  totalLeaveDays,
		TieUpValue:      decimal.Zero,
		ProductionValue: decimal.Zero,
		Advances:        decimal.Zero,
		Deductions:      decimal.Zero,
		Status:          payrollDomain.BonusStatusDraft,
	}
	report.NetBonus = RecomputeNetBonus(report)
	return report
}

// RecomputeNetBonus derives the net bonus from the report's stored fields:
//
//	net = baseBonus * bonusPercentage/100 * payableRatio
//	      + tieUpValue + productionValue - advances - deductions
//
// where payableRatio = (30 - absences - totalLeaveDays) / 30, clamped to
// [0, 1].
func RecomputeNetBonus(r payrollDomain.BonusReport) decimal.Decimal {
	payableDays := DaysInPayrollMonth - r.Absences - r.TotalLeaveDays
	if payableDays < 0 {
		payableDays = 0
	}
	if payableDays > DaysInPayrollMonth {
		payableDays = DaysInPayrollMonth
	}
	ratio := decimal.NewFromInt(int64(payableDays)).Div(daysInPayrollMonth)

	entitlement := r.BaseBonus.Mul(r.BonusPercentage).Div(hundred).Mul(ratio)

	return entitlement.
		Add(r.TieUpValue).
		Add(r.ProductionValue).
		Sub(r.Advances).
		Sub(r.Deductions)
}
