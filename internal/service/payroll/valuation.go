package payroll

import (
	"time"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/hadir-hr/payroll-backend-go/internal/domain/employee"
	payrollDomain "github.com/hadir-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// BuildSalaryReport classifies, aggregates, reconciles and values one
// employee's attendance days over [from, to]. It is a pure function: all
// I/O happens in the callers.
//
// Valuation rules:
//
//	dailySalary            = baseSalary / 30
//	hourlyRate             = dailySalary / 9
//	overtimeValue          = overtimeHours * hourlyRate
//	leaveCompensationValue = leaveCompensationDays * dailySalary * 2
//	mealAllowance          = max(0, baseMealAllowance - 50 * absenceDays)
//	deductionDays          = absenceDays + lateDeductionDays + medicalLeaveDeductionDays
//	deductionsValue        = deductionDays * dailySalary + penalties + violations + advances
//	netSalary              = baseSalary + mealAllowance + overtimeValue + eidBonus
//	                         + leaveCompensationValue - medicalInsurance
//	                         - socialInsurance - deductionsValue
//
// Full precision is kept throughout; rounding to 2 decimal places happens at
// the presentation boundary only.
func BuildSalaryReport(emp employee.Employee, days []attendance.Day, from, to time.Time, policy Policy) (payrollDomain.SalaryReport, error) {
	if !emp.BaseSalary.IsPositive() {
		return payrollDomain.SalaryReport{}, payrollDomain.ErrBaseSalaryRequired
	}

	totals := AggregatePeriod(days, emp.WorkDaysPerWeek, policy)
	totals = ReconcileToPayrollMonth(totals)

	dailySalary := emp.BaseSalary.Div(daysInPayrollMonth)
	hourlyRate := dailySalary.Div(nominalWorkdayHours)

	overtimeValue := totals.OvertimeHours.Mul(hourlyRate)
	leaveCompensationValue := decimal.NewFromInt(int64(totals.LeaveCompensationDays)).
		Mul(dailySalary).
		Mul(LeaveCompensationMultiplier)

	mealBase := emp.MealAllowance
	if mealBase.IsZero() {
		mealBase = BaseMealAllowance
	}
	mealAllowance := mealBase.Sub(MealForfeitPerAbsence.Mul(decimal.NewFromInt(int64(totals.AbsenceDays))))
	if mealAllowance.IsNegative() {
		mealAllowance = decimal.Zero
	}

	medicalLeaveDeductionDays := policy.MedicalLeaveDeductionFactor.
		Mul(decimal.NewFromInt(int64(totals.MedicalLeaveDays)))

	totalDeductionDays := decimal.NewFromInt(int64(totals.AbsenceDays)).
		Add(totals.LateDeductionDays).
		Add(medicalLeaveDeductionDays)

	deductionsValue := totalDeductionDays.Mul(dailySalary).
		Add(emp.PenaltiesValue).
		Add(emp.ViolationsInstallment).
		Add(emp.Advances)

	netSalary := emp.BaseSalary.
		Add(mealAllowance).
		Add(overtimeValue).
		Add(emp.EidBonus).
		Add(leaveCompensationValue).
		Sub(emp.MedicalInsurance).
		Sub(emp.SocialInsurance).
		Sub(deductionsValue)

	return payrollDomain.SalaryReport{
		EmployeeCode: emp.Code,
		EmployeeName: emp.FullName,
		Department:   emp.Department,
		DateFrom:     from,
		DateTo:       to,

		TotalWorkDays:              totals.WorkDays,
		TotalAbsenceDays:           totals.AbsenceDays,
		TotalAnnualLeaveDays:       totals.AnnualLeaveDays,
		TotalMedicalLeaveDays:      totals.MedicalLeaveDays,
		TotalOfficialLeaveDays:     totals.OfficialLeaveDays,
		TotalLeaveCompensationDays: totals.LeaveCompensationDays,
		TotalWeeklyLeaveDays:       totals.WeeklyLeaveDays,
		TotalAppropriateValueDays:  totals.AppropriateValueDays,

		TotalWorkHours:     totals.WorkHours,
		TotalOvertimeHours: totals.OvertimeHours,
		TotalLateMinutes:   totals.LateMinutes,

		RemainingLateAllowance:    totals.RemainingLateAllowance,
		LateDeductionDays:         totals.LateDeductionDays,
		MedicalLeaveDeductionDays: medicalLeaveDeductionDays,
		TotalDeductionDays:        totalDeductionDays,

		DailySalary:            dailySalary,
		HourlyRate:             hourlyRate,
		BaseSalary:             emp.BaseSalary,
		OvertimeValue:          overtimeValue,
		LeaveCompensationValue: leaveCompensationValue,
		TotalAppropriateValue:  totals.AppropriateValue,
		MealAllowance:          mealAllowance,
		EidBonus:               emp.EidBonus,
		MedicalInsurance:       emp.MedicalInsurance,
		SocialInsurance:        emp.SocialInsurance,
		DeductionsValue:        deductionsValue,
		NetSalary:              netSalary,
	}, nil
}
