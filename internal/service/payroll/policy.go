package payroll

import "github.com/shopspring/decimal"

// Payroll month and workday constants. Salary formulas assume a fixed 30-day
// month (dailySalary = baseSalary / 30) and a 9-hour nominal workday; the
// period aggregation is reconciled against the same 30-day denominator.
const (
	DaysInPayrollMonth  = 30
	NominalWorkdayHours = 9

	DefaultLateMinutesPerDeductionDay = 120
)

var (
	daysInPayrollMonth  = decimal.NewFromInt(DaysInPayrollMonth)
	nominalWorkdayHours = decimal.NewFromInt(NominalWorkdayHours)
	hundred             = decimal.NewFromInt(100)

	// BaseMealAllowance is the fixed monthly meal allowance; each absence day
	// forfeits MealForfeitPerAbsence of it, floored at zero.
	BaseMealAllowance     = decimal.NewFromInt(500)
	MealForfeitPerAbsence = decimal.NewFromInt(50)

	// LeaveCompensationMultiplier pays leave compensation at double the
	// daily rate.
	LeaveCompensationMultiplier = decimal.NewFromInt(2)
)

// Policy carries the payroll ratios that depend on company policy rather
// than on the fixed salary arithmetic.
type Policy struct {
	// LateMinutesPerDeductionDay converts cumulative late minutes in excess
	// of the monthly allowance into a fractional deduction-day equivalent.
	LateMinutesPerDeductionDay int
	// MedicalLeaveDeductionFactor is the fraction of a day deducted per
	// medical-leave day.
	MedicalLeaveDeductionFactor decimal.Decimal
}

func DefaultPolicy() Policy {
	return Policy{
		LateMinutesPerDeductionDay:  DefaultLateMinutesPerDeductionDay,
		MedicalLeaveDeductionFactor: decimal.NewFromFloat(0.25),
	}
}
