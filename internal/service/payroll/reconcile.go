package payroll

// ReconcileToPayrollMonth normalizes a period's day-category counts to sum to
// exactly 30, the canonical payroll month length. Any difference is absorbed
// into the weekly-leave count, and only there, so the counts stay consistent
// with the fixed 30-day salary denominator. The adjustment can be negative
// when the queried range exceeds 30 classified days.
//
// Appropriate-value days are carried separately and do not participate in
// the 30-day sum.
func ReconcileToPayrollMonth(t PeriodTotals) PeriodTotals {
	totalDays := t.WorkDays + t.AbsenceDays + t.AnnualLeaveDays + t.WeeklyLeaveDays +
		t.MedicalLeaveDays + t.OfficialLeaveDays + t.LeaveCompensationDays
	if totalDays != DaysInPayrollMonth {
		t.WeeklyLeaveDays += DaysInPayrollMonth - totalDays
	}
	return t
}
