package payroll

import "errors"

var (
	ErrBaseSalaryRequired     = errors.New("employee base salary must be greater than zero")
	ErrBonusReportNotFound    = errors.New("bonus report not found")
	ErrBonusReportExists      = errors.New("bonus report already exists for this employee and period")
	ErrBonusFieldDecrease     = errors.New("tie-up value and deductions may not decrease")
	ErrBonusReportAlreadyPaid = errors.New("bonus report already paid, cannot modify")
)
