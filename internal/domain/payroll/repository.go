package payroll

import "context"

type BonusRepository interface {
	Create(ctx context.Context, report BonusReport) (BonusReport, error)
	GetByID(ctx context.Context, id string) (BonusReport, error)
	GetByEmployeePeriod(ctx context.Context, employeeCode string, month, year int) (BonusReport, error)
	ListByPeriod(ctx context.Context, month, year int) ([]BonusReport, error)
	Update(ctx context.Context, report BonusReport) (BonusReport, error)
}
