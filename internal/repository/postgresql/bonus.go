package postgresql

import (
	"context"

	payrollDomain "github.com/hadir-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/hadir-hr/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bonusColumns = `
	b.id, b.employee_code, b.period_month, b.period_year, b.base_bonus,
	b.bonus_percentage, b.total_work_days, b.absences, b.annual_leave,
	b.medical_leave, b.total_leave_days, b.tie_up_value, b.production_value,
	b.advances, b.deductions, b.net_bonus, b.status, b.created_at, b.updated_at,
	e.full_name
`

type bonusRepositoryImpl struct {
	db *database.DB
}

func NewBonusRepository(db *database.DB) payrollDomain.BonusRepository {
	return &bonusRepositoryImpl{db: db}
}

func scanBonusReport(row pgx.Row) (payrollDomain.BonusReport, error) {
	var r payrollDomain.BonusReport
	err := row.Scan(
		&r.ID,
		&r.EmployeeCode,
		&r.PeriodMonth,
		&r.PeriodYear,
		&r.BaseBonus,
		&r.BonusPercentage,
		&r.TotalWorkDays,
		&r.Absences,
		&r.AnnualLeave,
		&r.MedicalLeave,
		&r.TotalLeaveDays,
		&r.TieUpValue,
		&r.ProductionValue,
		&r.Advances,
		&r.Deductions,
		&r.NetBonus,
		&r.Status,
		&r.CreatedAt,
		&r.UpdatedAt,
		&r.EmployeeName,
	)
	return r, err
}

// Create implements payroll.BonusRepository. One report per employee per
// period.
func (r *bonusRepositoryImpl) Create(ctx context.Context, report payrollDomain.BonusReport) (payrollDomain.BonusReport, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM bonus_reports
			WHERE employee_code = $1 AND period_month = $2 AND period_year = $3
		)`,
		report.EmployeeCode, report.PeriodMonth, report.PeriodYear).Scan(&exists)
	if err != nil {
		return payrollDomain.BonusReport{}, err
	}
	if exists {
		return payrollDomain.BonusReport{}, payrollDomain.ErrBonusReportExists
	}

	query := `
		WITH inserted AS (
			INSERT INTO bonus_reports (
				id, employee_code, period_month, period_year, base_bonus,
				bonus_percentage, total_work_days, absences, annual_leave,
				medical_leave, total_leave_days, tie_up_value, production_value,
				advances, deductions, net_bonus, status
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			RETURNING *
		)
		SELECT ` + bonusColumns + `
		FROM inserted b
		LEFT JOIN employees e ON e.code = b.employee_code
	`

	row := q.QueryRow(ctx, query,
		uuid.New().String(),
		report.EmployeeCode,
		report.PeriodMonth,
		report.PeriodYear,
		report.BaseBonus,
		report.BonusPercentage,
		report.TotalWorkDays,
		report.Absences,
		report.AnnualLeave,
		report.MedicalLeave,
		report.TotalLeaveDays,
		report.TieUpValue,
		report.ProductionValue,
		report.Advances,
		report.Deductions,
		report.NetBonus,
		report.Status,
	)
	return scanBonusReport(row)
}

// GetByID implements payroll.BonusRepository.
func (r *bonusRepositoryImpl) GetByID(ctx context.Context, id string) (payrollDomain.BonusReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + bonusColumns + `
		FROM bonus_reports b
		LEFT JOIN employees e ON e.code = b.employee_code
		WHERE b.id = $1
	`
	report, err := scanBonusReport(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrollDomain.BonusReport{}, payrollDomain.ErrBonusReportNotFound
		}
		return payrollDomain.BonusReport{}, err
	}
	return report, nil
}

// GetByEmployeePeriod implements payroll.BonusRepository.
func (r *bonusRepositoryImpl) GetByEmployeePeriod(ctx context.Context, employeeCode string, month, year int) (payrollDomain.BonusReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + bonusColumns + `
		FROM bonus_reports b
		LEFT JOIN employees e ON e.code = b.employee_code
		WHERE b.employee_code = $1 AND b.period_month = $2 AND b.period_year = $3
	`
	report, err := scanBonusReport(q.QueryRow(ctx, query, employeeCode, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrollDomain.BonusReport{}, payrollDomain.ErrBonusReportNotFound
		}
		return payrollDomain.BonusReport{}, err
	}
	return report, nil
}

// ListByPeriod implements payroll.BonusRepository.
func (r *bonusRepositoryImpl) ListByPeriod(ctx context.Context, month, year int) ([]payrollDomain.BonusReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + bonusColumns + `
		FROM bonus_reports b
		LEFT JOIN employees e ON e.code = b.employee_code
		WHERE b.period_month = $1 AND b.period_year = $2
		ORDER BY b.employee_code
	`
	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []payrollDomain.BonusReport
	for rows.Next() {
		report, err := scanBonusReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// Update implements payroll.BonusRepository.
func (r *bonusRepositoryImpl) Update(ctx context.Context, report payrollDomain.BonusReport) (payrollDomain.BonusReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE bonus_reports SET
				tie_up_value = $1, production_value = $2, advances = $3,
				deductions = $4, net_bonus = $5, status = $6, updated_at = NOW()
			WHERE id = $7
			RETURNING *
		)
		SELECT ` + bonusColumns + `
		FROM updated b
		LEFT JOIN employees e ON e.code = b.employee_code
	`

	row := q.QueryRow(ctx, query,
		report.TieUpValue,
		report.ProductionValue,
		report.Advances,
		report.Deductions,
		report.NetBonus,
		report.Status,
		report.ID,
	)
	updated, err := scanBonusReport(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payrollDomain.BonusReport{}, payrollDomain.ErrBonusReportNotFound
		}
		return payrollDomain.BonusReport{}, err
	}
	return updated, nil
}
