package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/employee"
	"github.com/hadir-hr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `
	id, code, full_name, department, base_salary, base_bonus, bonus_percentage,
	meal_allowance, medical_insurance, social_insurance, work_days_per_week,
	annual_leave_balance, eid_bonus, penalties_value, violations_installment,
	advances, monthly_late_allowance, status, created_at, updated_at
`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.Code,
		&e.FullName,
		&e.Department,
		&e.BaseSalary,
		&e.BaseBonus,
		&e.BonusPercentage,
		&e.MealAllowance,
		&e.MedicalInsurance,
		&e.SocialInsurance,
		&e.WorkDaysPerWeek,
		&e.AnnualLeaveBalance,
		&e.EidBonus,
		&e.PenaltiesValue,
		&e.ViolationsInstallment,
		&e.Advances,
		&e.MonthlyLateAllowance,
		&e.Status,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE code = $1)`, emp.Code).Scan(&exists)
	if err != nil {
		return employee.Employee{}, err
	}
	if exists {
		return employee.Employee{}, employee.ErrEmployeeCodeExists
	}

	query := `
		INSERT INTO employees (
			code, full_name, department, base_salary, base_bonus, bonus_percentage,
			meal_allowance, medical_insurance, social_insurance, work_days_per_week,
			annual_leave_balance, eid_bonus, penalties_value, violations_installment,
			advances, monthly_late_allowance, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + employeeColumns

	row := q.QueryRow(ctx, query,
		emp.Code,
		emp.FullName,
		emp.Department,
		emp.BaseSalary,
		emp.BaseBonus,
		emp.BonusPercentage,
		emp.MealAllowance,
		emp.MedicalInsurance,
		emp.SocialInsurance,
		emp.WorkDaysPerWeek,
		emp.AnnualLeaveBalance,
		emp.EidBonus,
		emp.PenaltiesValue,
		emp.ViolationsInstallment,
		emp.Advances,
		emp.MonthlyLateAllowance,
		emp.Status,
	)
	return scanEmployee(row)
}

// GetByCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE code = $1`
	emp, err := scanEmployee(q.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Department != nil && *filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	listQuery := fmt.Sprintf(
		`SELECT %s FROM employees WHERE %s ORDER BY code LIMIT $%d OFFSET $%d`,
		employeeColumns, where, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	return employees, total, rows.Err()
}

// GetActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE status = 'active' ORDER BY code`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			full_name = $1, department = $2, base_salary = $3, base_bonus = $4,
			bonus_percentage = $5, meal_allowance = $6, medical_insurance = $7,
			social_insurance = $8, work_days_per_week = $9, annual_leave_balance = $10,
			eid_bonus = $11, penalties_value = $12, violations_installment = $13,
			advances = $14, monthly_late_allowance = $15, status = $16, updated_at = NOW()
		WHERE code = $17
		RETURNING ` + employeeColumns

	row := q.QueryRow(ctx, query,
		emp.FullName,
		emp.Department,
		emp.BaseSalary,
		emp.BaseBonus,
		emp.BonusPercentage,
		emp.MealAllowance,
		emp.MedicalInsurance,
		emp.SocialInsurance,
		emp.WorkDaysPerWeek,
		emp.AnnualLeaveBalance,
		emp.EidBonus,
		emp.PenaltiesValue,
		emp.ViolationsInstallment,
		emp.Advances,
		emp.MonthlyLateAllowance,
		emp.Status,
		emp.Code,
	)
	updated, err := scanEmployee(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return updated, nil
}

// BulkAdjust implements employee.EmployeeRepository. Employees whose code is
// linked to an admin user are excluded from the adjustment.
func (r *employeeRepositoryImpl) BulkAdjust(ctx context.Context, req employee.BulkAdjustRequest) (int64, error) {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	if req.EidBonus != nil {
		sets = append(sets, fmt.Sprintf("eid_bonus = $%d", argIdx))
		args = append(args, *req.EidBonus)
		argIdx++
	}
	if req.Advances != nil {
		sets = append(sets, fmt.Sprintf("advances = $%d", argIdx))
		args = append(args, *req.Advances)
		argIdx++
	}
	if req.PenaltiesValue != nil {
		sets = append(sets, fmt.Sprintf("penalties_value = $%d", argIdx))
		args = append(args, *req.PenaltiesValue)
		argIdx++
	}
	if req.MonthlyLateAllowance != nil {
		sets = append(sets, fmt.Sprintf("monthly_late_allowance = $%d", argIdx))
		args = append(args, *req.MonthlyLateAllowance)
		argIdx++
	}
	if req.AnnualLeaveBalance != nil {
		sets = append(sets, fmt.Sprintf("annual_leave_balance = $%d", argIdx))
		args = append(args, *req.AnnualLeaveBalance)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE employees SET %s
		WHERE status = 'active'
		  AND code NOT IN (
			SELECT employee_code FROM users
			WHERE is_admin = TRUE AND employee_code IS NOT NULL
		  )`, strings.Join(sets, ", "))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// SetStatus implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetStatus(ctx context.Context, code string, status employee.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET status = $1, updated_at = NOW() WHERE code = $2`,
		status, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository. Codes linked to an admin
// user are protected.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, code string) error {
	q := GetQuerier(ctx, r.db)

	var isAdminLinked bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE employee_code = $1 AND is_admin = TRUE)`,
		code).Scan(&isAdminLinked)
	if err != nil {
		return err
	}
	if isAdminLinked {
		return employee.ErrAdminProtected
	}

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE code = $1`, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
