package postgresql

import (
	"context"
	"time"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/hadir-hr/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `
	id, employee_code, date, check_in, check_out, work_hours, overtime_hours,
	late_minutes, state, leave_compensation_value, appropriate_value,
	annual_leave_balance, monthly_late_allowance, created_at, updated_at
`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanDay(row pgx.Row) (attendance.Day, error) {
	var d attendance.Day
	err := row.Scan(
		&d.ID,
		&d.EmployeeCode,
		&d.Date,
		&d.CheckIn,
		&d.CheckOut,
		&d.WorkHours,
		&d.OvertimeHours,
		&d.LateMinutes,
		&d.State,
		&d.LeaveCompensationValue,
		&d.AppropriateValue,
		&d.AnnualLeaveBalance,
		&d.MonthlyLateAllowance,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

// Create implements attendance.AttendanceRepository. An employee has at most
// one row per calendar date.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, day attendance.Day) (attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM attendance_days WHERE employee_code = $1 AND date = $2)`,
		day.EmployeeCode, day.Date).Scan(&exists)
	if err != nil {
		return attendance.Day{}, err
	}
	if exists {
		return attendance.Day{}, attendance.ErrDayAlreadyExists
	}

	query := `
		INSERT INTO attendance_days (
			id, employee_code, date, check_in, check_out, work_hours, overtime_hours,
			late_minutes, state, leave_compensation_value, appropriate_value,
			annual_leave_balance, monthly_late_allowance
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + attendanceColumns

	row := q.QueryRow(ctx, query,
		uuid.New().String(),
		day.EmployeeCode,
		day.Date,
		day.CheckIn,
		day.CheckOut,
		day.WorkHours,
		day.OvertimeHours,
		day.LateMinutes,
		day.State,
		day.LeaveCompensationValue,
		day.AppropriateValue,
		day.AnnualLeaveBalance,
		day.MonthlyLateAllowance,
	)
	return scanDay(row)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_days WHERE id = $1`
	day, err := scanDay(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Day{}, attendance.ErrDayNotFound
		}
		return attendance.Day{}, err
	}
	return day, nil
}

// ListByEmployeeRange implements attendance.AttendanceRepository. Rows come
// back ascending by date; the payroll aggregation depends on that order.
func (r *attendanceRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeCode string, from, to time.Time) ([]attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_days
		WHERE employee_code = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`
	rows, err := q.Query(ctx, query, employeeCode, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDays(rows)
}

// ListByRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByRange(ctx context.Context, from, to time.Time) ([]attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_days
		WHERE date BETWEEN $1 AND $2
		ORDER BY employee_code, date ASC
	`
	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDays(rows)
}

func collectDays(rows pgx.Rows) ([]attendance.Day, error) {
	var days []attendance.Day
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, day attendance.Day) (attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_days SET
			check_in = $1, check_out = $2, work_hours = $3, overtime_hours = $4,
			late_minutes = $5, state = $6, leave_compensation_value = $7,
			appropriate_value = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING ` + attendanceColumns

	row := q.QueryRow(ctx, query,
		day.CheckIn,
		day.CheckOut,
		day.WorkHours,
		day.OvertimeHours,
		day.LateMinutes,
		day.State,
		day.LeaveCompensationValue,
		day.AppropriateValue,
		day.ID,
	)
	updated, err := scanDay(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Day{}, attendance.ErrDayNotFound
		}
		return attendance.Day{}, err
	}
	return updated, nil
}

// Purge implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Purge(ctx context.Context, employeeCode string, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	if employeeCode != "" {
		tag, err := q.Exec(ctx,
			`DELETE FROM attendance_days WHERE employee_code = $1 AND date BETWEEN $2 AND $3`,
			employeeCode, from, to)
		if err != nil {
			return 0, err
		}
		return tag.RowsAffected(), nil
	}

	tag, err := q.Exec(ctx,
		`DELETE FROM attendance_days WHERE date BETWEEN $1 AND $2`, from, to)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
