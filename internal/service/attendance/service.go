package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/hadir-hr/payroll-backend-go/internal/domain/employee"
	"github.com/hadir-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/hadir-hr/payroll-backend-go/internal/repository/postgresql"
)

// Service owns attendance-day writes: fingerprint imports, single-day edits,
// bulk leave creation and administrative purges. Every write path funnels
// through the same state resolution, so a day can never hold more than one
// classification flag.
type Service struct {
	tx             postgresql.Transactor
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewService(
	tx postgresql.Transactor,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) *Service {
	return &Service{
		tx:             tx,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// EditDay applies a single-day edit. The request's flag set is collapsed into
// one day state; conflicting flags are rejected before anything is written.
func (s *Service) EditDay(ctx context.Context, req attendance.EditDayRequest) (attendance.DayResponse, error) {
	state, err := req.ResolveState()
	if err != nil {
		return attendance.DayResponse{}, err
	}

	day, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	if req.CheckIn != nil {
		t, err := parseClock(day.Date, *req.CheckIn)
		if err != nil {
			return attendance.DayResponse{}, validator.ValidationErrors{{Field: "check_in", Message: "must be HH:MM"}}
		}
		day.CheckIn = &t
	}
	if req.CheckOut != nil {
		t, err := parseClock(day.Date, *req.CheckOut)
		if err != nil {
			return attendance.DayResponse{}, validator.ValidationErrors{{Field: "check_out", Message: "must be HH:MM"}}
		}
		day.CheckOut = &t
	}
	if req.WorkHours != nil {
		day.WorkHours = *req.WorkHours
	}
	if req.OvertimeHours != nil {
		day.OvertimeHours = *req.OvertimeHours
	}
	if req.LateMinutes != nil {
		day.LateMinutes = *req.LateMinutes
	}
	day.State = state
	day.LeaveCompensationValue = req.LeaveCompensationValue
	day.AppropriateValue = req.AppropriateValue

	updated, err := s.attendanceRepo.Update(ctx, day)
	if err != nil {
		return attendance.DayResponse{}, err
	}
	return mapToDayResponse(updated), nil
}

// CreateLeaveRange creates one leave-typed day per calendar date in the range
// for one employee, or for every active employee when no code is given. Dates
// that already have a day are skipped, never overwritten. The whole range is
// written in one transaction; a failed insert rolls back every day created so
// far. Returns the number of days created.
func (s *Service) CreateLeaveRange(ctx context.Context, req attendance.CreateLeaveRangeRequest) (int, error) {
	from, to, state, err := req.Validate()
	if err != nil {
		return 0, err
	}

	var employees []employee.Employee
	if req.EmployeeCode != "" {
		emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
		if err != nil {
			return 0, err
		}
		employees = []employee.Employee{emp}
	} else {
		employees, err = s.employeeRepo.GetActive(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to list active employees: %w", err)
		}
	}

	created := 0
	err = s.tx.InTransaction(ctx, func(ctx context.Context) error {
		for _, emp := range employees {
			for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
				day := attendance.Day{
					EmployeeCode:         emp.Code,
					Date:                 d,
					State:                state,
					AnnualLeaveBalance:   emp.AnnualLeaveBalance,
					MonthlyLateAllowance: emp.MonthlyLateAllowance,
				}
				if _, err := s.attendanceRepo.Create(ctx, day); err != nil {
					if errors.Is(err, attendance.ErrDayAlreadyExists) {
						continue
					}
					return fmt.Errorf("failed to create leave day for %s: %w", emp.Code, err)
				}
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// List returns one employee's days over a range, ascending by date.
func (s *Service) List(ctx context.Context, employeeCode, dateFrom, dateTo string) ([]attendance.DayResponse, error) {
	from, to, errs := validator.ValidateDateRange(dateFrom, dateTo)
	if employeeCode != "" && !validator.IsValidEmployeeCode(employeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must be 1-10 digits"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	var days []attendance.Day
	var err error
	if employeeCode != "" {
		days, err = s.attendanceRepo.ListByEmployeeRange(ctx, employeeCode, from, to)
	} else {
		days, err = s.attendanceRepo.ListByRange(ctx, from, to)
	}
	if err != nil {
		return nil, err
	}

	result := make([]attendance.DayResponse, 0, len(days))
	for _, d := range days {
		result = append(result, mapToDayResponse(d))
	}
	return result, nil
}

// Purge bulk-deletes days over a range, optionally narrowed to one employee.
func (s *Service) Purge(ctx context.Context, req attendance.PurgeRequest) (int64, error) {
	from, to, err := req.Validate()
	if err != nil {
		return 0, err
	}
	return s.attendanceRepo.Purge(ctx, req.EmployeeCode, from, to)
}

func parseClock(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

func mapToDayResponse(d attendance.Day) attendance.DayResponse {
	var checkIn, checkOut *string
	if d.CheckIn != nil {
		v := d.CheckIn.Format("15:04")
		checkIn = &v
	}
	if d.CheckOut != nil {
		v := d.CheckOut.Format("15:04")
		checkOut = &v
	}
	return attendance.DayResponse{
		ID:                     d.ID,
		EmployeeCode:           d.EmployeeCode,
		Date:                   d.Date.Format("2006-01-02"),
		CheckIn:                checkIn,
		CheckOut:               checkOut,
		WorkHours:              d.WorkHours.Round(2),
		OvertimeHours:          d.OvertimeHours.Round(2),
		LateMinutes:            d.LateMinutes,
		State:                  string(d.State),
		LeaveCompensationValue: d.LeaveCompensationValue.Round(2),
		AppropriateValue:       d.AppropriateValue.Round(2),
		AnnualLeaveBalance:     d.AnnualLeaveBalance,
		MonthlyLateAllowance:   d.MonthlyLateAllowance,
	}
}
