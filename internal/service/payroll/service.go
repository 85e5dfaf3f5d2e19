package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/employee"
	payrollDomain "github.com/hadir-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/hadir-hr/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/attendance"
)

// Service runs the payroll engine against stored employees and attendance
// days. Report computation is stateless and request-scoped: each employee is
// read, computed and mapped independently.
type Service struct {
	tx             postgresql.Transactor
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	bonusRepo      payrollDomain.BonusRepository
	policy         Policy
}

func NewService(
	tx postgresql.Transactor,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	bonusRepo payrollDomain.BonusRepository,
	policy Policy,
) *Service {
	return &Service{
		tx:             tx,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		bonusRepo:      bonusRepo,
		policy:         policy,
	}
}

// ========== SALARY REPORTS ==========

// GenerateSalaryRun computes salary reports for one employee, or for every
// active employee when the request carries no employee code, plus run-level
// grand totals.
func (s *Service) GenerateSalaryRun(ctx context.Context, req payrollDomain.SalaryReportRequest) (payrollDomain.SalaryRunResponse, error) {
	if err := req.Validate(); err != nil {
		return payrollDomain.SalaryRunResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.DateFrom)
	to, _ := time.Parse("2006-01-02", req.DateTo)

	var employees []employee.Employee
	if req.EmployeeCode != "" {
		emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
		if err != nil {
			return payrollDomain.SalaryRunResponse{}, err
		}
		employees = []employee.Employee{emp}
	} else {
		var err error
		employees, err = s.employeeRepo.GetActive(ctx)
		if err != nil {
			return payrollDomain.SalaryRunResponse{}, fmt.Errorf("failed to list active employees: %w", err)
		}
	}

	totals := payrollDomain.SalaryRunTotals{
		TotalNetSalary:       decimal.Zero,
		TotalDeductionsValue: decimal.Zero,
		TotalOvertimeValue:   decimal.Zero,
	}

	reports := make([]payrollDomain.SalaryReportResponse, 0, len(employees))
	for _, emp := range employees {
		days, err := s.attendanceRepo.ListByEmployeeRange(ctx, emp.Code, from, to)
		if err != nil {
			return payrollDomain.SalaryRunResponse{}, fmt.Errorf("failed to load attendance for %s: %w", emp.Code, err)
		}

		report, err := BuildSalaryReport(emp, days, from, to, s.policy)
		if err != nil {
			return payrollDomain.SalaryRunResponse{}, fmt.Errorf("employee %s: %w", emp.Code, err)
		}

		totals.EmployeeCount++
		totals.TotalNetSalary = totals.TotalNetSalary.Add(report.NetSalary)
		totals.TotalDeductionsValue = totals.TotalDeductionsValue.Add(report.DeductionsValue)
		totals.TotalOvertimeValue = totals.TotalOvertimeValue.Add(report.OvertimeValue)
		totals.TotalAbsenceDays += report.TotalAbsenceDays
		totals.TotalWorkDays += report.TotalWorkDays

		reports = append(reports, mapToSalaryResponse(report))
	}

	return payrollDomain.SalaryRunResponse{
		Reports: reports,
		Totals: payrollDomain.SalaryRunTotalsResponse{
			EmployeeCount:        totals.EmployeeCount,
			TotalNetSalary:       totals.TotalNetSalary.Round(2),
			TotalDeductionsValue: totals.TotalDeductionsValue.Round(2),
			TotalOvertimeValue:   totals.TotalOvertimeValue.Round(2),
			TotalAbsenceDays:     totals.TotalAbsenceDays,
			TotalWorkDays:        totals.TotalWorkDays,
		},
	}, nil
}

// ========== BONUS REPORTS ==========

// GenerateBonusReports creates draft bonus reports for the period. Employees
// that already have a report for the period are skipped, never overwritten.
// The whole period is generated in one transaction; a failed insert rolls
// back every report created so far.
func (s *Service) GenerateBonusReports(ctx context.Context, req payrollDomain.GenerateBonusRequest) ([]payrollDomain.BonusReportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var employees []employee.Employee
	if len(req.EmployeeCodes) > 0 {
		for _, code := range req.EmployeeCodes {
			emp, err := s.employeeRepo.GetByCode(ctx, code)
			if err != nil {
				return nil, err
			}
			employees = append(employees, emp)
		}
	} else {
		var err error
		employees, err = s.employeeRepo.GetActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list active employees: %w", err)
		}
	}

	from := time.Date(req.PeriodYear, time.Month(req.PeriodMonth), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	var created []payrollDomain.BonusReportResponse
	err := s.tx.InTransaction(ctx, func(ctx context.Context) error {
		for _, emp := range employees {
			_, err := s.bonusRepo.GetByEmployeePeriod(ctx, emp.Code, req.PeriodMonth, req.PeriodYear)
			if err == nil {
				continue
			}
			if !errors.Is(err, payrollDomain.ErrBonusReportNotFound) {
				return fmt.Errorf("failed to check existing bonus report: %w", err)
			}

			days, err := s.attendanceRepo.ListByEmployeeRange(ctx, emp.Code, from, to)
			if err != nil {
				return fmt.Errorf("failed to load attendance for %s: %w", emp.Code, err)
			}

			totals := AggregatePeriod(days, emp.WorkDaysPerWeek, s.policy)
			totals = ReconcileToPayrollMonth(totals)

			report := BuildBonusReport(emp, totals, req.PeriodMonth, req.PeriodYear)
			stored, err := s.bonusRepo.Create(ctx, report)
			if err != nil {
				if errors.Is(err, payrollDomain.ErrBonusReportExists) {
					continue
				}
				return fmt.Errorf("failed to create bonus report for %s: %w", emp.Code, err)
			}
			created = append(created, mapToBonusResponse(stored))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateBonusReport applies an edit to the four editable fields. TieUpValue
// and Deductions are monotonic: a request below the stored value is rejected
// and the row is left untouched.
func (s *Service) UpdateBonusReport(ctx context.Context, req payrollDomain.UpdateBonusRequest) (payrollDomain.BonusReportResponse, error) {
	if err := req.Validate(); err != nil {
		return payrollDomain.BonusReportResponse{}, err
	}

	stored, err := s.bonusRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payrollDomain.BonusReportResponse{}, err
	}
	if stored.Status == payrollDomain.BonusStatusPaid {
		return payrollDomain.BonusReportResponse{}, payrollDomain.ErrBonusReportAlreadyPaid
	}

	if req.TieUpValue != nil && req.TieUpValue.LessThan(stored.TieUpValue) {
		return payrollDomain.BonusReportResponse{}, payrollDomain.ErrBonusFieldDecrease
	}
	if req.Deductions != nil && req.Deductions.LessThan(stored.Deductions) {
		return payrollDomain.BonusReportResponse{}, payrollDomain.ErrBonusFieldDecrease
	}

	if req.TieUpValue != nil {
		stored.TieUpValue = *req.TieUpValue
	}
	if req.ProductionValue != nil {
		stored.ProductionValue = *req.ProductionValue
	}
	if req.Advances != nil {
		stored.Advances = *req.Advances
	}
	if req.Deductions != nil {
		stored.Deductions = *req.Deductions
	}
	stored.NetBonus = RecomputeNetBonus(stored)

	updated, err := s.bonusRepo.Update(ctx, stored)
	if err != nil {
		return payrollDomain.BonusReportResponse{}, err
	}
	return mapToBonusResponse(updated), nil
}

func (s *Service) GetBonusReport(ctx context.Context, id string) (payrollDomain.BonusReportResponse, error) {
	report, err := s.bonusRepo.GetByID(ctx, id)
	if err != nil {
		return payrollDomain.BonusReportResponse{}, err
	}
	return mapToBonusResponse(report), nil
}

func (s *Service) ListBonusReports(ctx context.Context, month, year int) ([]payrollDomain.BonusReportResponse, error) {
	reports, err := s.bonusRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}
	result := make([]payrollDomain.BonusReportResponse, 0, len(reports))
	for _, r := range reports {
		result = append(result, mapToBonusResponse(r))
	}
	return result, nil
}

// ========== HELPERS ==========

func mapToSalaryResponse(r payrollDomain.SalaryReport) payrollDomain.SalaryReportResponse {
	return payrollDomain.SalaryReportResponse{
		EmployeeCode: r.EmployeeCode,
		EmployeeName: r.EmployeeName,
		Department:   r.Department,
		DateFrom:     r.DateFrom.Format("2006-01-02"),
		DateTo:       r.DateTo.Format("2006-01-02"),

		TotalWorkDays:              r.TotalWorkDays,
		TotalAbsenceDays:           r.TotalAbsenceDays,
		TotalAnnualLeaveDays:       r.TotalAnnualLeaveDays,
		TotalMedicalLeaveDays:      r.TotalMedicalLeaveDays,
		TotalOfficialLeaveDays:     r.TotalOfficialLeaveDays,
		TotalLeaveCompensationDays: r.TotalLeaveCompensationDays,
		TotalWeeklyLeaveDays:       r.TotalWeeklyLeaveDays,
		TotalAppropriateValueDays:  r.TotalAppropriateValueDays,

		TotalWorkHours:     r.TotalWorkHours,
		TotalOvertimeHours: r.TotalOvertimeHours,
		TotalLateMinutes:   r.TotalLateMinutes,

		RemainingLateAllowance:    r.RemainingLateAllowance,
		LateDeductionDays:         r.LateDeductionDays.Round(2),
		MedicalLeaveDeductionDays: r.MedicalLeaveDeductionDays.Round(2),
		TotalDeductionDays:        r.TotalDeductionDays.Round(2),

		BaseSalary:             r.BaseSalary.Round(2),
		DailySalary:            r.DailySalary.Round(2),
		OvertimeValue:          r.OvertimeValue.Round(2),
		LeaveCompensationValue: r.LeaveCompensationValue.Round(2),
		TotalAppropriateValue:  r.TotalAppropriateValue.Round(2),
		MealAllowance:          r.MealAllowance.Round(2),
		EidBonus:               r.EidBonus.Round(2),
		MedicalInsurance:       r.MedicalInsurance.Round(2),
		SocialInsurance:        r.SocialInsurance.Round(2),
		DeductionsValue:        r.DeductionsValue.Round(2),
		NetSalary:              r.NetSalary.Round(2),
	}
}

func mapToBonusResponse(r payrollDomain.BonusReport) payrollDomain.BonusReportResponse {
	employeeName := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}
	return payrollDomain.BonusReportResponse{
		ID:              r.ID,
		EmployeeCode:    r.EmployeeCode,
		EmployeeName:    employeeName,
		PeriodMonth:     r.PeriodMonth,
		PeriodYear:      r.PeriodYear,
		BaseBonus:       r.BaseBonus.Round(2),
		BonusPercentage: r.BonusPercentage,
		TotalWorkDays:   r.TotalWorkDays,
		Absences:        r.Absences,
		AnnualLeave:     r.AnnualLeave,
		MedicalLeave:    r.MedicalLeave,
		TotalLeaveDays:  r.TotalLeaveDays,
		TieUpValue:      r.TieUpValue.Round(2),
		ProductionValue: r.ProductionValue.Round(2),
		Advances:        r.Advances.Round(2),
		Deductions:      r.Deductions.Round(2),
		NetBonus:        r.NetBonus.Round(2),
		Status:          string(r.Status),
	}
}
