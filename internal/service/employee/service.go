package employee

import (
	"context"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/employee"
	"github.com/hadir-hr/payroll-backend-go/internal/service/payroll"
)

// Service owns the employee master records the payroll engine reads from.
// Employees are never hard-deleted through normal flows; they are disabled so
// historical reports keep resolving. Every operation is a single statement,
// so no transaction spans are needed here.
type Service struct {
	employeeRepo employee.EmployeeRepository
}

func NewService(employeeRepo employee.EmployeeRepository) *Service {
	return &Service{employeeRepo: employeeRepo}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	mealAllowance := payroll.BaseMealAllowance
	if req.MealAllowance != nil {
		mealAllowance = *req.MealAllowance
	}

	emp := employee.Employee{
		Code:                  req.Code,
		FullName:              req.FullName,
		Department:            req.Department,
		BaseSalary:            req.BaseSalary,
		BaseBonus:             req.BaseBonus,
		BonusPercentage:       req.BonusPercentage,
		MealAllowance:         mealAllowance,
		MedicalInsurance:      req.MedicalInsurance,
		SocialInsurance:       req.SocialInsurance,
		WorkDaysPerWeek:       req.WorkDaysPerWeek,
		AnnualLeaveBalance:    req.AnnualLeaveBalance,
		EidBonus:              req.EidBonus,
		PenaltiesValue:        req.PenaltiesValue,
		ViolationsInstallment: req.ViolationsInstallment,
		Advances:              req.Advances,
		MonthlyLateAllowance:  req.MonthlyLateAllowance,
		Status:                employee.StatusActive,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToEmployeeResponse(created), nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByCode(ctx, code)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToEmployeeResponse(emp), nil
}

func (s *Service) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	data := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		data = append(data, mapToEmployeeResponse(emp))
	}
	return employee.ListEmployeeResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *Service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByCode(ctx, req.Code)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.BaseSalary != nil {
		emp.BaseSalary = *req.BaseSalary
	}
	if req.BaseBonus != nil {
		emp.BaseBonus = *req.BaseBonus
	}
	if req.BonusPercentage != nil {
		emp.BonusPercentage = *req.BonusPercentage
	}
	if req.MealAllowance != nil {
		emp.MealAllowance = *req.MealAllowance
	}
	if req.MedicalInsurance != nil {
		emp.MedicalInsurance = *req.MedicalInsurance
	}
	if req.SocialInsurance != nil {
		emp.SocialInsurance = *req.SocialInsurance
	}
	if req.WorkDaysPerWeek != nil {
		emp.WorkDaysPerWeek = *req.WorkDaysPerWeek
	}
	if req.AnnualLeaveBalance != nil {
		emp.AnnualLeaveBalance = *req.AnnualLeaveBalance
	}
	if req.EidBonus != nil {
		emp.EidBonus = *req.EidBonus
	}
	if req.PenaltiesValue != nil {
		emp.PenaltiesValue = *req.PenaltiesValue
	}
	if req.ViolationsInstallment != nil {
		emp.ViolationsInstallment = *req.ViolationsInstallment
	}
	if req.Advances != nil {
		emp.Advances = *req.Advances
	}
	if req.MonthlyLateAllowance != nil {
		emp.MonthlyLateAllowance = *req.MonthlyLateAllowance
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToEmployeeResponse(updated), nil
}

// BulkAdjust applies the adjustment to every active, non-admin employee and
// returns the affected count.
func (s *Service) BulkAdjust(ctx context.Context, req employee.BulkAdjustRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return s.employeeRepo.BulkAdjust(ctx, req)
}

// Disable soft-disables the employee; reports and history stay intact.
func (s *Service) Disable(ctx context.Context, code string) error {
	if _, err := s.employeeRepo.GetByCode(ctx, code); err != nil {
		return err
	}
	return s.employeeRepo.SetStatus(ctx, code, employee.StatusDisabled)
}

// Delete hard-deletes an employee. Codes linked to an admin account are
// protected and return ErrAdminProtected.
func (s *Service) Delete(ctx context.Context, code string) error {
	if _, err := s.employeeRepo.GetByCode(ctx, code); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, code)
}

func mapToEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                    emp.ID,
		Code:                  emp.Code,
		FullName:              emp.FullName,
		Department:            emp.Department,
		BaseSalary:            emp.BaseSalary.Round(2),
		BaseBonus:             emp.BaseBonus.Round(2),
		BonusPercentage:       emp.BonusPercentage,
		MealAllowance:         emp.MealAllowance.Round(2),
		MedicalInsurance:      emp.MedicalInsurance.Round(2),
		SocialInsurance:       emp.SocialInsurance.Round(2),
		WorkDaysPerWeek:       emp.WorkDaysPerWeek,
		AnnualLeaveBalance:    emp.AnnualLeaveBalance,
		EidBonus:              emp.EidBonus.Round(2),
		PenaltiesValue:        emp.PenaltiesValue.Round(2),
		ViolationsInstallment: emp.ViolationsInstallment.Round(2),
		Advances:              emp.Advances.Round(2),
		MonthlyLateAllowance:  emp.MonthlyLateAllowance,
		Status:                string(emp.Status),
	}
}
