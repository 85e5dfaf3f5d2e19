package response

import (
	"errors"
	"net/http"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/hadir-hr/payroll-backend-go/internal/domain/auth"
	"github.com/hadir-hr/payroll-backend-go/internal/domain/employee"
	"github.com/hadir-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/hadir-hr/payroll-backend-go/internal/domain/user"
	"github.com/hadir-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrAdminProtected):
		Forbidden(w, "Employee is linked to an admin account")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDayNotFound):
		NotFound(w, "Attendance day not found")
	case errors.Is(err, attendance.ErrDayAlreadyExists):
		Conflict(w, "Attendance day already exists for this date")
	case errors.Is(err, attendance.ErrConflictingStates):
		ValidationError(w, map[string]string{"flags": attendance.ErrConflictingStates.Error()})

	// Payroll domain errors
	case errors.Is(err, payroll.ErrBaseSalaryRequired):
		ValidationError(w, map[string]string{"base_salary": payroll.ErrBaseSalaryRequired.Error()})
	case errors.Is(err, payroll.ErrBonusReportNotFound):
		NotFound(w, "Bonus report not found")
	case errors.Is(err, payroll.ErrBonusReportExists):
		Conflict(w, "Bonus report already exists for this period")
	case errors.Is(err, payroll.ErrBonusFieldDecrease):
		ValidationError(w, map[string]string{"body": payroll.ErrBonusFieldDecrease.Error()})
	case errors.Is(err, payroll.ErrBonusReportAlreadyPaid):
		Conflict(w, "Bonus report is already paid")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
