package main

import (
	"fmt"
	"net/http"

	"github.com/hadir-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/hadir-hr/payroll-backend-go/internal/handler/http"
	"github.com/hadir-hr/payroll-backend-go/internal/pkg/database"
	"github.com/hadir-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/hadir-hr/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hadir-hr/payroll-backend-go/internal/service/attendance"
	authService "github.com/hadir-hr/payroll-backend-go/internal/service/auth"
	employeeService "github.com/hadir-hr/payroll-backend-go/internal/service/employee"
	payrollService "github.com/hadir-hr/payroll-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	txManager := postgresql.NewTxManager(db)
	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	policy := payrollService.Policy{
		LateMinutesPerDeductionDay:  cfg.Payroll.LateMinutesPerDeductionDay,
		MedicalLeaveDeductionFactor: decimal.NewFromFloat(cfg.Payroll.MedicalLeaveDeductionFactor),
	}

	authSvc := authService.NewService(userRepo, jwtService)
	employeeSvc := employeeService.NewService(employeeRepo)
	attendanceSvc := attendanceService.NewService(txManager, employeeRepo, attendanceRepo)
	payrollSvc := payrollService.NewService(txManager, employeeRepo, attendanceRepo, bonusRepo, policy)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(payrollSvc)

	router := appHTTP.NewRouter(cfg, jwtService, authHandler, employeeHandler, attendanceHandler, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
