package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	payrollDomain "github.com/hadir-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/hadir-hr/payroll-backend-go/internal/handler/http/response"
	payrollService "github.com/hadir-hr/payroll-backend-go/internal/service/payroll"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	SalaryRun(w http.ResponseWriter, r *http.Request)
	SalaryRegisterCSV(w http.ResponseWriter, r *http.Request)
	SalaryRegisterPDF(w http.ResponseWriter, r *http.Request)
	GenerateBonuses(w http.ResponseWriter, r *http.Request)
	ListBonuses(w http.ResponseWriter, r *http.Request)
	GetBonus(w http.ResponseWriter, r *http.Request)
	UpdateBonus(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	service *payrollService.Service
}

func NewReportHandler(service *payrollService.Service) ReportHandler {
	return &reportHandlerImpl{service: service}
}

func salaryRequestFromQuery(r *http.Request) payrollDomain.SalaryReportRequest {
	return payrollDomain.SalaryReportRequest{
		EmployeeCode: r.URL.Query().Get("employee_code"),
		DateFrom:     r.URL.Query().Get("date_from"),
		DateTo:       r.URL.Query().Get("date_to"),
	}
}

// SalaryRun implements ReportHandler. One employee when employee_code is
// given, every active employee otherwise.
func (h *reportHandlerImpl) SalaryRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.service.GenerateSalaryRun(r.Context(), salaryRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, run)
}

// SalaryRegisterCSV implements ReportHandler
func (h *reportHandlerImpl) SalaryRegisterCSV(w http.ResponseWriter, r *http.Request) {
	run, err := h.service.GenerateSalaryRun(r.Context(), salaryRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="salary-register.csv"`)
	if err := payrollService.WriteSalaryRegisterCSV(w, run); err != nil {
		// Headers are already out; nothing sensible left to send.
		return
	}
}

// SalaryRegisterPDF implements ReportHandler
func (h *reportHandlerImpl) SalaryRegisterPDF(w http.ResponseWriter, r *http.Request) {
	req := salaryRequestFromQuery(r)
	run, err := h.service.GenerateSalaryRun(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	pdf, err := payrollService.SalaryRegisterPDF(run, req.DateFrom, req.DateTo)
	if err != nil {
		response.InternalServerError(w, "Failed to render PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="salary-register.pdf"`)
	_, _ = w.Write(pdf)
}

// GenerateBonuses implements ReportHandler
func (h *reportHandlerImpl) GenerateBonuses(w http.ResponseWriter, r *http.Request) {
	var req payrollDomain.GenerateBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.service.GenerateBonusReports(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Bonus reports generated", created)
}

// ListBonuses implements ReportHandler
func (h *reportHandlerImpl) ListBonuses(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be an integer", nil)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be an integer", nil)
		return
	}

	reports, err := h.service.ListBonusReports(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, reports)
}

// GetBonus implements ReportHandler
func (h *reportHandlerImpl) GetBonus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Bonus report ID is required", nil)
		return
	}

	report, err := h.service.GetBonusReport(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// UpdateBonus implements ReportHandler
func (h *reportHandlerImpl) UpdateBonus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Bonus report ID is required", nil)
		return
	}

	var req payrollDomain.UpdateBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	report, err := h.service.UpdateBonusReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}
