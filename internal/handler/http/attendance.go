package http

import (
	"encoding/json"
	"net/http"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/hadir-hr/payroll-backend-go/internal/handler/http/response"
	attendanceService "github.com/hadir-hr/payroll-backend-go/internal/service/attendance"
	"github.com/go-chi/chi/v5"
)

const maxImportFileSize = 10 << 20 // 10 MiB

type AttendanceHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	EditDay(w http.ResponseWriter, r *http.Request)
	CreateLeaves(w http.ResponseWriter, r *http.Request)
	Purge(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	service *attendanceService.Service
}

func NewAttendanceHandler(service *attendanceService.Service) AttendanceHandler {
	return &attendanceHandlerImpl{service: service}
}

// Import implements AttendanceHandler. Expects a multipart upload with the
// fingerprint CSV in the "file" field.
func (h *attendanceHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportFileSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "A 'file' upload is required", nil)
		return
	}
	defer file.Close()

	summary, err := h.service.ImportFingerprintFile(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Import finished", summary)
}

// List implements AttendanceHandler
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	days, err := h.service.List(r.Context(),
		r.URL.Query().Get("employee_code"),
		r.URL.Query().Get("date_from"),
		r.URL.Query().Get("date_to"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, days)
}

// EditDay implements AttendanceHandler
func (h *attendanceHandlerImpl) EditDay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Attendance day ID is required", nil)
		return
	}

	var req attendance.EditDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.service.EditDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// CreateLeaves implements AttendanceHandler
func (h *attendanceHandlerImpl) CreateLeaves(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateLeaveRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.service.CreateLeaveRange(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave days created", map[string]int{"created": created})
}

// Purge implements AttendanceHandler - admin only
func (h *attendanceHandlerImpl) Purge(w http.ResponseWriter, r *http.Request) {
	var req attendance.PurgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	removed, err := h.service.Purge(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance days purged", map[string]int64{"removed": removed})
}
