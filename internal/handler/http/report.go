package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/audient-hq/audient-backend/internal/domain/report"
	"github.com/audient-hq/audient-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	Employees(w http.ResponseWriter, r *http.Request)
	ByDate(w http.ResponseWriter, r *http.Request)
	MonthSummary(w http.ResponseWriter, r *http.Request)
	EmployeeHistory(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Employees implements ReportHandler.
func (h *reportHandlerImpl) Employees(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.EmployeesWithLastLogin(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ByDate implements ReportHandler.
func (h *reportHandlerImpl) ByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Query parameter 'date' is required", nil)
		return
	}

	result, err := h.reportService.AttendanceByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthSummary implements ReportHandler. Year and month default to the
// current ones when omitted.
func (h *reportHandlerImpl) MonthSummary(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "Invalid year parameter", nil)
			return
		}
		year = parsed
	}

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil {
			response.BadRequest(w, "Invalid month parameter", nil)
			return
		}
		month = parsed
	}

	result, err := h.reportService.MonthSummary(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeHistory implements ReportHandler.
func (h *reportHandlerImpl) EmployeeHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.reportService.EmployeeHistory(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
