package http

import (
	"net/http"
	"strconv"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/report"
	"github.com/bookstore-chain/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	MonthlySummaries(w http.ResponseWriter, r *http.Request)
	EmployeeSummary(w http.ResponseWriter, r *http.Request)
	EmployeeDetail(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func yearMonth(r *http.Request) (int, int) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	return year, month
}

// MonthlySummaries implements ReportHandler
func (h *reportHandlerImpl) MonthlySummaries(w http.ResponseWriter, r *http.Request) {
	year, month := yearMonth(r)

	result, err := h.reportService.MonthlySummaries(r.Context(), report.MonthRequest{
		Year:  year,
		Month: month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeSummary implements ReportHandler
func (h *reportHandlerImpl) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	year, month := yearMonth(r)

	result, err := h.reportService.EmployeeSummary(r.Context(), report.EmployeeMonthRequest{
		EmployeeID: chi.URLParam(r, "id"),
		Year:       year,
		Month:      month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeDetail implements ReportHandler
func (h *reportHandlerImpl) EmployeeDetail(w http.ResponseWriter, r *http.Request) {
	year, month := yearMonth(r)

	result, err := h.reportService.EmployeeDetail(r.Context(), report.EmployeeMonthRequest{
		EmployeeID: chi.URLParam(r, "id"),
		Year:       year,
		Month:      month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
