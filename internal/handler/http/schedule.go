package http

import (
	"encoding/json"
	"net/http"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/schedule"
	"github.com/bookstore-chain/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
	ListForDate(w http.ResponseWriter, r *http.Request)
	WeekPreview(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// Upsert implements ScheduleHandler
func (h *scheduleHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result == nil {
		response.SuccessWithMessage(w, "Schedule entry removed", nil)
		return
	}

	response.SuccessWithMessage(w, "Schedule entry saved", result)
}

// ListForEmployee implements ScheduleHandler
func (h *scheduleHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	req := schedule.ListEntriesRequest{
		EmployeeID: chi.URLParam(r, "id"),
		FromDate:   r.URL.Query().Get("from"),
		ToDate:     r.URL.Query().Get("to"),
	}

	results, err := h.scheduleService.ListForEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListForDate implements ScheduleHandler
func (h *scheduleHandlerImpl) ListForDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required", nil)
		return
	}

	results, err := h.scheduleService.ListForDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// WeekPreview implements ScheduleHandler
func (h *scheduleHandlerImpl) WeekPreview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	results, err := h.scheduleService.WeekPreview(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
