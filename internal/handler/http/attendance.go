package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/attendance"
	"github.com/bookstore-chain/timeclock-backend-go/internal/handler/http/response"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/geoloc"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ClockAction(w http.ResponseWriter, r *http.Request)
	RecentActivity(w http.ResponseWriter, r *http.Request)

	ListRecords(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	UpdateRecord(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// clockActionBody is the kiosk's wire format. The device resolves its own
// position; absent coordinates mean it could not.
type clockActionBody struct {
	EmployeeID string   `json:"employee_id"`
	PIN        string   `json:"pin"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

// ClockAction implements AttendanceHandler
func (h *attendanceHandlerImpl) ClockAction(w http.ResponseWriter, r *http.Request) {
	var body clockActionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	req := attendance.ActionRequest{
		EmployeeID: body.EmployeeID,
		PIN:        body.PIN,
		Position:   geoloc.Unavailable(),
	}
	if body.Latitude != nil && body.Longitude != nil {
		req.Position = geoloc.Static(*body.Latitude, *body.Longitude)
	}

	result, err := h.attendanceService.RecordAction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RecentActivity implements AttendanceHandler
func (h *attendanceHandlerImpl) RecentActivity(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	results, err := h.attendanceService.RecentActivity(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListRecords implements AttendanceHandler
func (h *attendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	req := attendance.ListRecordsRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		FromDate:   r.URL.Query().Get("from"),
		ToDate:     r.URL.Query().Get("to"),
	}

	results, err := h.attendanceService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetRecord implements AttendanceHandler
func (h *attendanceHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateRecord implements AttendanceHandler
func (h *attendanceHandlerImpl) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.attendanceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record updated", result)
}

// DeleteRecord implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}
