package attendance

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/attendance"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/employee"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/schedule"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/shift"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/store"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/clock"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/geo"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/sse"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	schedule.ScheduleRepository
	shift.ShiftRepository
	store.StoreRepository

	hub      *sse.Hub
	clock    clock.Clock
	location *time.Location

	geofenceRadiusMeters float64
	locationTimeout      time.Duration

	// Serializes clock actions per employee so the open-record check and the
	// record mutation act on the same state.
	locks sync.Map
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.ScheduleRepository,
	shiftRepo shift.ShiftRepository,
	storeRepo store.StoreRepository,
	hub *sse.Hub,
	clk clock.Clock,
	location *time.Location,
	geofenceRadiusMeters float64,
	locationTimeout time.Duration,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		ScheduleRepository:   scheduleRepo,
		ShiftRepository:      shiftRepo,
		StoreRepository:      storeRepo,
		hub:                  hub,
		clock:                clk,
		location:             location,
		geofenceRadiusMeters: geofenceRadiusMeters,
		locationTimeout:      locationTimeout,
	}
}

func (s *AttendanceServiceImpl) employeeLock(employeeID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(employeeID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// RecordAction implements attendance.AttendanceService. Validation runs in a
// fixed order so the kiosk always reports the first applicable reason:
// schedule, shift window, store location, device position, geofence. Only a
// fully validated attempt touches the record.
func (s *AttendanceServiceImpl) RecordAction(ctx context.Context, req attendance.ActionRequest) (attendance.ActionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ActionResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.ActionResponse{}, err
	}
	if emp.PIN != req.PIN {
		return attendance.ActionResponse{}, employee.ErrPINMismatch
	}

	mu := s.employeeLock(req.EmployeeID)
	mu.Lock()
	defer mu.Unlock()

	// The open-record state is authoritative: an open record means this
	// attempt is a clock-out, otherwise a clock-in.
	open, err := s.AttendanceRepository.GetOpenRecord(ctx, req.EmployeeID)
	if err != nil {
		return attendance.ActionResponse{}, err
	}

	action := attendance.ActionClockIn
	if open != nil {
		action = attendance.ActionClockOut
	}

	now := s.clock.Now().In(s.location)
	today := now.Format("2006-01-02")

	entry, err := s.ScheduleRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.ActionResponse{}, err
	}
	if entry == nil || entry.ShiftID == schedule.NoShift {
		return attendance.ActionResponse{}, attendance.ErrNoScheduleToday
	}

	sh, err := s.ShiftRepository.GetByID(ctx, entry.ShiftID)
	if err != nil {
		return attendance.ActionResponse{}, err
	}

	from, to, boundary, err := actionWindow(sh, action, now)
	if err != nil {
		return attendance.ActionResponse{}, err
	}
	if !inWindow(now, from, to) {
		return attendance.ActionResponse{}, &attendance.OutsideWindowError{Action: action, From: from, To: to}
	}

	st, err := s.StoreRepository.GetByID(ctx, entry.StoreID)
	if err != nil {
		return attendance.ActionResponse{}, err
	}
	if !st.HasLocation() {
		return attendance.ActionResponse{}, attendance.ErrStoreLocationMissing
	}

	posCtx, cancel := context.WithTimeout(ctx, s.locationTimeout)
	defer cancel()

	pos, err := req.Position.CurrentPosition(posCtx)
	if err != nil {
		return attendance.ActionResponse{}, attendance.ErrLocationUnavailable
	}

	distance := geo.DistanceMeters(pos.Latitude, pos.Longitude, st.Latitude, st.Longitude)
	if distance > s.geofenceRadiusMeters {
		return attendance.ActionResponse{}, &attendance.OutsideGeofenceError{
			DistanceMeters: int(math.Round(distance)),
		}
	}

	var rec attendance.Record
	switch action {
	case attendance.ActionClockIn:
		rec, err = s.AttendanceRepository.Create(ctx, attendance.Record{
			EmployeeID: req.EmployeeID,
			ClockIn:    now.UTC(),
			LateHours:  positiveHours(now.Sub(boundary)),
		})
		if err != nil {
			return attendance.ActionResponse{}, err
		}
	case attendance.ActionClockOut:
		rec = *open
		out := now.UTC()
		rec.ClockOut = &out
		rec.EarlyLeaveHours = positiveHours(boundary.Sub(now))

		if err := s.AttendanceRepository.Update(ctx, rec); err != nil {
			if errors.Is(err, attendance.ErrRecordNotFound) {
				return attendance.ActionResponse{}, attendance.ErrNotClockedIn
			}
			return attendance.ActionResponse{}, err
		}
	}

	resp := attendance.ActionResponse{
		Action:       action,
		RecordID:     rec.ID,
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		ClockIn:      rec.ClockIn.In(s.location).Format("2006-01-02 15:04:05"),
		LateHours:    rec.LateHours,
		EarlyHours:   rec.EarlyLeaveHours,
	}
	if rec.ClockOut != nil {
		local := rec.ClockOut.In(s.location)
		resp.ClockOut = timePtrToString(&local)
	}

	s.hub.Publish(sse.Event{Event: "clock", Data: resp})

	return resp, nil
}

func (s *AttendanceServiceImpl) toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		ClockIn:         rec.ClockIn.In(s.location).Format("2006-01-02 15:04:05"),
		LateHours:       rec.LateHours,
		EarlyLeaveHours: rec.EarlyLeaveHours,
		ClockInEdited:   rec.ClockInEdited,
		ClockOutEdited:  rec.ClockOutEdited,
	}

	if rec.ClockOut != nil {
		local := rec.ClockOut.In(s.location)
		resp.ClockOut = timePtrToString(&local)
		worked := rec.ClockOut.Sub(rec.ClockIn).Hours()
		resp.WorkedHours = &worked
	}

	return resp
}

// List implements attendance.AttendanceService. The range is interpreted as
// calendar dates in the business timezone, both ends inclusive.
func (s *AttendanceServiceImpl) List(ctx context.Context, req attendance.ListRecordsRequest) ([]attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, err := time.ParseInLocation("2006-01-02", req.FromDate, s.location)
	if err != nil {
		return nil, err
	}
	to, err := time.ParseInLocation("2006-01-02", req.ToDate, s.location)
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByEmployeeBetween(ctx, req.EmployeeID, from.UTC(), to.AddDate(0, 0, 1).UTC())
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, s.toRecordResponse(rec))
	}

	return responses, nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.RecordResponse, error) {
	rec, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return s.toRecordResponse(rec), nil
}

// Update implements attendance.AttendanceService. Admin corrections replace
// the raw instants and mark the touched side as edited; the stored deviations
// are left alone since the shift context of the original action is gone.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if req.ClockIn != nil {
		in, err := time.ParseInLocation("2006-01-02 15:04:05", *req.ClockIn, s.location)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		rec.ClockIn = in.UTC()
		rec.ClockInEdited = true
	}

	if req.ClockOut != nil {
		if *req.ClockOut == "" {
			rec.ClockOut = nil
		} else {
			out, err := time.ParseInLocation("2006-01-02 15:04:05", *req.ClockOut, s.location)
			if err != nil {
				return attendance.RecordResponse{}, err
			}
			utc := out.UTC()
			rec.ClockOut = &utc
		}
		rec.ClockOutEdited = true
	}

	if err := s.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.RecordResponse{}, err
	}

	return s.toRecordResponse(rec), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.AttendanceRepository.Delete(ctx, id)
}

// RecentActivity implements attendance.AttendanceService. A record closed by
// a clock-out shows up as a clock-out event; an open record as a clock-in.
func (s *AttendanceServiceImpl) RecentActivity(ctx context.Context, limit int) ([]attendance.Activity, error) {
	if limit <= 0 {
		limit = 10
	}

	records, err := s.AttendanceRepository.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	activities := make([]attendance.Activity, 0, len(records))
	for _, rec := range records {
		emp, err := s.EmployeeRepository.GetByID(ctx, rec.EmployeeID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				continue
			}
			return nil, err
		}

		act := attendance.Activity{
			RecordID:     rec.ID,
			EmployeeName: emp.Name,
			Type:         attendance.ActionClockIn,
			Time:         rec.ClockIn.In(s.location).Format("2006-01-02 15:04:05"),
		}
		if rec.ClockOut != nil {
			act.Type = attendance.ActionClockOut
			act.Time = rec.ClockOut.In(s.location).Format("2006-01-02 15:04:05")
		}

		activities = append(activities, act)
	}

	return activities, nil
}
