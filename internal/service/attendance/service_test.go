package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/attendance"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/employee"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/schedule"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/shift"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/store"
	"github.com/bookstore-chain/timeclock-backend-go/internal/fixtures"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/clock"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/geoloc"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testStoreLat = 10.776
	testStoreLon = 106.700
)

type engineFixture struct {
	svc        attendance.AttendanceService
	clk        *clock.Fixed
	employees  *fixtures.EmployeeRepository
	records    *fixtures.AttendanceRepository
	schedules  *fixtures.ScheduleRepository
	shifts     *fixtures.ShiftRepository
	stores     *fixtures.StoreRepository
	hub        *sse.Hub
	employeeID string
	storeID    string
	shiftID    string
}

// newEngineFixture seeds one employee on a morning shift (08:00-17:00, 30
// minutes of grace on each side of clock-in, 30 before and 60 after
// clock-out) at a located store, scheduled for 2026-03-02.
func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	ctx := context.Background()

	employees := fixtures.NewEmployeeRepository()
	records := fixtures.NewAttendanceRepository()
	schedules := fixtures.NewScheduleRepository()
	shifts := fixtures.NewShiftRepository()
	stores := fixtures.NewStoreRepository()
	hub := sse.NewHub()

	emp, err := employees.Create(ctx, employee.Employee{Name: "An Nguyen", PIN: "1234"})
	require.NoError(t, err)

	st, err := stores.Create(ctx, store.StoreLocation{
		Name:      "District 1",
		Latitude:  testStoreLat,
		Longitude: testStoreLon,
	})
	require.NoError(t, err)

	sh, err := shifts.Create(ctx, shift.Shift{
		Name:      "Morning",
		ShortName: "M",
		StartTime: "08:00",
		EndTime:   "17:00",

		ClockInGraceBeforeMinutes:  30,
		ClockInGraceAfterMinutes:   30,
		ClockOutGraceBeforeMinutes: 30,
		ClockOutGraceAfterMinutes:  60,
	})
	require.NoError(t, err)

	_, err = schedules.Upsert(ctx, schedule.Entry{
		EmployeeID: emp.ID,
		Date:       "2026-03-02",
		ShiftID:    sh.ID,
		StoreID:    st.ID,
	})
	require.NoError(t, err)

	clk := clock.NewFixed(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))

	svc := NewAttendanceService(records, employees, schedules, shifts, stores, hub, clk, time.UTC, 500, 10*time.Second)

	return &engineFixture{
		svc:        svc,
		clk:        clk,
		employees:  employees,
		records:    records,
		schedules:  schedules,
		shifts:     shifts,
		stores:     stores,
		hub:        hub,
		employeeID: emp.ID,
		storeID:    st.ID,
		shiftID:    sh.ID,
	}
}

func (f *engineFixture) at(hour, min, sec int) {
	f.clk.Set(time.Date(2026, 3, 2, hour, min, sec, 0, time.UTC))
}

func (f *engineFixture) action() attendance.ActionRequest {
	return attendance.ActionRequest{
		EmployeeID: f.employeeID,
		PIN:        "1234",
		Position:   geoloc.Static(testStoreLat, testStoreLon),
	}
}

func TestRecordActionClockInWindow(t *testing.T) {
	cases := []struct {
		name    string
		hour    int
		min     int
		sec     int
		allowed bool
	}{
		{"one second before window opens", 7, 29, 59, false},
		{"exactly at window open", 7, 30, 0, true},
		{"at shift start", 8, 0, 0, true},
		{"exactly at window close", 8, 30, 0, true},
		{"one second after window closes", 8, 30, 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newEngineFixture(t)
			f.at(tc.hour, tc.min, tc.sec)

			resp, err := f.svc.RecordAction(context.Background(), f.action())
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, attendance.ActionClockIn, resp.Action)
				return
			}

			var windowErr *attendance.OutsideWindowError
			require.ErrorAs(t, err, &windowErr)
			assert.Equal(t, attendance.ActionClockIn, windowErr.Action)
			assert.Equal(t, "07:30", windowErr.From.Format("15:04"))
			assert.Equal(t, "08:30", windowErr.To.Format("15:04"))
		})
	}
}

func TestRecordActionLateHours(t *testing.T) {
	f := newEngineFixture(t)

	// 15 minutes past shift start, still inside the grace window.
	f.at(8, 15, 0)
	resp, err := f.svc.RecordAction(context.Background(), f.action())
	require.NoError(t, err)

	require.NotNil(t, resp.LateHours)
	assert.InDelta(t, 0.25, *resp.LateHours, 1e-9)
}

func TestRecordActionOnTimeHasNoLateHours(t *testing.T) {
	f := newEngineFixture(t)

	// Early arrival within grace must not produce a negative or zero value.
	f.at(7, 45, 0)
	resp, err := f.svc.RecordAction(context.Background(), f.action())
	require.NoError(t, err)
	assert.Nil(t, resp.LateHours)

	rec, err := f.records.GetByID(context.Background(), resp.RecordID)
	require.NoError(t, err)
	assert.Nil(t, rec.LateHours)
}

func TestRecordActionTogglesToClockOut(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.at(8, 0, 0)
	in, err := f.svc.RecordAction(ctx, f.action())
	require.NoError(t, err)
	assert.Equal(t, attendance.ActionClockIn, in.Action)

	// Same entry point, open record now present, so this is a clock-out.
	f.at(16, 45, 0)
	out, err := f.svc.RecordAction(ctx, f.action())
	require.NoError(t, err)
	assert.Equal(t, attendance.ActionClockOut, out.Action)
	assert.Equal(t, in.RecordID, out.RecordID)
	require.NotNil(t, out.ClockOut)

	// 15 minutes before shift end counts as an early leave.
	require.NotNil(t, out.EarlyHours)
	assert.InDelta(t, 0.25, *out.EarlyHours, 1e-9)

	rec, err := f.records.GetByID(ctx, out.RecordID)
	require.NoError(t, err)
	assert.False(t, rec.Open())
}

func TestRecordActionClockOutAtOrAfterEndHasNoEarlyHours(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.at(8, 0, 0)
	_, err := f.svc.RecordAction(ctx, f.action())
	require.NoError(t, err)

	f.at(17, 30, 0)
	out, err := f.svc.RecordAction(ctx, f.action())
	require.NoError(t, err)
	assert.Nil(t, out.EarlyHours)
}

func TestRecordActionClockOutWindow(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.at(8, 0, 0)
	_, err := f.svc.RecordAction(ctx, f.action())
	require.NoError(t, err)

	// Clock-out window is 16:30 to 18:00.
	f.at(16, 29, 59)
	_, err = f.svc.RecordAction(ctx, f.action())

	var windowErr *attendance.OutsideWindowError
	require.ErrorAs(t, err, &windowErr)
	assert.Equal(t, attendance.ActionClockOut, windowErr.Action)
	assert.Equal(t, "16:30", windowErr.From.Format("15:04"))
	assert.Equal(t, "18:00", windowErr.To.Format("15:04"))

	// The record must still be open after the rejected attempt.
	open, err := f.records.GetOpenRecord(ctx, f.employeeID)
	require.NoError(t, err)
	require.NotNil(t, open)
}

func TestRecordActionNoSchedule(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	require.NoError(t, f.schedules.Delete(ctx, f.employeeID, "2026-03-02"))

	f.at(8, 0, 0)
	_, err := f.svc.RecordAction(ctx, f.action())
	assert.ErrorIs(t, err, attendance.ErrNoScheduleToday)
}

func TestRecordActionClearedScheduleCountsAsNone(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	_, err := f.schedules.Upsert(ctx, schedule.Entry{
		EmployeeID: f.employeeID,
		Date:       "2026-03-02",
		ShiftID:    schedule.NoShift,
	})
	require.NoError(t, err)

	f.at(8, 0, 0)
	_, err = f.svc.RecordAction(ctx, f.action())
	assert.ErrorIs(t, err, attendance.ErrNoScheduleToday)
}

func TestRecordActionStoreWithoutLocation(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	// (0,0) is the unset-location sentinel and must fail closed.
	require.NoError(t, f.stores.Update(ctx, store.StoreLocation{
		ID:   f.storeID,
		Name: "District 1",
	}))

	f.at(8, 0, 0)
	_, err := f.svc.RecordAction(ctx, f.action())
	assert.ErrorIs(t, err, attendance.ErrStoreLocationMissing)
}

func TestRecordActionPositionUnavailable(t *testing.T) {
	f := newEngineFixture(t)

	f.at(8, 0, 0)
	req := f.action()
	req.Position = geoloc.Unavailable()

	_, err := f.svc.RecordAction(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrLocationUnavailable)
}

func TestRecordActionOutsideGeofence(t *testing.T) {
	f := newEngineFixture(t)

	f.at(8, 0, 0)
	req := f.action()
	// Roughly 600m north of the store, past the 500m radius.
	req.Position = geoloc.Static(testStoreLat+600.0/111194.9, testStoreLon)

	_, err := f.svc.RecordAction(context.Background(), req)

	var geofenceErr *attendance.OutsideGeofenceError
	require.ErrorAs(t, err, &geofenceErr)
	assert.InDelta(t, 600, geofenceErr.DistanceMeters, 6)

	// Rejected attempts leave no record behind.
	open, err := f.records.GetOpenRecord(context.Background(), f.employeeID)
	require.NoError(t, err)
	assert.Nil(t, open)
}

func TestRecordActionWrongPIN(t *testing.T) {
	f := newEngineFixture(t)

	f.at(8, 0, 0)
	req := f.action()
	req.PIN = "9999"

	_, err := f.svc.RecordAction(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrPINMismatch)
}

func TestRecordActionUnknownEmployee(t *testing.T) {
	f := newEngineFixture(t)

	f.at(8, 0, 0)
	req := f.action()
	req.EmployeeID = "missing"

	_, err := f.svc.RecordAction(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRecordActionValidation(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.svc.RecordAction(context.Background(), attendance.ActionRequest{
		EmployeeID: "",
		PIN:        "12",
	})
	require.Error(t, err)
}

func TestRecordActionPublishesClockEvent(t *testing.T) {
	f := newEngineFixture(t)

	events, unsubscribe := f.hub.Subscribe()
	defer unsubscribe()

	f.at(8, 0, 0)
	_, err := f.svc.RecordAction(context.Background(), f.action())
	require.NoError(t, err)

	select {
	case event := <-events:
		assert.Equal(t, "clock", event.Event)
		resp, ok := event.Data.(attendance.ActionResponse)
		require.True(t, ok)
		assert.Equal(t, attendance.ActionClockIn, resp.Action)
	default:
		t.Fatal("expected a clock event to be published")
	}
}

func TestUpdateRecordMarksEdits(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.at(8, 0, 0)
	in, err := f.svc.RecordAction(ctx, f.action())
	require.NoError(t, err)

	newIn := "2026-03-02 08:05:00"
	resp, err := f.svc.Update(ctx, attendance.UpdateRecordRequest{
		ID:      in.RecordID,
		ClockIn: &newIn,
	})
	require.NoError(t, err)
	assert.True(t, resp.ClockInEdited)
	assert.False(t, resp.ClockOutEdited)
	assert.Equal(t, newIn, resp.ClockIn)
}

func TestUpdateRecordClearClockOutReopens(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.at(8, 0, 0)
	in, err := f.svc.RecordAction(ctx, f.action())
	require.NoError(t, err)

	f.at(17, 0, 0)
	_, err = f.svc.RecordAction(ctx, f.action())
	require.NoError(t, err)

	empty := ""
	resp, err := f.svc.Update(ctx, attendance.UpdateRecordRequest{
		ID:       in.RecordID,
		ClockOut: &empty,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.ClockOut)
	assert.True(t, resp.ClockOutEdited)

	open, err := f.records.GetOpenRecord(ctx, f.employeeID)
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, in.RecordID, open.ID)
}

func TestListRecordsComputesWorkedHours(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.at(8, 0, 0)
	_, err := f.svc.RecordAction(ctx, f.action())
	require.NoError(t, err)

	f.at(17, 0, 0)
	_, err = f.svc.RecordAction(ctx, f.action())
	require.NoError(t, err)

	results, err := f.svc.List(ctx, attendance.ListRecordsRequest{
		EmployeeID: f.employeeID,
		FromDate:   "2026-03-01",
		ToDate:     "2026-03-31",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].WorkedHours)
	assert.InDelta(t, 9.0, *results[0].WorkedHours, 1e-9)
}

func TestRecentActivityReportsLatestEventKind(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	f.at(8, 0, 0)
	_, err := f.svc.RecordAction(ctx, f.action())
	require.NoError(t, err)

	activities, err := f.svc.RecentActivity(ctx, 10)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, attendance.ActionClockIn, activities[0].Type)
	assert.Equal(t, "An Nguyen", activities[0].EmployeeName)

	f.at(17, 0, 0)
	_, err = f.svc.RecordAction(ctx, f.action())
	require.NoError(t, err)

	activities, err = f.svc.RecentActivity(ctx, 10)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, attendance.ActionClockOut, activities[0].Type)
}

func TestOpenRecordGuardInRepository(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	_, err := f.records.Create(ctx, attendance.Record{
		EmployeeID: f.employeeID,
		ClockIn:    time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = f.records.Create(ctx, attendance.Record{
		EmployeeID: f.employeeID,
		ClockIn:    time.Date(2026, 3, 2, 8, 5, 0, 0, time.UTC),
	})
	assert.True(t, errors.Is(err, attendance.ErrAlreadyClockedIn))
}
