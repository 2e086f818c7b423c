package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/attendance"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/schedule"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/shift"
	"github.com/bookstore-chain/timeclock-backend-go/internal/fixtures"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/require"
)

func TestWatchdogRunHandlesStaleAndHealthyRecords(t *testing.T) {
	ctx := context.Background()

	records := fixtures.NewAttendanceRepository()
	schedules := fixtures.NewScheduleRepository()
	shifts := fixtures.NewShiftRepository()

	sh, err := shifts.Create(ctx, shift.Shift{
		Name:                     "Morning",
		ShortName:                "M",
		StartTime:                "08:00",
		EndTime:                  "17:00",
		ClockOutGraceAfterMinutes: 60,
	})
	require.NoError(t, err)

	// Stale: clocked in yesterday and never out.
	_, err = records.Create(ctx, attendance.Record{
		EmployeeID: "emp-stale",
		ClockIn:    time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = schedules.Upsert(ctx, schedule.Entry{
		EmployeeID: "emp-stale",
		Date:       "2026-03-01",
		ShiftID:    sh.ID,
		StoreID:    "store-1",
	})
	require.NoError(t, err)

	// Healthy: mid-shift right now.
	_, err = records.Create(ctx, attendance.Record{
		EmployeeID: "emp-working",
		ClockIn:    time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = schedules.Upsert(ctx, schedule.Entry{
		EmployeeID: "emp-working",
		Date:       "2026-03-02",
		ShiftID:    sh.ID,
		StoreID:    "store-1",
	})
	require.NoError(t, err)

	// Orphaned: open record whose schedule entry was cleared afterwards.
	_, err = records.Create(ctx, attendance.Record{
		EmployeeID: "emp-orphan",
		ClockIn:    time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	clk := clock.NewFixed(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))
	w := NewWatchdog(records, schedules, shifts, clk, time.UTC)

	// The watchdog observes and logs; it must not close or delete anything.
	require.NoError(t, w.Run(ctx))

	open, err := records.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, open, 3)
}
