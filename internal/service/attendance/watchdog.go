package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/attendance"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/schedule"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/shift"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/clock"
)

// Watchdog scans for attendance records that are still open after the
// scheduled shift end plus its clock-out grace has passed. It only reports;
// closing a forgotten session stays a deliberate admin correction.
type Watchdog struct {
	attendance.AttendanceRepository
	schedule.ScheduleRepository
	shift.ShiftRepository

	clock    clock.Clock
	location *time.Location
}

func NewWatchdog(
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	shiftRepo shift.ShiftRepository,
	clk clock.Clock,
	location *time.Location,
) *Watchdog {
	return &Watchdog{
		AttendanceRepository: attendanceRepo,
		ScheduleRepository:   scheduleRepo,
		ShiftRepository:      shiftRepo,
		clock:                clk,
		location:             location,
	}
}

// Run logs every stale open record. Wired as a cron job.
func (w *Watchdog) Run(ctx context.Context) error {
	now := w.clock.Now().In(w.location)

	open, err := w.AttendanceRepository.ListOpen(ctx)
	if err != nil {
		return err
	}

	for _, rec := range open {
		in := rec.ClockIn.In(w.location)
		date := in.Format("2006-01-02")

		entry, err := w.ScheduleRepository.GetByEmployeeAndDate(ctx, rec.EmployeeID, date)
		if err != nil {
			return err
		}
		if entry == nil || entry.ShiftID == schedule.NoShift {
			// Orphaned by a schedule edit after the clock-in. Still worth a
			// line once the day is over.
			if now.Format("2006-01-02") != date {
				slog.Warn("open attendance record with no schedule",
					"record_id", rec.ID,
					"employee_id", rec.EmployeeID,
					"clock_in", in.Format("2006-01-02 15:04:05"))
			}
			continue
		}

		sh, err := w.ShiftRepository.GetByID(ctx, entry.ShiftID)
		if err != nil {
			return err
		}

		end, err := sh.EndOn(in)
		if err != nil {
			return err
		}
		deadline := end.Add(time.Duration(sh.ClockOutGraceAfterMinutes) * time.Minute)

		if now.After(deadline) {
			slog.Warn("attendance record left open past shift end",
				"record_id", rec.ID,
				"employee_id", rec.EmployeeID,
				"clock_in", in.Format("2006-01-02 15:04:05"),
				"shift_end", end.Format("2006-01-02 15:04:05"),
				"overdue", now.Sub(deadline).Round(time.Minute).String())
		}
	}

	return nil
}
