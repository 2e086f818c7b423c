package report

import (
	"fmt"
	"time"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/attendance"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/report"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/schedule"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/shift"
)

// monthSnapshot is one employee's data for one month, read once up front so
// the builders below are pure and the whole report is computed from a single
// consistent view.
type monthSnapshot struct {
	employeeID   string
	employeeName string
	year         int
	month        time.Month
	location     *time.Location

	records       []attendance.Record
	entriesByDate map[string]schedule.Entry
	shiftsByID    map[string]shift.Shift
}

func (m monthSnapshot) daysInMonth() int {
	return time.Date(m.year, m.month+1, 0, 0, 0, 0, 0, m.location).Day()
}

// scheduledShift resolves the shift assigned on a local date, or nil when the
// day has no real assignment.
func (m monthSnapshot) scheduledShift(date string) *shift.Shift {
	entry, ok := m.entriesByDate[date]
	if !ok || entry.ShiftID == schedule.NoShift {
		return nil
	}
	sh, ok := m.shiftsByID[entry.ShiftID]
	if !ok {
		return nil
	}
	return &sh
}

// overtimeHours measures how far past the scheduled shift end a completed
// record ran, or nil when the record is open, unscheduled, or ended on time.
func (m monthSnapshot) overtimeHours(rec attendance.Record) *float64 {
	if rec.ClockOut == nil {
		return nil
	}

	date := rec.ClockIn.In(m.location).Format("2006-01-02")
	sh := m.scheduledShift(date)
	if sh == nil {
		return nil
	}

	day := rec.ClockIn.In(m.location)
	end, err := sh.EndOn(day)
	if err != nil {
		return nil
	}

	over := rec.ClockOut.In(m.location).Sub(end)
	if over <= 0 {
		return nil
	}
	h := over.Hours()
	return &h
}

// buildSummary folds one month of records into payroll totals. Absent
// deviations stay absent: a record without a late value contributes to
// neither the total nor the count.
func buildSummary(m monthSnapshot) report.Summary {
	sum := report.Summary{
		EmployeeID:   m.employeeID,
		EmployeeName: m.employeeName,
		Year:         m.year,
		Month:        int(m.month),
	}

	for _, rec := range m.records {
		if rec.ClockOut != nil {
			sum.TotalHours += rec.ClockOut.Sub(rec.ClockIn).Hours()
		}

		if rec.LateHours != nil {
			sum.TotalLateHours += *rec.LateHours
			sum.LateCount++
		}

		if rec.EarlyLeaveHours != nil {
			sum.EarlyLeaveCount++
		}

		if over := m.overtimeHours(rec); over != nil {
			sum.TotalOvertimeHours += *over
			sum.OvertimeCount++
		}
	}

	return sum
}

const (
	noValue  = "-"
	offValue = "off"
)

func fmtHours(h *float64) string {
	if h == nil {
		return noValue
	}
	return fmt.Sprintf("%.2f", *h)
}

// buildDetail emits exactly one row per calendar day of the month, oldest
// first. Classification order: a day with attendance always reports it; any
// Saturday or Sunday without attendance is a weekend; an assigned weekday
// without attendance is an absence; anything else simply had no schedule.
func buildDetail(m monthSnapshot) []report.DayDetail {
	recordsByDate := make(map[string][]attendance.Record, len(m.records))
	for _, rec := range m.records {
		date := rec.ClockIn.In(m.location).Format("2006-01-02")
		recordsByDate[date] = append(recordsByDate[date], rec)
	}

	days := make([]report.DayDetail, 0, m.daysInMonth())
	for dayNum := 1; dayNum <= m.daysInMonth(); dayNum++ {
		day := time.Date(m.year, m.month, dayNum, 0, 0, 0, 0, m.location)
		date := day.Format("2006-01-02")
		weekend := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday

		row := report.DayDetail{
			Date:            date,
			Weekday:         day.Weekday().String(),
			ShiftShortName:  noValue,
			ClockIn:         noValue,
			ClockOut:        noValue,
			LateHours:       noValue,
			EarlyLeaveHours: noValue,
			WorkedHours:     noValue,
		}

		// The shift cell shows the short name when assigned, a dash on
		// weekends, and an off marker on unassigned weekdays.
		sh := m.scheduledShift(date)
		switch {
		case sh != nil:
			row.ShiftShortName = sh.ShortName
		case !weekend:
			row.ShiftShortName = offValue
		}

		switch {
		case len(recordsByDate[date]) > 0:
			rec := recordsByDate[date][0]
			row.Status = report.StatusHasAttendance
			row.ClockIn = rec.ClockIn.In(m.location).Format("15:04")
			row.LateHours = fmtHours(rec.LateHours)
			row.EarlyLeaveHours = fmtHours(rec.EarlyLeaveHours)
			if rec.ClockOut != nil {
				row.ClockOut = rec.ClockOut.In(m.location).Format("15:04")
				worked := rec.ClockOut.Sub(rec.ClockIn).Hours()
				row.WorkedHours = fmtHours(&worked)
			}
		case weekend:
			row.Status = report.StatusWeekendNoShift
		case sh != nil:
			row.Status = report.StatusAbsentWithShift
		default:
			row.Status = report.StatusNoScheduleAssigned
		}

		days = append(days, row)
	}

	return days
}
