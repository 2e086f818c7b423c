package report

import (
	"context"
	"testing"
	"time"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/attendance"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/employee"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/report"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/schedule"
	"github.com/bookstore-chain/timeclock-backend-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	service    report.ReportService
	employees  *fixtures.EmployeeRepository
	attendance *fixtures.AttendanceRepository
	schedules  *fixtures.ScheduleRepository
	shifts     *fixtures.ShiftRepository
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()

	f := &reportFixture{
		employees:  fixtures.NewEmployeeRepository(),
		attendance: fixtures.NewAttendanceRepository(),
		schedules:  fixtures.NewScheduleRepository(),
		shifts:     fixtures.NewShiftRepository(),
	}
	f.service = NewReportService(f.attendance, f.employees, f.schedules, f.shifts, time.UTC)

	ctx := context.Background()

	_, err := f.shifts.Create(ctx, morningShift)
	require.NoError(t, err)

	_, err = f.employees.Create(ctx, employee.Employee{ID: "emp-1", Name: "An Nguyen", PIN: "1234"})
	require.NoError(t, err)
	_, err = f.employees.Create(ctx, employee.Employee{ID: "emp-2", Name: "Binh Tran", PIN: "5678"})
	require.NoError(t, err)

	return f
}

func (f *reportFixture) seed(t *testing.T, rec attendance.Record, entry schedule.Entry) {
	t.Helper()
	ctx := context.Background()

	_, err := f.attendance.Create(ctx, rec)
	require.NoError(t, err)
	_, err = f.schedules.Upsert(ctx, entry)
	require.NoError(t, err)
}

func TestMonthlySummariesCoversEveryEmployee(t *testing.T) {
	f := newReportFixture(t)

	f.seed(t, attendance.Record{
		EmployeeID: "emp-1",
		ClockIn:    utc(2, 8, 30),
		ClockOut:   ptr(utc(2, 17, 0)),
		LateHours:  ptr(0.5),
	}, scheduledDay("2026-03-02"))

	out, err := f.service.MonthlySummaries(context.Background(), report.MonthRequest{Year: 2026, Month: 3})
	require.NoError(t, err)

	assert.Equal(t, 2026, out.Year)
	assert.Equal(t, 3, out.Month)
	require.Len(t, out.Employees, 2)

	assert.Equal(t, "emp-1", out.Employees[0].EmployeeID)
	assert.InDelta(t, 8.5, out.Employees[0].TotalHours, 1e-9)
	assert.Equal(t, 1, out.Employees[0].LateCount)

	// Employees with no activity still get a row of zeros.
	assert.Equal(t, "emp-2", out.Employees[1].EmployeeID)
	assert.Zero(t, out.Employees[1].TotalHours)
	assert.Zero(t, out.Employees[1].LateCount)
}

func TestEmployeeSummaryIgnoresNeighboringMonths(t *testing.T) {
	f := newReportFixture(t)

	f.seed(t, attendance.Record{
		EmployeeID: "emp-1",
		ClockIn:    utc(10, 8, 0),
		ClockOut:   ptr(utc(10, 17, 0)),
	}, scheduledDay("2026-03-10"))

	// February and April records must not leak into March.
	_, err := f.attendance.Create(context.Background(), attendance.Record{
		EmployeeID: "emp-1",
		ClockIn:    time.Date(2026, 2, 27, 8, 0, 0, 0, time.UTC),
		ClockOut:   ptr(time.Date(2026, 2, 27, 17, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	_, err = f.attendance.Create(context.Background(), attendance.Record{
		EmployeeID: "emp-1",
		ClockIn:    time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
		ClockOut:   ptr(time.Date(2026, 4, 1, 17, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	sum, err := f.service.EmployeeSummary(context.Background(), report.EmployeeMonthRequest{
		EmployeeID: "emp-1", Year: 2026, Month: 3,
	})
	require.NoError(t, err)

	assert.InDelta(t, 9.0, sum.TotalHours, 1e-9)
}

func TestEmployeeDetailResolvesScheduleThroughRepositories(t *testing.T) {
	f := newReportFixture(t)

	f.seed(t, attendance.Record{
		EmployeeID: "emp-1",
		ClockIn:    utc(2, 8, 0),
		ClockOut:   ptr(utc(2, 17, 0)),
	}, scheduledDay("2026-03-02"))

	detail, err := f.service.EmployeeDetail(context.Background(), report.EmployeeMonthRequest{
		EmployeeID: "emp-1", Year: 2026, Month: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "An Nguyen", detail.EmployeeName)
	require.Len(t, detail.Days, 31)

	monday := detail.Days[1]
	assert.Equal(t, "2026-03-02", monday.Date)
	assert.Equal(t, report.StatusHasAttendance, monday.Status)
	assert.Equal(t, "M", monday.ShiftShortName)
}

func TestEmployeeSummaryUnknownEmployee(t *testing.T) {
	f := newReportFixture(t)

	_, err := f.service.EmployeeSummary(context.Background(), report.EmployeeMonthRequest{
		EmployeeID: "emp-missing", Year: 2026, Month: 3,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMonthRequestValidation(t *testing.T) {
	f := newReportFixture(t)

	_, err := f.service.MonthlySummaries(context.Background(), report.MonthRequest{Year: 2026, Month: 13})
	assert.Error(t, err)

	_, err = f.service.EmployeeDetail(context.Background(), report.EmployeeMonthRequest{
		EmployeeID: "", Year: 2026, Month: 3,
	})
	assert.Error(t, err)
}
