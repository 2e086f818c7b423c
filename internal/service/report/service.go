package report

import (
	"context"
	"time"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/attendance"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/employee"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/report"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/schedule"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/shift"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	schedule.ScheduleRepository
	shift.ShiftRepository

	location *time.Location
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.ScheduleRepository,
	shiftRepo shift.ShiftRepository,
	location *time.Location,
) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		ScheduleRepository:   scheduleRepo,
		ShiftRepository:      shiftRepo,
		location:             location,
	}
}

// snapshot reads everything one employee's monthly report needs in one pass.
func (s *ReportServiceImpl) snapshot(ctx context.Context, emp employee.Employee, year, month int) (monthSnapshot, error) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.location)
	next := first.AddDate(0, 1, 0)

	records, err := s.AttendanceRepository.ListByEmployeeBetween(ctx, emp.ID, first.UTC(), next.UTC())
	if err != nil {
		return monthSnapshot{}, err
	}

	entries, err := s.ScheduleRepository.ListByEmployeeBetween(ctx, emp.ID,
		first.Format("2006-01-02"), next.AddDate(0, 0, -1).Format("2006-01-02"))
	if err != nil {
		return monthSnapshot{}, err
	}

	entriesByDate := make(map[string]schedule.Entry, len(entries))
	for _, entry := range entries {
		entriesByDate[entry.Date] = entry
	}

	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return monthSnapshot{}, err
	}

	shiftsByID := make(map[string]shift.Shift, len(shifts))
	for _, sh := range shifts {
		shiftsByID[sh.ID] = sh
	}

	return monthSnapshot{
		employeeID:    emp.ID,
		employeeName:  emp.Name,
		year:          year,
		month:         time.Month(month),
		location:      s.location,
		records:       records,
		entriesByDate: entriesByDate,
		shiftsByID:    shiftsByID,
	}, nil
}

// MonthlySummaries implements report.ReportService.
func (s *ReportServiceImpl) MonthlySummaries(ctx context.Context, req report.MonthRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	out := report.MonthlyReport{
		Year:      req.Year,
		Month:     req.Month,
		Employees: make([]report.Summary, 0, len(employees)),
	}

	for _, emp := range employees {
		snap, err := s.snapshot(ctx, emp, req.Year, req.Month)
		if err != nil {
			return report.MonthlyReport{}, err
		}
		out.Employees = append(out.Employees, buildSummary(snap))
	}

	return out, nil
}

// EmployeeSummary implements report.ReportService.
func (s *ReportServiceImpl) EmployeeSummary(ctx context.Context, req report.EmployeeMonthRequest) (report.Summary, error) {
	if err := req.Validate(); err != nil {
		return report.Summary{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.Summary{}, err
	}

	snap, err := s.snapshot(ctx, emp, req.Year, req.Month)
	if err != nil {
		return report.Summary{}, err
	}

	return buildSummary(snap), nil
}

// EmployeeDetail implements report.ReportService.
func (s *ReportServiceImpl) EmployeeDetail(ctx context.Context, req report.EmployeeMonthRequest) (report.EmployeeDetailReport, error) {
	if err := req.Validate(); err != nil {
		return report.EmployeeDetailReport{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.EmployeeDetailReport{}, err
	}

	snap, err := s.snapshot(ctx, emp, req.Year, req.Month)
	if err != nil {
		return report.EmployeeDetailReport{}, err
	}

	return report.EmployeeDetailReport{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Year:         req.Year,
		Month:        req.Month,
		Days:         buildDetail(snap),
	}, nil
}
