package report

import "context"

type ReportService interface {
	// MonthlySummaries computes payroll-facing totals for every employee over
	// one month. Pure over a snapshot read; running it twice on unchanged
	// data yields identical results.
	MonthlySummaries(ctx context.Context, req MonthRequest) (MonthlyReport, error)

	// EmployeeSummary computes one employee's totals for a month.
	EmployeeSummary(ctx context.Context, req EmployeeMonthRequest) (Summary, error)

	// EmployeeDetail emits exactly one row per calendar day of the month, in
	// ascending date order, regardless of data availability.
	EmployeeDetail(ctx context.Context, req EmployeeMonthRequest) (EmployeeDetailReport, error)
}
