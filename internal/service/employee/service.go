package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/attendance"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/employee"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/schedule"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/store"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/clock"
	"github.com/bookstore-chain/timeclock-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	tx postgresql.Transactor
	employee.EmployeeRepository
	attendance.AttendanceRepository
	schedule.ScheduleRepository
	store.StoreRepository
	clock    clock.Clock
	location *time.Location
}

func NewEmployeeService(
	tx postgresql.Transactor,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	storeRepo store.StoreRepository,
	clk clock.Clock,
	location *time.Location,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:                   tx,
		EmployeeRepository:   employeeRepo,
		AttendanceRepository: attendanceRepo,
		ScheduleRepository:   scheduleRepo,
		StoreRepository:      storeRepo,
		clock:                clk,
		location:             location,
	}
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:        emp.ID,
		Name:      emp.Name,
		PIN:       emp.PIN,
		CreatedAt: emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Name: req.Name,
		PIN:  req.PIN,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}

	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.Name = req.Name
	emp.PIN = req.PIN

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Delete implements employee.EmployeeService. The employee's attendance
// records and schedule entries go with them in the same transaction.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return err
	}

	return s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.AttendanceRepository.DeleteByEmployee(txCtx, id); err != nil {
			return err
		}
		if err := s.ScheduleRepository.DeleteByEmployee(txCtx, id); err != nil {
			return err
		}
		return s.EmployeeRepository.Delete(txCtx, id)
	})
}

// KioskBoard implements employee.EmployeeService.
func (s *EmployeeServiceImpl) KioskBoard(ctx context.Context) ([]employee.KioskEmployee, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	today := s.clock.Now().In(s.location).Format("2006-01-02")

	entries, err := s.ScheduleRepository.ListByDate(ctx, today)
	if err != nil {
		return nil, err
	}

	storeByEmployee := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.ShiftID == schedule.NoShift {
			continue
		}
		st, err := s.StoreRepository.GetByID(ctx, entry.StoreID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve store for schedule entry %s: %w", entry.ID, err)
		}
		storeByEmployee[entry.EmployeeID] = st.Name
	}

	open, err := s.AttendanceRepository.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	clockedIn := make(map[string]bool, len(open))
	for _, rec := range open {
		clockedIn[rec.EmployeeID] = true
	}

	board := make([]employee.KioskEmployee, 0, len(employees))
	for _, emp := range employees {
		tile := employee.KioskEmployee{
			ID:        emp.ID,
			Name:      emp.Name,
			ClockedIn: clockedIn[emp.ID],
		}
		if name, ok := storeByEmployee[emp.ID]; ok {
			tile.StoreName = &name
		}
		board = append(board, tile)
	}

	return board, nil
}

// VerifyPIN implements employee.EmployeeService.
func (s *EmployeeServiceImpl) VerifyPIN(ctx context.Context, req employee.VerifyPINRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return err
	}

	if emp.PIN != req.PIN {
		return employee.ErrPINMismatch
	}

	return nil
}
