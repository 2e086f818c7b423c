package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/schedule"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/shift"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/store"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/clock"
)

type ScheduleServiceImpl struct {
	schedule.ScheduleRepository
	shift.ShiftRepository
	store.StoreRepository
	clock    clock.Clock
	location *time.Location
}

func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	shiftRepo shift.ShiftRepository,
	storeRepo store.StoreRepository,
	clk clock.Clock,
	location *time.Location,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		ScheduleRepository: scheduleRepo,
		ShiftRepository:    shiftRepo,
		StoreRepository:    storeRepo,
		clock:              clk,
		location:           location,
	}
}

func toEntryResponse(entry schedule.Entry) schedule.EntryResponse {
	return schedule.EntryResponse{
		ID:         entry.ID,
		EmployeeID: entry.EmployeeID,
		Date:       entry.Date,
		ShiftID:    entry.ShiftID,
		StoreID:    entry.StoreID,
	}
}

// Upsert implements schedule.ScheduleService. Assigning shift_id "none"
// removes the day's entry and returns a nil response.
func (s *ScheduleServiceImpl) Upsert(ctx context.Context, req schedule.UpsertEntryRequest) (*schedule.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.ShiftID == schedule.NoShift {
		err := s.ScheduleRepository.Delete(ctx, req.EmployeeID, req.Date)
		if err != nil && !errors.Is(err, schedule.ErrEntryNotFound) {
			return nil, err
		}
		return nil, nil
	}

	if _, err := s.ShiftRepository.GetByID(ctx, req.ShiftID); err != nil {
		return nil, err
	}
	if _, err := s.StoreRepository.GetByID(ctx, req.StoreID); err != nil {
		return nil, err
	}

	entry, err := s.ScheduleRepository.Upsert(ctx, schedule.Entry{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		ShiftID:    req.ShiftID,
		StoreID:    req.StoreID,
	})
	if err != nil {
		return nil, err
	}

	resp := toEntryResponse(entry)
	return &resp, nil
}

// ListForEmployee implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListForEmployee(ctx context.Context, req schedule.ListEntriesRequest) ([]schedule.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.ScheduleRepository.ListByEmployeeBetween(ctx, req.EmployeeID, req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toEntryResponse(entry))
	}

	return responses, nil
}

// ListForDate implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListForDate(ctx context.Context, date string) ([]schedule.EntryResponse, error) {
	entries, err := s.ScheduleRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toEntryResponse(entry))
	}

	return responses, nil
}

// WeekPreview implements schedule.ScheduleService. The week always starts on
// Monday in the business timezone.
func (s *ScheduleServiceImpl) WeekPreview(ctx context.Context, employeeID string) ([]schedule.WeekDay, error) {
	now := s.clock.Now().In(s.location)
	today := now.Format("2006-01-02")

	offset := (int(now.Weekday()) + 6) % 7 // Monday = 0
	monday := now.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)

	entries, err := s.ScheduleRepository.ListByEmployeeBetween(ctx, employeeID,
		monday.Format("2006-01-02"), sunday.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]schedule.Entry, len(entries))
	for _, entry := range entries {
		byDate[entry.Date] = entry
	}

	week := make([]schedule.WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		date := day.Format("2006-01-02")

		wd := schedule.WeekDay{
			Date:    date,
			Weekday: day.Weekday().String(),
			IsToday: date == today,
		}

		if entry, ok := byDate[date]; ok && entry.ShiftID != schedule.NoShift {
			sh, err := s.ShiftRepository.GetByID(ctx, entry.ShiftID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve shift for %s: %w", date, err)
			}
			st, err := s.StoreRepository.GetByID(ctx, entry.StoreID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve store for %s: %w", date, err)
			}
			wd.ShiftShortName = &sh.ShortName
			wd.StoreName = &st.Name
		}

		week = append(week, wd)
	}

	return week, nil
}
