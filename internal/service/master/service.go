package master

import (
	"context"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/master"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/schedule"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/shift"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/store"
	"github.com/bookstore-chain/timeclock-backend-go/internal/repository/postgresql"
)

type MasterServiceImpl struct {
	tx postgresql.Transactor
	store.StoreRepository
	shift.ShiftRepository
	schedule.ScheduleRepository
}

func NewMasterService(
	tx postgresql.Transactor,
	storeRepo store.StoreRepository,
	shiftRepo shift.ShiftRepository,
	scheduleRepo schedule.ScheduleRepository,
) master.MasterService {
	return &MasterServiceImpl{
		tx:                 tx,
		StoreRepository:    storeRepo,
		ShiftRepository:    shiftRepo,
		ScheduleRepository: scheduleRepo,
	}
}

func toStoreResponse(st store.StoreLocation) store.StoreResponse {
	return store.StoreResponse{
		ID:          st.ID,
		Name:        st.Name,
		Latitude:    st.Latitude,
		Longitude:   st.Longitude,
		HasLocation: st.HasLocation(),
	}
}

func toShiftResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:        sh.ID,
		Name:      sh.Name,
		ShortName: sh.ShortName,
		StartTime: sh.StartTime,
		EndTime:   sh.EndTime,
		Color:     sh.Color,

		ClockInGraceBeforeMinutes:  sh.ClockInGraceBeforeMinutes,
		ClockInGraceAfterMinutes:   sh.ClockInGraceAfterMinutes,
		ClockOutGraceBeforeMinutes: sh.ClockOutGraceBeforeMinutes,
		ClockOutGraceAfterMinutes:  sh.ClockOutGraceAfterMinutes,
	}
}

// CreateStore implements master.MasterService.
func (s *MasterServiceImpl) CreateStore(ctx context.Context, req store.CreateStoreRequest) (store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}

	st, err := s.StoreRepository.Create(ctx, store.StoreLocation{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return store.StoreResponse{}, err
	}

	return toStoreResponse(st), nil
}

// GetStore implements master.MasterService.
func (s *MasterServiceImpl) GetStore(ctx context.Context, id string) (store.StoreResponse, error) {
	st, err := s.StoreRepository.GetByID(ctx, id)
	if err != nil {
		return store.StoreResponse{}, err
	}

	return toStoreResponse(st), nil
}

// ListStores implements master.MasterService.
func (s *MasterServiceImpl) ListStores(ctx context.Context) ([]store.StoreResponse, error) {
	stores, err := s.StoreRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]store.StoreResponse, 0, len(stores))
	for _, st := range stores {
		responses = append(responses, toStoreResponse(st))
	}

	return responses, nil
}

// UpdateStore implements master.MasterService.
func (s *MasterServiceImpl) UpdateStore(ctx context.Context, req store.UpdateStoreRequest) (store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}

	st, err := s.StoreRepository.GetByID(ctx, req.ID)
	if err != nil {
		return store.StoreResponse{}, err
	}

	st.Name = req.Name
	st.Latitude = req.Latitude
	st.Longitude = req.Longitude

	if err := s.StoreRepository.Update(ctx, st); err != nil {
		return store.StoreResponse{}, err
	}

	return toStoreResponse(st), nil
}

// DeleteStore implements master.MasterService.
func (s *MasterServiceImpl) DeleteStore(ctx context.Context, id string) error {
	return s.StoreRepository.Delete(ctx, id)
}

// CreateShift implements master.MasterService.
func (s *MasterServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.ShiftRepository.Create(ctx, shift.Shift{
		Name:      req.Name,
		ShortName: req.ShortName,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Color:     req.Color,

		ClockInGraceBeforeMinutes:  req.ClockInGraceBeforeMinutes,
		ClockInGraceAfterMinutes:   req.ClockInGraceAfterMinutes,
		ClockOutGraceBeforeMinutes: req.ClockOutGraceBeforeMinutes,
		ClockOutGraceAfterMinutes:  req.ClockOutGraceAfterMinutes,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(sh), nil
}

// GetShift implements master.MasterService.
func (s *MasterServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(sh), nil
}

// ListShifts implements master.MasterService.
func (s *MasterServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}

	return responses, nil
}

// UpdateShift implements master.MasterService.
func (s *MasterServiceImpl) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.ShiftRepository.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	sh.Name = req.Name
	sh.ShortName = req.ShortName
	sh.StartTime = req.StartTime
	sh.EndTime = req.EndTime
	sh.Color = req.Color
	sh.ClockInGraceBeforeMinutes = req.ClockInGraceBeforeMinutes
	sh.ClockInGraceAfterMinutes = req.ClockInGraceAfterMinutes
	sh.ClockOutGraceBeforeMinutes = req.ClockOutGraceBeforeMinutes
	sh.ClockOutGraceAfterMinutes = req.ClockOutGraceAfterMinutes

	if err := s.ShiftRepository.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(sh), nil
}

// DeleteShift implements master.MasterService.
func (s *MasterServiceImpl) DeleteShift(ctx context.Context, id string) error {
	if _, err := s.ShiftRepository.GetByID(ctx, id); err != nil {
		return err
	}

	return s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.ScheduleRepository.DeleteByShift(txCtx, id); err != nil {
			return err
		}
		return s.ShiftRepository.Delete(txCtx, id)
	})
}
