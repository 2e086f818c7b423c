package master

import (
	"context"
	"testing"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/master"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/schedule"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/shift"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/store"
	"github.com/bookstore-chain/timeclock-backend-go/internal/fixtures"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type masterFixture struct {
	svc       master.MasterService
	stores    *fixtures.StoreRepository
	shifts    *fixtures.ShiftRepository
	schedules *fixtures.ScheduleRepository
}

func newMasterFixture(t *testing.T) *masterFixture {
	t.Helper()

	stores := fixtures.NewStoreRepository()
	shifts := fixtures.NewShiftRepository()
	schedules := fixtures.NewScheduleRepository()

	return &masterFixture{
		svc:       NewMasterService(fixtures.NewTransactor(), stores, shifts, schedules),
		stores:    stores,
		shifts:    shifts,
		schedules: schedules,
	}
}

func morningShiftRequest() shift.CreateShiftRequest {
	return shift.CreateShiftRequest{
		Name:      "Morning",
		ShortName: "M",
		StartTime: "08:00",
		EndTime:   "17:00",
		Color:     "#4f46e5",
	}
}

func TestCreateShiftRejectsNegativeGrace(t *testing.T) {
	f := newMasterFixture(t)

	req := morningShiftRequest()
	req.ClockInGraceBeforeMinutes = -5

	_, err := f.svc.CreateShift(context.Background(), req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "clock_in_grace_before_minutes")
}

func TestDeleteShiftCascadesScheduleEntries(t *testing.T) {
	f := newMasterFixture(t)
	ctx := context.Background()

	doomed, err := f.svc.CreateShift(ctx, morningShiftRequest())
	require.NoError(t, err)

	keptReq := morningShiftRequest()
	keptReq.Name = "Evening"
	keptReq.ShortName = "E"
	kept, err := f.svc.CreateShift(ctx, keptReq)
	require.NoError(t, err)

	_, err = f.schedules.Upsert(ctx, schedule.Entry{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		ShiftID:    doomed.ID,
		StoreID:    "store-1",
	})
	require.NoError(t, err)
	_, err = f.schedules.Upsert(ctx, schedule.Entry{
		EmployeeID: "emp-1",
		Date:       "2026-03-03",
		ShiftID:    kept.ID,
		StoreID:    "store-1",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteShift(ctx, doomed.ID))

	_, err = f.svc.GetShift(ctx, doomed.ID)
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)

	gone, err := f.schedules.GetByEmployeeAndDate(ctx, "emp-1", "2026-03-02")
	require.NoError(t, err)
	assert.Nil(t, gone)

	stays, err := f.schedules.GetByEmployeeAndDate(ctx, "emp-1", "2026-03-03")
	require.NoError(t, err)
	require.NotNil(t, stays)
	assert.Equal(t, kept.ID, stays.ShiftID)
}

func TestDeleteShiftUnknown(t *testing.T) {
	f := newMasterFixture(t)

	err := f.svc.DeleteShift(context.Background(), "missing")
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestStoreRoundTripKeepsLocation(t *testing.T) {
	f := newMasterFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateStore(ctx, store.CreateStoreRequest{
		Name:      "District 1",
		Latitude:  10.776,
		Longitude: 106.700,
	})
	require.NoError(t, err)

	got, err := f.svc.GetStore(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "District 1", got.Name)
	assert.InDelta(t, 10.776, got.Latitude, 1e-9)
	assert.InDelta(t, 106.700, got.Longitude, 1e-9)
}
