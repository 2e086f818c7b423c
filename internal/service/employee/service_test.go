package employee

import (
	"context"
	"testing"
	"time"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/attendance"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/employee"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/schedule"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/store"
	"github.com/bookstore-chain/timeclock-backend-go/internal/fixtures"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/clock"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type employeeFixture struct {
	svc       employee.EmployeeService
	clk       *clock.Fixed
	employees *fixtures.EmployeeRepository
	records   *fixtures.AttendanceRepository
	schedules *fixtures.ScheduleRepository
	stores    *fixtures.StoreRepository
}

func newEmployeeFixture(t *testing.T) *employeeFixture {
	t.Helper()

	employees := fixtures.NewEmployeeRepository()
	records := fixtures.NewAttendanceRepository()
	schedules := fixtures.NewScheduleRepository()
	stores := fixtures.NewStoreRepository()

	clk := clock.NewFixed(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	svc := NewEmployeeService(fixtures.NewTransactor(), employees, records, schedules, stores, clk, time.UTC)

	return &employeeFixture{
		svc:       svc,
		clk:       clk,
		employees: employees,
		records:   records,
		schedules: schedules,
		stores:    stores,
	}
}

func TestCreateEmployeeValidatesPIN(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		pin  string
		ok   bool
	}{
		{"four digits", "0042", true},
		{"too short", "123", false},
		{"too long", "12345", false},
		{"non numeric", "12ab", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, employee.CreateEmployeeRequest{Name: "An", PIN: tc.pin})
			if tc.ok {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), "pin")
		})
	}
}

func TestVerifyPIN(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	emp, err := f.svc.Create(ctx, employee.CreateEmployeeRequest{Name: "An", PIN: "1234"})
	require.NoError(t, err)

	assert.NoError(t, f.svc.VerifyPIN(ctx, employee.VerifyPINRequest{EmployeeID: emp.ID, PIN: "1234"}))

	err = f.svc.VerifyPIN(ctx, employee.VerifyPINRequest{EmployeeID: emp.ID, PIN: "4321"})
	assert.ErrorIs(t, err, employee.ErrPINMismatch)

	err = f.svc.VerifyPIN(ctx, employee.VerifyPINRequest{EmployeeID: "missing", PIN: "1234"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestKioskBoard(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	working, err := f.svc.Create(ctx, employee.CreateEmployeeRequest{Name: "An", PIN: "1111"})
	require.NoError(t, err)
	idle, err := f.svc.Create(ctx, employee.CreateEmployeeRequest{Name: "Binh", PIN: "2222"})
	require.NoError(t, err)

	st, err := f.stores.Create(ctx, store.StoreLocation{Name: "District 1", Latitude: 10.7, Longitude: 106.7})
	require.NoError(t, err)

	_, err = f.schedules.Upsert(ctx, schedule.Entry{
		EmployeeID: working.ID,
		Date:       "2026-03-02",
		ShiftID:    "shift-m",
		StoreID:    st.ID,
	})
	require.NoError(t, err)

	_, err = f.records.Create(ctx, attendance.Record{
		EmployeeID: working.ID,
		ClockIn:    time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	board, err := f.svc.KioskBoard(ctx)
	require.NoError(t, err)
	require.Len(t, board, 2)

	byID := make(map[string]employee.KioskEmployee, len(board))
	for _, tile := range board {
		byID[tile.ID] = tile
	}

	tile := byID[working.ID]
	assert.True(t, tile.ClockedIn)
	require.NotNil(t, tile.StoreName)
	assert.Equal(t, "District 1", *tile.StoreName)

	tile = byID[idle.ID]
	assert.False(t, tile.ClockedIn)
	assert.Nil(t, tile.StoreName)
}

func TestKioskBoardIgnoresClearedAssignments(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	emp, err := f.svc.Create(ctx, employee.CreateEmployeeRequest{Name: "An", PIN: "1111"})
	require.NoError(t, err)

	_, err = f.schedules.Upsert(ctx, schedule.Entry{
		EmployeeID: emp.ID,
		Date:       "2026-03-02",
		ShiftID:    schedule.NoShift,
	})
	require.NoError(t, err)

	board, err := f.svc.KioskBoard(ctx)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Nil(t, board[0].StoreName)
}

func TestDeleteEmployeeCascades(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	doomed, err := f.svc.Create(ctx, employee.CreateEmployeeRequest{Name: "An", PIN: "1111"})
	require.NoError(t, err)
	kept, err := f.svc.Create(ctx, employee.CreateEmployeeRequest{Name: "Binh", PIN: "2222"})
	require.NoError(t, err)

	for _, id := range []string{doomed.ID, kept.ID} {
		_, err = f.records.Create(ctx, attendance.Record{
			EmployeeID: id,
			ClockIn:    time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		_, err = f.schedules.Upsert(ctx, schedule.Entry{
			EmployeeID: id,
			Date:       "2026-03-02",
			ShiftID:    "shift-m",
			StoreID:    "store-1",
		})
		require.NoError(t, err)
	}

	require.NoError(t, f.svc.Delete(ctx, doomed.ID))

	_, err = f.employees.GetByID(ctx, doomed.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	remaining, err := f.records.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].EmployeeID)

	gone, err := f.schedules.GetByEmployeeAndDate(ctx, doomed.ID, "2026-03-02")
	require.NoError(t, err)
	assert.Nil(t, gone)

	stays, err := f.schedules.GetByEmployeeAndDate(ctx, kept.ID, "2026-03-02")
	require.NoError(t, err)
	require.NotNil(t, stays)
}

func TestDeleteEmployeeUnknown(t *testing.T) {
	f := newEmployeeFixture(t)

	err := f.svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateEmployee(t *testing.T) {
	f := newEmployeeFixture(t)
	ctx := context.Background()

	emp, err := f.svc.Create(ctx, employee.CreateEmployeeRequest{Name: "An", PIN: "1111"})
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:   emp.ID,
		Name: "An Tran",
		PIN:  "9876",
	})
	require.NoError(t, err)
	assert.Equal(t, "An Tran", updated.Name)
	assert.Equal(t, "9876", updated.PIN)
}
