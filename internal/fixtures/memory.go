// Package fixtures provides deterministic in-memory implementations of the
// repository interfaces so services can be tested without a database.
package fixtures

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/attendance"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/employee"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/schedule"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/shift"
	"github.com/bookstore-chain/timeclock-backend-go/internal/domain/store"
)

// Transactor satisfies the services' transaction boundary without a
// database; the unit of work runs directly against the in-memory state.
type Transactor struct{}

func NewTransactor() *Transactor { return &Transactor{} }

func (Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type EmployeeRepository struct {
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

func (f *EmployeeRepository) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	if emp.ID == "" {
		emp.ID = fmt.Sprintf("emp-%d", len(f.employees)+1)
	}
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *EmployeeRepository) List(_ context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f.employees))
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *EmployeeRepository) Update(_ context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *EmployeeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

type AttendanceRepository struct {
	records map[string]attendance.Record
	nextID  int
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{records: make(map[string]attendance.Record)}
}

func (f *AttendanceRepository) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == rec.EmployeeID && existing.Open() {
			return attendance.Record{}, attendance.ErrAlreadyClockedIn
		}
	}
	f.nextID++
	rec.ID = fmt.Sprintf("rec-%d", f.nextID)
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *AttendanceRepository) GetByID(_ context.Context, id string) (attendance.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (f *AttendanceRepository) Update(_ context.Context, rec attendance.Record) error {
	if _, ok := f.records[rec.ID]; !ok {
		return attendance.ErrRecordNotFound
	}
	f.records[rec.ID] = rec
	return nil
}

func (f *AttendanceRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return attendance.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *AttendanceRepository) GetOpenRecord(_ context.Context, employeeID string) (*attendance.Record, error) {
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Open() {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}

func (f *AttendanceRepository) ListOpen(_ context.Context) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.Open() {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *AttendanceRepository) ListByEmployeeBetween(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.EmployeeID != employeeID {
			continue
		}
		if rec.ClockIn.Before(from) || !rec.ClockIn.Before(to) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClockIn.Before(out[j].ClockIn) })
	return out, nil
}

func (f *AttendanceRepository) ListRecent(_ context.Context, limit int) ([]attendance.Record, error) {
	out := make([]attendance.Record, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].ClockIn, out[j].ClockIn
		if out[i].ClockOut != nil {
			ti = *out[i].ClockOut
		}
		if out[j].ClockOut != nil {
			tj = *out[j].ClockOut
		}
		return ti.After(tj)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *AttendanceRepository) DeleteByEmployee(_ context.Context, employeeID string) error {
	for id, rec := range f.records {
		if rec.EmployeeID == employeeID {
			delete(f.records, id)
		}
	}
	return nil
}

type ScheduleRepository struct {
	entries map[string]schedule.Entry // keyed by employeeID+"|"+date
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{entries: make(map[string]schedule.Entry)}
}

func scheduleKey(employeeID, date string) string {
	return employeeID + "|" + date
}

func (f *ScheduleRepository) Upsert(_ context.Context, entry schedule.Entry) (schedule.Entry, error) {
	if existing, ok := f.entries[scheduleKey(entry.EmployeeID, entry.Date)]; ok {
		entry.ID = existing.ID
	} else if entry.ID == "" {
		entry.ID = fmt.Sprintf("sch-%d", len(f.entries)+1)
	}
	f.entries[scheduleKey(entry.EmployeeID, entry.Date)] = entry
	return entry, nil
}

func (f *ScheduleRepository) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (*schedule.Entry, error) {
	entry, ok := f.entries[scheduleKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (f *ScheduleRepository) ListByEmployeeBetween(_ context.Context, employeeID, fromDate, toDate string) ([]schedule.Entry, error) {
	var out []schedule.Entry
	for _, entry := range f.entries {
		if entry.EmployeeID == employeeID && entry.Date >= fromDate && entry.Date <= toDate {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (f *ScheduleRepository) ListByDate(_ context.Context, date string) ([]schedule.Entry, error) {
	var out []schedule.Entry
	for _, entry := range f.entries {
		if entry.Date == date {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *ScheduleRepository) Delete(_ context.Context, employeeID, date string) error {
	key := scheduleKey(employeeID, date)
	if _, ok := f.entries[key]; !ok {
		return schedule.ErrEntryNotFound
	}
	delete(f.entries, key)
	return nil
}

func (f *ScheduleRepository) DeleteByEmployee(_ context.Context, employeeID string) error {
	for key, entry := range f.entries {
		if entry.EmployeeID == employeeID {
			delete(f.entries, key)
		}
	}
	return nil
}

func (f *ScheduleRepository) DeleteByShift(_ context.Context, shiftID string) error {
	for key, entry := range f.entries {
		if entry.ShiftID == shiftID {
			delete(f.entries, key)
		}
	}
	return nil
}

type ShiftRepository struct {
	shifts map[string]shift.Shift
}

func NewShiftRepository() *ShiftRepository {
	return &ShiftRepository{shifts: make(map[string]shift.Shift)}
}

func (f *ShiftRepository) Create(_ context.Context, sh shift.Shift) (shift.Shift, error) {
	if sh.ID == "" {
		sh.ID = fmt.Sprintf("shift-%d", len(f.shifts)+1)
	}
	f.shifts[sh.ID] = sh
	return sh, nil
}

func (f *ShiftRepository) GetByID(_ context.Context, id string) (shift.Shift, error) {
	sh, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return sh, nil
}

func (f *ShiftRepository) List(_ context.Context) ([]shift.Shift, error) {
	out := make([]shift.Shift, 0, len(f.shifts))
	for _, sh := range f.shifts {
		out = append(out, sh)
	}
	return out, nil
}

func (f *ShiftRepository) Update(_ context.Context, sh shift.Shift) error {
	if _, ok := f.shifts[sh.ID]; !ok {
		return shift.ErrShiftNotFound
	}
	f.shifts[sh.ID] = sh
	return nil
}

func (f *ShiftRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.shifts[id]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(f.shifts, id)
	return nil
}

type StoreRepository struct {
	stores map[string]store.StoreLocation
}

func NewStoreRepository() *StoreRepository {
	return &StoreRepository{stores: make(map[string]store.StoreLocation)}
}

func (f *StoreRepository) Create(_ context.Context, st store.StoreLocation) (store.StoreLocation, error) {
	if st.ID == "" {
		st.ID = fmt.Sprintf("store-%d", len(f.stores)+1)
	}
	f.stores[st.ID] = st
	return st, nil
}

func (f *StoreRepository) GetByID(_ context.Context, id string) (store.StoreLocation, error) {
	st, ok := f.stores[id]
	if !ok {
		return store.StoreLocation{}, store.ErrStoreNotFound
	}
	return st, nil
}

func (f *StoreRepository) List(_ context.Context) ([]store.StoreLocation, error) {
	out := make([]store.StoreLocation, 0, len(f.stores))
	for _, st := range f.stores {
		out = append(out, st)
	}
	return out, nil
}

func (f *StoreRepository) Update(_ context.Context, st store.StoreLocation) error {
	if _, ok := f.stores[st.ID]; !ok {
		return store.ErrStoreNotFound
	}
	f.stores[st.ID] = st
	return nil
}

func (f *StoreRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.stores[id]; !ok {
		return store.ErrStoreNotFound
	}
	delete(f.stores, id)
	return nil
}
