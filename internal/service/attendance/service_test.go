package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/hadir-hr/payroll-backend-go/internal/domain/employee"
	"github.com/hadir-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========== FAKES ==========

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		r.employees[e.Code] = e
	}
	return r
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.employees[emp.Code] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	emp, ok := r.employees[code]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (r *fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.Status == employee.StatusActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.employees[emp.Code] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) BulkAdjust(_ context.Context, _ employee.BulkAdjustRequest) (int64, error) {
	return 0, nil
}

func (r *fakeEmployeeRepo) SetStatus(_ context.Context, _ string, _ employee.Status) error {
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, code string) error {
	delete(r.employees, code)
	return nil
}

type fakeAttendanceRepo struct {
	days     map[string]attendance.Day
	nextID   int
	failDate time.Time // Create fails for this date when set
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{days: make(map[string]attendance.Day)}
}

func (r *fakeAttendanceRepo) key(code string, date time.Time) string {
	return code + "|" + date.Format("2006-01-02")
}

func (r *fakeAttendanceRepo) Create(_ context.Context, day attendance.Day) (attendance.Day, error) {
	if !r.failDate.IsZero() && day.Date.Equal(r.failDate) {
		return attendance.Day{}, fmt.Errorf("insert failed for %s", day.Date.Format("2006-01-02"))
	}
	for _, d := range r.days {
		if d.EmployeeCode == day.EmployeeCode && d.Date.Equal(day.Date) {
			return attendance.Day{}, attendance.ErrDayAlreadyExists
		}
	}
	r.nextID++
	day.ID = fmt.Sprintf("day-%d", r.nextID)
	r.days[day.ID] = day
	return day, nil
}

func (r *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Day, error) {
	day, ok := r.days[id]
	if !ok {
		return attendance.Day{}, attendance.ErrDayNotFound
	}
	return day, nil
}

func (r *fakeAttendanceRepo) ListByEmployeeRange(_ context.Context, employeeCode string, from, to time.Time) ([]attendance.Day, error) {
	var out []attendance.Day
	for _, d := range r.days {
		if d.EmployeeCode == employeeCode && !d.Date.Before(from) && !d.Date.After(to) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListByRange(_ context.Context, from, to time.Time) ([]attendance.Day, error) {
	var out []attendance.Day
	for _, d := range r.days {
		if !d.Date.Before(from) && !d.Date.After(to) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) Update(_ context.Context, day attendance.Day) (attendance.Day, error) {
	if _, ok := r.days[day.ID]; !ok {
		return attendance.Day{}, attendance.ErrDayNotFound
	}
	r.days[day.ID] = day
	return day, nil
}

func (r *fakeAttendanceRepo) Purge(_ context.Context, employeeCode string, from, to time.Time) (int64, error) {
	var removed int64
	for id, d := range r.days {
		if !d.Date.Before(from) && !d.Date.After(to) &&
			(employeeCode == "" || d.EmployeeCode == employeeCode) {
			delete(r.days, id)
			removed++
		}
	}
	return removed, nil
}

// fakeTxManager mimics transactional writes against the in-memory repo: it
// snapshots the stored days and restores them when fn fails.
type fakeTxManager struct {
	repo *fakeAttendanceRepo
}

func (m *fakeTxManager) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := make(map[string]attendance.Day, len(m.repo.days))
	for id, d := range m.repo.days {
		snapshot[id] = d
	}
	if err := fn(ctx); err != nil {
		m.repo.days = snapshot
		return err
	}
	return nil
}

// ========== FIXTURES ==========

func activeEmployee(code string) employee.Employee {
	return employee.Employee{
		Code:                 code,
		FullName:             "Employee " + code,
		BaseSalary:           decimal.NewFromInt(9000),
		WorkDaysPerWeek:      5,
		AnnualLeaveBalance:   decimal.NewFromInt(21),
		MonthlyLateAllowance: 120,
		Status:               employee.StatusActive,
	}
}

func newTestService(emps ...employee.Employee) (*Service, *fakeAttendanceRepo) {
	attendanceRepo := newFakeAttendanceRepo()
	tx := &fakeTxManager{repo: attendanceRepo}
	return NewService(tx, newFakeEmployeeRepo(emps...), attendanceRepo), attendanceRepo
}

func storedDay(t *testing.T, repo *fakeAttendanceRepo, code, date string) attendance.Day {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	day, err := repo.Create(context.Background(), attendance.Day{
		EmployeeCode: code,
		Date:         d,
		State:        attendance.DayStateNone,
	})
	require.NoError(t, err)
	return day
}

// ========== EDIT ==========

func TestEditDay_SetsSingleState(t *testing.T) {
	svc, repo := newTestService(activeEmployee("1001"))
	day := storedDay(t, repo, "1001", "2024-03-04")

	resp, err := svc.EditDay(context.Background(), attendance.EditDayRequest{
		ID:      day.ID,
		Absence: true,
	})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.DayStateAbsence), resp.State)

	stored, err := repo.GetByID(context.Background(), day.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.DayStateAbsence, stored.State)
}

func TestEditDay_RejectsConflictingFlags(t *testing.T) {
	svc, repo := newTestService(activeEmployee("1001"))
	day := storedDay(t, repo, "1001", "2024-03-04")

	cases := []attendance.EditDayRequest{
		{ID: day.ID, Absence: true, AnnualLeave: true},
		{ID: day.ID, MedicalLeave: true, OfficialLeave: true},
		{ID: day.ID, Absence: true, LeaveCompensationValue: decimal.NewFromInt(600)},
		{ID: day.ID, AnnualLeave: true, AppropriateValue: decimal.NewFromInt(250)},
		{ID: day.ID, LeaveCompensationValue: decimal.NewFromInt(600), AppropriateValue: decimal.NewFromInt(250)},
	}
	for i, req := range cases {
		_, err := svc.EditDay(context.Background(), req)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs, "case %d", i)

		// The row is left untouched.
		stored, err := repo.GetByID(context.Background(), day.ID)
		require.NoError(t, err)
		assert.Equal(t, attendance.DayStateNone, stored.State, "case %d", i)
	}
}

func TestEditDay_ClearsFlagsBackToNone(t *testing.T) {
	svc, repo := newTestService(activeEmployee("1001"))
	day := storedDay(t, repo, "1001", "2024-03-04")

	_, err := svc.EditDay(context.Background(), attendance.EditDayRequest{ID: day.ID, AnnualLeave: true})
	require.NoError(t, err)

	resp, err := svc.EditDay(context.Background(), attendance.EditDayRequest{ID: day.ID})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.DayStateNone), resp.State)
}

func TestEditDay_PunchTimesAndHours(t *testing.T) {
	svc, repo := newTestService(activeEmployee("1001"))
	day := storedDay(t, repo, "1001", "2024-03-04")

	checkIn := "08:30"
	checkOut := "17:30"
	hours := decimal.NewFromInt(9)
	late := 30
	resp, err := svc.EditDay(context.Background(), attendance.EditDayRequest{
		ID:          day.ID,
		CheckIn:     &checkIn,
		CheckOut:    &checkOut,
		WorkHours:   &hours,
		LateMinutes: &late,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, "08:30", *resp.CheckIn)
	assert.Equal(t, "9.00", resp.WorkHours.StringFixed(2))
	assert.Equal(t, 30, resp.LateMinutes)

	bad := "25:99"
	_, err = svc.EditDay(context.Background(), attendance.EditDayRequest{ID: day.ID, CheckIn: &bad})
	assert.Error(t, err)
}

func TestEditDay_NotFound(t *testing.T) {
	svc, _ := newTestService(activeEmployee("1001"))
	_, err := svc.EditDay(context.Background(), attendance.EditDayRequest{ID: "missing"})
	assert.ErrorIs(t, err, attendance.ErrDayNotFound)
}

// ========== LEAVE RANGE ==========

func TestCreateLeaveRange_SingleEmployee(t *testing.T) {
	svc, repo := newTestService(activeEmployee("1001"))

	created, err := svc.CreateLeaveRange(context.Background(), attendance.CreateLeaveRangeRequest{
		EmployeeCode: "1001",
		DateFrom:     "2024-03-04",
		DateTo:       "2024-03-06",
		LeaveType:    "annual_leave",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	from, _ := time.Parse("2006-01-02", "2024-03-01")
	to, _ := time.Parse("2006-01-02", "2024-03-31")
	days, err := repo.ListByEmployeeRange(context.Background(), "1001", from, to)
	require.NoError(t, err)
	require.Len(t, days, 3)
	for _, d := range days {
		assert.Equal(t, attendance.DayStateAnnualLeave, d.State)
		assert.Equal(t, 120, d.MonthlyLateAllowance)
	}
}

func TestCreateLeaveRange_AllActiveSkipsExistingDays(t *testing.T) {
	svc, repo := newTestService(activeEmployee("1001"), activeEmployee("1002"))
	storedDay(t, repo, "1001", "2024-03-04")

	created, err := svc.CreateLeaveRange(context.Background(), attendance.CreateLeaveRangeRequest{
		DateFrom:  "2024-03-04",
		DateTo:    "2024-03-05",
		LeaveType: "official_leave",
	})
	require.NoError(t, err)
	// 2 employees x 2 days, minus the pre-existing day.
	assert.Equal(t, 3, created)

	// The pre-existing day keeps its original state.
	from, _ := time.Parse("2006-01-02", "2024-03-04")
	days, err := repo.ListByEmployeeRange(context.Background(), "1001", from, from)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, attendance.DayStateNone, days[0].State)
}

func TestCreateLeaveRange_FailedInsertRollsBackRange(t *testing.T) {
	svc, repo := newTestService(activeEmployee("1001"))
	repo.failDate = time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

	created, err := svc.CreateLeaveRange(context.Background(), attendance.CreateLeaveRangeRequest{
		EmployeeCode: "1001",
		DateFrom:     "2024-03-04",
		DateTo:       "2024-03-08",
		LeaveType:    "annual_leave",
	})
	require.Error(t, err)
	assert.Zero(t, created)

	// The days written before the failure are rolled back with it.
	from, _ := time.Parse("2006-01-02", "2024-03-01")
	to, _ := time.Parse("2006-01-02", "2024-03-31")
	days, err := repo.ListByEmployeeRange(context.Background(), "1001", from, to)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestCreateLeaveRange_RejectsInvalidLeaveType(t *testing.T) {
	svc, _ := newTestService(activeEmployee("1001"))

	_, err := svc.CreateLeaveRange(context.Background(), attendance.CreateLeaveRangeRequest{
		EmployeeCode: "1001",
		DateFrom:     "2024-03-04",
		DateTo:       "2024-03-05",
		LeaveType:    "leave_compensation", // not bulk-assignable
	})
	assert.Error(t, err)
}

// ========== LIST / PURGE ==========

func TestList_FiltersByEmployeeAndRange(t *testing.T) {
	svc, repo := newTestService(activeEmployee("1001"), activeEmployee("1002"))
	storedDay(t, repo, "1001", "2024-03-04")
	storedDay(t, repo, "1001", "2024-03-10")
	storedDay(t, repo, "1002", "2024-03-04")

	days, err := svc.List(context.Background(), "1001", "2024-03-01", "2024-03-05")
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2024-03-04", days[0].Date)

	all, err := svc.List(context.Background(), "", "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = svc.List(context.Background(), "1001", "2024-03-05", "2024-03-01")
	assert.Error(t, err)
}

func TestPurge_RemovesRange(t *testing.T) {
	svc, repo := newTestService(activeEmployee("1001"), activeEmployee("1002"))
	storedDay(t, repo, "1001", "2024-03-04")
	storedDay(t, repo, "1001", "2024-04-01")
	storedDay(t, repo, "1002", "2024-03-04")

	removed, err := svc.Purge(context.Background(), attendance.PurgeRequest{
		EmployeeCode: "1001",
		DateFrom:     "2024-03-01",
		DateTo:       "2024-03-31",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = svc.Purge(context.Background(), attendance.PurgeRequest{
		DateFrom: "2024-01-01",
		DateTo:   "2024-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}
