package attendance

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importedDay(t *testing.T, repo *fakeAttendanceRepo, code, date string) attendance.Day {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	days, err := repo.ListByEmployeeRange(context.Background(), code, d, d)
	require.NoError(t, err)
	require.Len(t, days, 1)
	return days[0]
}

func TestImportFingerprintFile_DerivesHours(t *testing.T) {
	svc, repo := newTestService(activeEmployee("1001"))

	file := strings.Join([]string{
		"employee_code,date,check_in,check_out,late_minutes",
		"1001,2024-03-04,08:00,17:00,0",
		"1001,2024-03-05,08:00,19:00,15",
	}, "\n")

	summary, err := svc.ImportFingerprintFile(context.Background(), strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 0, summary.Skipped)
	assert.Empty(t, summary.Errors)

	// A 9-hour punch span is a plain nominal day.
	d1 := importedDay(t, repo, "1001", "2024-03-04")
	assert.Equal(t, "9.00", d1.WorkHours.Round(2).StringFixed(2))
	assert.True(t, d1.OvertimeHours.IsZero())
	assert.Equal(t, 120, d1.MonthlyLateAllowance)

	// An 11-hour span is 9 nominal hours plus 2 overtime.
	d2 := importedDay(t, repo, "1001", "2024-03-05")
	assert.Equal(t, "9.00", d2.WorkHours.Round(2).StringFixed(2))
	assert.Equal(t, "2.00", d2.OvertimeHours.Round(2).StringFixed(2))
	assert.Equal(t, 15, d2.LateMinutes)
}

func TestImportFingerprintFile_EmptyPunchesMeanAbsence(t *testing.T) {
	svc, repo := newTestService(activeEmployee("1001"))

	file := "employee_code,date,check_in,check_out\n1001,2024-03-04,,\n"
	summary, err := svc.ImportFingerprintFile(context.Background(), strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)

	d := importedDay(t, repo, "1001", "2024-03-04")
	assert.Equal(t, attendance.DayStateAbsence, d.State)
	assert.True(t, d.WorkHours.IsZero())
}

func TestImportFingerprintFile_SkipsExistingDays(t *testing.T) {
	svc, repo := newTestService(activeEmployee("1001"))
	storedDay(t, repo, "1001", "2024-03-04")

	file := strings.Join([]string{
		"employee_code,date,check_in,check_out",
		"1001,2024-03-04,08:00,17:00",
		"1001,2024-03-05,08:00,17:00",
	}, "\n")

	summary, err := svc.ImportFingerprintFile(context.Background(), strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)
}

func TestImportFingerprintFile_CollectsRowErrors(t *testing.T) {
	svc, _ := newTestService(activeEmployee("1001"))

	file := strings.Join([]string{
		"employee_code,date,check_in,check_out",
		"9999,2024-03-04,08:00,17:00", // unknown employee
		"1001,04/03/2024,08:00,17:00", // bad date
		"1001,2024-03-05,17:00,08:00", // reversed punches
		"1001,2024-03-06,08:00,17:00", // good
	}, "\n")

	summary, err := svc.ImportFingerprintFile(context.Background(), strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	assert.Len(t, summary.Errors, 3)
}

func TestImportFingerprintFile_RejectsBadHeader(t *testing.T) {
	svc, _ := newTestService(activeEmployee("1001"))

	_, err := svc.ImportFingerprintFile(context.Background(), strings.NewReader("code,day,in,out\n"))
	assert.Error(t, err)
}

func TestImportFingerprintFile_CheckInOnly(t *testing.T) {
	svc, repo := newTestService(activeEmployee("1001"))

	file := "employee_code,date,check_in,check_out\n1001,2024-03-04,08:00,\n"
	summary, err := svc.ImportFingerprintFile(context.Background(), strings.NewReader(file))
	require.NoError(t, err)
	require.Equal(t, 1, summary.Imported)

	d := importedDay(t, repo, "1001", "2024-03-04")
	require.NotNil(t, d.CheckIn)
	assert.Nil(t, d.CheckOut)
	assert.True(t, d.WorkHours.Equal(decimal.Zero))
	assert.Equal(t, attendance.DayStateNone, d.State)
}
