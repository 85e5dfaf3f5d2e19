package attendance

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"

	payrollEngine "github.com/hadir-hr/payroll-backend-go/internal/service/payroll"
)

// Fingerprint-device export columns. late_minutes is optional; devices that
// do not track shift starts omit it.
var fingerprintHeader = []string{"employee_code", "date", "check_in", "check_out", "late_minutes"}

// ImportFingerprintFile parses a fingerprint-device CSV export and creates one
// attendance day per row. Work hours are derived from the punch times and
// hours beyond the nominal workday count as overtime. Rows for unknown
// employees or malformed dates are collected as errors; rows for dates that
// already have a day are skipped. The import never overwrites existing days.
func (s *Service) ImportFingerprintFile(ctx context.Context, r io.Reader) (attendance.ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return attendance.ImportSummary{}, fmt.Errorf("failed to read import header: %w", err)
	}
	if err := validateFingerprintHeader(header); err != nil {
		return attendance.ImportSummary{}, err
	}

	var summary attendance.ImportSummary
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		day, err := s.parseFingerprintRow(ctx, record)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		if _, err := s.attendanceRepo.Create(ctx, day); err != nil {
			if errors.Is(err, attendance.ErrDayAlreadyExists) {
				summary.Skipped++
				continue
			}
			return summary, fmt.Errorf("failed to store imported day: %w", err)
		}
		summary.Imported++
	}
	return summary, nil
}

func validateFingerprintHeader(header []string) error {
	if len(header) < 4 {
		return fmt.Errorf("import header needs at least %d columns, got %d", 4, len(header))
	}
	for i, want := range fingerprintHeader[:4] {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("import header column %d must be %q, got %q", i+1, want, header[i])
		}
	}
	return nil
}

func (s *Service) parseFingerprintRow(ctx context.Context, record []string) (attendance.Day, error) {
	if len(record) < 4 {
		return attendance.Day{}, fmt.Errorf("expected at least 4 columns, got %d", len(record))
	}

	code := strings.TrimSpace(record[0])
	emp, err := s.employeeRepo.GetByCode(ctx, code)
	if err != nil {
		return attendance.Day{}, fmt.Errorf("employee %s: %w", code, err)
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(record[1]))
	if err != nil {
		return attendance.Day{}, fmt.Errorf("invalid date %q", record[1])
	}

	day := attendance.Day{
		EmployeeCode:         emp.Code,
		Date:                 date,
		State:                attendance.DayStateNone,
		AnnualLeaveBalance:   emp.AnnualLeaveBalance,
		MonthlyLateAllowance: emp.MonthlyLateAllowance,
	}

	checkIn := strings.TrimSpace(record[2])
	checkOut := strings.TrimSpace(record[3])
	if checkIn == "" && checkOut == "" {
		// No punches at all: the device recorded nothing for the day.
		day.State = attendance.DayStateAbsence
		return day, nil
	}

	if checkIn != "" {
		t, err := parseClock(date, checkIn)
		if err != nil {
			return attendance.Day{}, fmt.Errorf("invalid check_in %q", checkIn)
		}
		day.CheckIn = &t
	}
	if checkOut != "" {
		t, err := parseClock(date, checkOut)
		if err != nil {
			return attendance.Day{}, fmt.Errorf("invalid check_out %q", checkOut)
		}
		day.CheckOut = &t
	}

	if day.CheckIn != nil && day.CheckOut != nil {
		if day.CheckOut.Before(*day.CheckIn) {
			return attendance.Day{}, fmt.Errorf("check_out %s before check_in %s", checkOut, checkIn)
		}
		worked := decimal.NewFromFloat(day.CheckOut.Sub(*day.CheckIn).Hours())
		nominal := decimal.NewFromInt(payrollEngine.NominalWorkdayHours)
		if worked.GreaterThan(nominal) {
			day.WorkHours = nominal
			day.OvertimeHours = worked.Sub(nominal)
		} else {
			day.WorkHours = worked
		}
	}

	if len(record) >= 5 && strings.TrimSpace(record[4]) != "" {
		late, err := strconv.Atoi(strings.TrimSpace(record[4]))
		if err != nil || late < 0 {
			return attendance.Day{}, fmt.Errorf("invalid late_minutes %q", record[4])
		}
		day.LateMinutes = late
	}

	return day, nil
}
