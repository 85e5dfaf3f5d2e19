package payroll

import (
	"bytes"
	"encoding/csv"
	"testing"

	payrollDomain "github.com/hadir-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun() payrollDomain.SalaryRunResponse {
	return payrollDomain.SalaryRunResponse{
		Reports: []payrollDomain.SalaryReportResponse{
			{
				EmployeeCode:  "1001",
				EmployeeName:  "First Employee",
				TotalWorkDays: 20,
				NetSalary:     decimal.NewFromInt(9500),
			},
			{
				EmployeeCode:     "1002",
				EmployeeName:     "Second Employee",
				TotalWorkDays:    18,
				TotalAbsenceDays: 2,
				NetSalary:        decimal.NewFromInt(8800),
			},
		},
		Totals: payrollDomain.SalaryRunTotalsResponse{
			EmployeeCount:  2,
			TotalNetSalary: decimal.NewFromInt(18300),
			TotalWorkDays:  38,
		},
	}
}

func TestWriteSalaryRegisterCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSalaryRegisterCSV(&buf, sampleRun()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	// Header, two employees, totals.
	require.Len(t, records, 4)

	assert.Equal(t, "employee_code", records[0][0])
	assert.Equal(t, "1001", records[1][0])
	assert.Equal(t, "9500.00", records[1][len(records[1])-1])

	totals := records[3]
	assert.Equal(t, "TOTAL", totals[0])
	assert.Equal(t, "18300.00", totals[len(totals)-1])
}

func TestSalaryRegisterPDF(t *testing.T) {
	pdf, err := SalaryRegisterPDF(sampleRun(), "2024-03-01", "2024-03-30")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "not a pdf: %q", pdf[:8])
}
