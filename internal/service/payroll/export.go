package payroll

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	payrollDomain "github.com/hadir-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
)

// WriteSalaryRegisterCSV renders a salary run as a CSV register, one row per
// employee plus a totals row.
func WriteSalaryRegisterCSV(w io.Writer, run payrollDomain.SalaryRunResponse) error {
	cw := csv.NewWriter(w)

	header := []string{
		"employee_code", "employee_name", "department",
		"work_days", "absence_days", "annual_leave_days", "medical_leave_days",
		"official_leave_days", "leave_compensation_days", "weekly_leave_days",
		"overtime_hours", "overtime_value", "meal_allowance",
		"deduction_days", "deductions_value", "net_salary",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write register header: %w", err)
	}

	for _, r := range run.Reports {
		row := []string{
			r.EmployeeCode, r.EmployeeName, r.Department,
			strconv.Itoa(r.TotalWorkDays), strconv.Itoa(r.TotalAbsenceDays),
			strconv.Itoa(r.TotalAnnualLeaveDays), strconv.Itoa(r.TotalMedicalLeaveDays),
			strconv.Itoa(r.TotalOfficialLeaveDays), strconv.Itoa(r.TotalLeaveCompensationDays),
			strconv.Itoa(r.TotalWeeklyLeaveDays),
			r.TotalOvertimeHours.String(), r.OvertimeValue.StringFixed(2),
			r.MealAllowance.StringFixed(2),
			r.TotalDeductionDays.StringFixed(2), r.DeductionsValue.StringFixed(2),
			r.NetSalary.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write register row: %w", err)
		}
	}

	totals := []string{
		"TOTAL", "", "",
		strconv.Itoa(run.Totals.TotalWorkDays), strconv.Itoa(run.Totals.TotalAbsenceDays),
		"", "", "", "", "",
		"", run.Totals.TotalOvertimeValue.StringFixed(2), "",
		"", run.Totals.TotalDeductionsValue.StringFixed(2),
		run.Totals.TotalNetSalary.StringFixed(2),
	}
	if err := cw.Write(totals); err != nil {
		return fmt.Errorf("failed to write register totals: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

// SalaryRegisterPDF renders a salary run as a landscape PDF register.
func SalaryRegisterPDF(run payrollDomain.SalaryRunResponse, dateFrom, dateTo string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Salary Register")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s", dateFrom, dateTo))
	pdf.Ln(10)

	headers := []string{"Code", "Name", "Work", "Abs", "Leave", "OT Value", "Meal", "Deductions", "Net Salary"}
	widths := []float64{20, 60, 14, 14, 16, 28, 24, 30, 34}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range run.Reports {
		leaveDays := r.TotalAnnualLeaveDays + r.TotalMedicalLeaveDays + r.TotalOfficialLeaveDays
		cells := []string{
			r.EmployeeCode,
			r.EmployeeName,
			strconv.Itoa(r.TotalWorkDays),
			strconv.Itoa(r.TotalAbsenceDays),
			strconv.Itoa(leaveDays),
			r.OvertimeValue.StringFixed(2),
			r.MealAllowance.StringFixed(2),
			r.DeductionsValue.StringFixed(2),
			r.NetSalary.StringFixed(2),
		}
		for i, c := range cells {
			align := "L"
			if i >= 2 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(widths[0]+widths[1], 7, "Totals", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[2], 7, strconv.Itoa(run.Totals.TotalWorkDays), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[3], 7, strconv.Itoa(run.Totals.TotalAbsenceDays), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[4], 7, "", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], 7, run.Totals.TotalOvertimeValue.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[6], 7, "", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[7], 7, run.Totals.TotalDeductionsValue.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[8], 7, run.Totals.TotalNetSalary.StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render salary register pdf: %w", err)
	}
	return buf.Bytes(), nil
}
