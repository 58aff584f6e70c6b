package payroll

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func renderPayslipPDF(p Payroll) ([]byte, error) {
	period := fmt.Sprintf("%d-%02d", p.Year, p.Month)
	if p.Month >= 1 && p.Month <= 12 {
		period = fmt.Sprintf("%s %d", monthNames[p.Month-1], p.Year)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	if p.Employee != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Employee: %s %s (%s)", p.Employee.FirstName, p.Employee.LastName, p.Employee.EmployeeNumber))
		pdf.Ln(7)
		if p.Employee.Designation != "" {
			pdf.Cell(0, 8, fmt.Sprintf("Designation: %s", p.Employee.Designation))
			pdf.Ln(7)
		}
	}
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Basic salary: %.2f", p.BasicSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances (HRA/transport/medical/other): %.2f", p.TotalAllowances))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Bonuses: %.2f", p.Bonuses))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total deductions: %.2f", p.TotalDeductions))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Gross salary: %.2f", p.GrossSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net salary: %.2f", p.NetSalary))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	status := p.PaymentStatus
	if p.PaymentDate != nil {
		status = fmt.Sprintf("%s on %s", status, p.PaymentDate.Format("2006-01-02"))
	}
	pdf.Cell(0, 8, fmt.Sprintf("Payment status: %s", status))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().UTC().Format("2006-01-02")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
