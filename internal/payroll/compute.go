package payroll

import "math"

// Totals holds the derived payroll figures.
type Totals struct {
	TotalAllowances float64
	TotalDeductions float64
	GrossSalary     float64
	NetSalary       float64
}

// ComputeTotals derives the payroll figures from their components. Services
// always call this before persisting, so client-supplied totals never win.
func ComputeTotals(basic float64, a Allowances, bonuses float64, d Deductions) Totals {
	totalAllowances := a.HRA + a.Transport + a.Medical + a.Other
	totalDeductions := d.Tax + d.ProvidentFund + d.Insurance + d.Other
	gross := basic + totalAllowances + bonuses

	return Totals{
		TotalAllowances: round2(totalAllowances),
		TotalDeductions: round2(totalDeductions),
		GrossSalary:     round2(gross),
		NetSalary:       round2(gross - totalDeductions),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
