package payslip

// LineItems is the raw input of the totals calculation.
type LineItems struct {
	BasicSalary    int64
	TaxFreeCommute int64
	OvertimePay    int64
	OtherAllowance int64

	IncomeTax           int64
	ResidentTax         int64
	HealthInsurance     int64
	PensionInsurance    int64
	EmploymentInsurance int64
	OtherDeduction      int64
}

type Totals struct {
	TotalEarnings   int64
	TotalDeductions int64
	NetPay          int64
}

// CalculateTotals sums earnings and deductions. NetPay is not clamped and may be negative.
func CalculateTotals(items LineItems) Totals {
	earnings := items.BasicSalary + items.TaxFreeCommute + items.OvertimePay + items.OtherAllowance
	deductions := items.IncomeTax + items.ResidentTax + items.HealthInsurance +
		items.PensionInsurance + items.EmploymentInsurance + items.OtherDeduction

	return Totals{
		TotalEarnings:   earnings,
		TotalDeductions: deductions,
		NetPay:          earnings - deductions,
	}
}

func (p Payslip) LineItems() LineItems {
	return LineItems{
		BasicSalary:         p.BasicSalary,
		TaxFreeCommute:      p.TaxFreeCommute,
		OvertimePay:         p.OvertimePay,
		OtherAllowance:      p.OtherAllowance,
		IncomeTax:           p.IncomeTax,
		ResidentTax:         p.ResidentTax,
		HealthInsurance:     p.HealthInsurance,
		PensionInsurance:    p.PensionInsurance,
		EmploymentInsurance: p.EmploymentInsurance,
		OtherDeduction:      p.OtherDeduction,
	}
}

// Recalculate overwrites the derived totals from the current line items.
func (p *Payslip) Recalculate() {
	t := CalculateTotals(p.LineItems())
	p.TotalEarnings = t.TotalEarnings
	p.TotalDeductions = t.TotalDeductions
	p.NetPay = t.NetPay
}
