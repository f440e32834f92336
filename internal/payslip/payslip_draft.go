package payslip

import (
	"time"

	"go-payslip/internal/period"
)

const DefaultFormat = 1

// CarryField is one field copied from a payslip into the next month's draft.
type CarryField struct {
	Name string
	copy func(dst *Payslip, src Payslip)
}

// CarryForwardFields is the fixed copy-forward policy. Overtime pay, income tax,
// other deductions and attendance vary month to month and are left at defaults.
var CarryForwardFields = []CarryField{
	{Name: "employeeName", copy: func(dst *Payslip, src Payslip) { dst.EmployeeName = src.EmployeeName }},
	{Name: "companyName", copy: func(dst *Payslip, src Payslip) { dst.CompanyName = src.CompanyName }},
	{Name: "companyLogo", copy: func(dst *Payslip, src Payslip) { dst.CompanyLogo = src.CompanyLogo }},
	{Name: "basicSalary", copy: func(dst *Payslip, src Payslip) { dst.BasicSalary = src.BasicSalary }},
	{Name: "taxFreeCommute", copy: func(dst *Payslip, src Payslip) { dst.TaxFreeCommute = src.TaxFreeCommute }},
	{Name: "otherAllowance", copy: func(dst *Payslip, src Payslip) { dst.OtherAllowance = src.OtherAllowance }},
	{Name: "residentTax", copy: func(dst *Payslip, src Payslip) { dst.ResidentTax = src.ResidentTax }},
	{Name: "healthInsurance", copy: func(dst *Payslip, src Payslip) { dst.HealthInsurance = src.HealthInsurance }},
	{Name: "pensionInsurance", copy: func(dst *Payslip, src Payslip) { dst.PensionInsurance = src.PensionInsurance }},
	{Name: "employmentInsurance", copy: func(dst *Payslip, src Payslip) { dst.EmploymentInsurance = src.EmploymentInsurance }},
	{Name: "selectedFormat", copy: func(dst *Payslip, src Payslip) { dst.SelectedFormat = normalizeFormat(src.SelectedFormat) }},
}

func CarryForwardFieldNames() []string {
	names := make([]string, len(CarryForwardFields))
	for i, f := range CarryForwardFields {
		names[i] = f.Name
	}
	return names
}

// NewDraft returns an empty payslip for the month containing now.
func NewDraft(now time.Time) Payslip {
	return NewDraftFor(period.Current(now))
}

// NewDraftFor returns an empty payslip issued in ym whose work period spans the whole month.
func NewDraftFor(ym period.YearMonth) Payslip {
	first, last := 1, ym.LastDay()
	year, month := ym.Year, ym.Month
	startYear, startMonth := year, month

	return Payslip{
		IssueYear:      year,
		IssueMonth:     month,
		WorkStartYear:  &startYear,
		WorkStartMonth: &startMonth,
		WorkStartDay:   &first,
		WorkEndYear:    &year,
		WorkEndMonth:   &month,
		WorkEndDay:     &last,
		SelectedFormat: DefaultFormat,
	}
}

// CopyForward builds the draft for the month after source.
func CopyForward(source Payslip) Payslip {
	next := period.New(source.IssueYear, source.IssueMonth).Next()
	draft := NewDraftFor(next)
	for _, f := range CarryForwardFields {
		f.copy(&draft, source)
	}
	draft.Recalculate()
	return draft
}

func normalizeFormat(format int) int {
	if format < 1 {
		return DefaultFormat
	}
	return format
}
