package payslip

import (
	"time"

	"go-payslip/internal/shared/numeric"
)

// PayslipRecord is the wire shape of a payslip. It is used for save requests, responses
// and the export file, so keys must stay in sync with the export format.
type PayslipRecord struct {
	ID string `json:"id,omitempty"`

	IssueYear  numeric.Int `json:"issueYear"`
	IssueMonth numeric.Int `json:"issueMonth"`

	EmployeeName string `json:"employeeName"`
	CompanyName  string `json:"companyName"`
	CompanyLogo  string `json:"companyLogo"`

	WorkStartYear  *numeric.Int `json:"workStartYear"`
	WorkStartMonth *numeric.Int `json:"workStartMonth"`
	WorkStartDay   *numeric.Int `json:"workStartDay"`
	WorkEndYear    *numeric.Int `json:"workEndYear"`
	WorkEndMonth   *numeric.Int `json:"workEndMonth"`
	WorkEndDay     *numeric.Int `json:"workEndDay"`

	WorkingDays   numeric.Float `json:"workingDays"`
	WorkingHours  numeric.Float `json:"workingHours"`
	OvertimeHours numeric.Float `json:"overtimeHours"`

	BasicSalary    numeric.Int `json:"basicSalary"`
	TaxFreeCommute numeric.Int `json:"taxFreeCommute"`
	OvertimePay    numeric.Int `json:"overtimePay"`
	OtherAllowance numeric.Int `json:"otherAllowance"`

	IncomeTax           numeric.Int `json:"incomeTax"`
	ResidentTax         numeric.Int `json:"residentTax"`
	HealthInsurance     numeric.Int `json:"healthInsurance"`
	PensionInsurance    numeric.Int `json:"pensionInsurance"`
	EmploymentInsurance numeric.Int `json:"employmentInsurance"`
	OtherDeduction      numeric.Int `json:"otherDeduction"`

	TotalEarnings   numeric.Int `json:"totalEarnings"`
	TotalDeductions numeric.Int `json:"totalDeductions"`
	NetPay          numeric.Int `json:"netPay"`

	SelectedFormat numeric.Int `json:"selectedFormat"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type CalculateRequest struct {
	BasicSalary    numeric.Int `json:"basicSalary"`
	TaxFreeCommute numeric.Int `json:"taxFreeCommute"`
	OvertimePay    numeric.Int `json:"overtimePay"`
	OtherAllowance numeric.Int `json:"otherAllowance"`

	IncomeTax           numeric.Int `json:"incomeTax"`
	ResidentTax         numeric.Int `json:"residentTax"`
	HealthInsurance     numeric.Int `json:"healthInsurance"`
	PensionInsurance    numeric.Int `json:"pensionInsurance"`
	EmploymentInsurance numeric.Int `json:"employmentInsurance"`
	OtherDeduction      numeric.Int `json:"otherDeduction"`
}

type TotalsResponse struct {
	TotalEarnings   int64 `json:"totalEarnings"`
	TotalDeductions int64 `json:"totalDeductions"`
	NetPay          int64 `json:"netPay"`
}

type PeriodQuery struct {
	StartYear  int `form:"start_year" binding:"required"`
	StartMonth int `form:"start_month" binding:"required,min=1,max=12"`
	Count      int `form:"count" binding:"omitempty,min=1,max=120"`
}

func (r CalculateRequest) LineItems() LineItems {
	return LineItems{
		BasicSalary:         r.BasicSalary.Int64(),
		TaxFreeCommute:      r.TaxFreeCommute.Int64(),
		OvertimePay:         r.OvertimePay.Int64(),
		OtherAllowance:      r.OtherAllowance.Int64(),
		IncomeTax:           r.IncomeTax.Int64(),
		ResidentTax:         r.ResidentTax.Int64(),
		HealthInsurance:     r.HealthInsurance.Int64(),
		PensionInsurance:    r.PensionInsurance.Int64(),
		EmploymentInsurance: r.EmploymentInsurance.Int64(),
		OtherDeduction:      r.OtherDeduction.Int64(),
	}
}

// ToEntity converts the wire record. Totals in the record are ignored; they are
// recomputed on save.
func (r PayslipRecord) ToEntity() Payslip {
	p := Payslip{
		ID:                  r.ID,
		IssueYear:           int(r.IssueYear),
		IssueMonth:          int(r.IssueMonth),
		EmployeeName:        r.EmployeeName,
		CompanyName:         r.CompanyName,
		CompanyLogo:         r.CompanyLogo,
		WorkStartYear:       optionalInt(r.WorkStartYear),
		WorkStartMonth:      optionalInt(r.WorkStartMonth),
		WorkStartDay:        optionalInt(r.WorkStartDay),
		WorkEndYear:         optionalInt(r.WorkEndYear),
		WorkEndMonth:        optionalInt(r.WorkEndMonth),
		WorkEndDay:          optionalInt(r.WorkEndDay),
		WorkingDays:         r.WorkingDays.Float64(),
		WorkingHours:        r.WorkingHours.Float64(),
		OvertimeHours:       r.OvertimeHours.Float64(),
		BasicSalary:         r.BasicSalary.Int64(),
		TaxFreeCommute:      r.TaxFreeCommute.Int64(),
		OvertimePay:         r.OvertimePay.Int64(),
		OtherAllowance:      r.OtherAllowance.Int64(),
		IncomeTax:           r.IncomeTax.Int64(),
		ResidentTax:         r.ResidentTax.Int64(),
		HealthInsurance:     r.HealthInsurance.Int64(),
		PensionInsurance:    r.PensionInsurance.Int64(),
		EmploymentInsurance: r.EmploymentInsurance.Int64(),
		OtherDeduction:      r.OtherDeduction.Int64(),
		SelectedFormat:      int(r.SelectedFormat),
	}
	if r.CreatedAt != nil {
		p.CreatedAt = *r.CreatedAt
	}
	if r.UpdatedAt != nil {
		p.UpdatedAt = *r.UpdatedAt
	}
	return p
}

func ToRecord(p Payslip) PayslipRecord {
	r := PayslipRecord{
		ID:                  p.ID,
		IssueYear:           numeric.Int(p.IssueYear),
		IssueMonth:          numeric.Int(p.IssueMonth),
		EmployeeName:        p.EmployeeName,
		CompanyName:         p.CompanyName,
		CompanyLogo:         p.CompanyLogo,
		WorkStartYear:       wireInt(p.WorkStartYear),
		WorkStartMonth:      wireInt(p.WorkStartMonth),
		WorkStartDay:        wireInt(p.WorkStartDay),
		WorkEndYear:         wireInt(p.WorkEndYear),
		WorkEndMonth:        wireInt(p.WorkEndMonth),
		WorkEndDay:          wireInt(p.WorkEndDay),
		WorkingDays:         numeric.Float(p.WorkingDays),
		WorkingHours:        numeric.Float(p.WorkingHours),
		OvertimeHours:       numeric.Float(p.OvertimeHours),
		BasicSalary:         numeric.Int(p.BasicSalary),
		TaxFreeCommute:      numeric.Int(p.TaxFreeCommute),
		OvertimePay:         numeric.Int(p.OvertimePay),
		OtherAllowance:      numeric.Int(p.OtherAllowance),
		IncomeTax:           numeric.Int(p.IncomeTax),
		ResidentTax:         numeric.Int(p.ResidentTax),
		HealthInsurance:     numeric.Int(p.HealthInsurance),
		PensionInsurance:    numeric.Int(p.PensionInsurance),
		EmploymentInsurance: numeric.Int(p.EmploymentInsurance),
		OtherDeduction:      numeric.Int(p.OtherDeduction),
		TotalEarnings:       numeric.Int(p.TotalEarnings),
		TotalDeductions:     numeric.Int(p.TotalDeductions),
		NetPay:              numeric.Int(p.NetPay),
		SelectedFormat:      numeric.Int(p.SelectedFormat),
	}
	if !p.CreatedAt.IsZero() {
		createdAt := p.CreatedAt
		r.CreatedAt = &createdAt
	}
	if !p.UpdatedAt.IsZero() {
		updatedAt := p.UpdatedAt
		r.UpdatedAt = &updatedAt
	}
	return r
}

func ToRecords(payslips []Payslip) []PayslipRecord {
	records := make([]PayslipRecord, len(payslips))
	for i, p := range payslips {
		records[i] = ToRecord(p)
	}
	return records
}

func optionalInt(v *numeric.Int) *int {
	if v == nil || *v == 0 {
		return nil
	}
	n := int(*v)
	return &n
}

func wireInt(v *int) *numeric.Int {
	if v == nil {
		return nil
	}
	n := numeric.Int(*v)
	return &n
}
