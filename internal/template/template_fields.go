package template

import "go-payslip/internal/payslip"

type FieldName string

const (
	FieldBasicSalary         FieldName = "basicSalary"
	FieldTaxFreeCommute      FieldName = "taxFreeCommute"
	FieldOtherAllowance      FieldName = "otherAllowance"
	FieldResidentTax         FieldName = "residentTax"
	FieldHealthInsurance     FieldName = "healthInsurance"
	FieldPensionInsurance    FieldName = "pensionInsurance"
	FieldEmploymentInsurance FieldName = "employmentInsurance"
)

// Field describes one payslip amount a template may preset.
type Field struct {
	Name      FieldName `json:"name"`
	Label     string    `json:"label"`
	LabelJA   string    `json:"labelJa"`
	InputID   string    `json:"inputId"`
	IncludeID string    `json:"includeId"`
	Earning   bool      `json:"earning"`

	get func(p payslip.Payslip) int64
	set func(p *payslip.Payslip, v int64)
}

// Fields is the fixed set of template fields, in display order.
var Fields = []Field{
	{
		Name: FieldBasicSalary, Label: "Basic salary", LabelJA: "基本給",
		InputID: "template-basic-salary", IncludeID: "include-basic-salary", Earning: true,
		get: func(p payslip.Payslip) int64 { return p.BasicSalary },
		set: func(p *payslip.Payslip, v int64) { p.BasicSalary = v },
	},
	{
		Name: FieldTaxFreeCommute, Label: "Commuting allowance (tax free)", LabelJA: "非課税通勤費",
		InputID: "template-tax-free-commute", IncludeID: "include-tax-free-commute", Earning: true,
		get: func(p payslip.Payslip) int64 { return p.TaxFreeCommute },
		set: func(p *payslip.Payslip, v int64) { p.TaxFreeCommute = v },
	},
	{
		Name: FieldOtherAllowance, Label: "Other allowance", LabelJA: "その他手当",
		InputID: "template-other-allowance", IncludeID: "include-other-allowance", Earning: true,
		get: func(p payslip.Payslip) int64 { return p.OtherAllowance },
		set: func(p *payslip.Payslip, v int64) { p.OtherAllowance = v },
	},
	{
		Name: FieldResidentTax, Label: "Resident tax", LabelJA: "住民税",
		InputID: "template-resident-tax", IncludeID: "include-resident-tax",
		get: func(p payslip.Payslip) int64 { return p.ResidentTax },
		set: func(p *payslip.Payslip, v int64) { p.ResidentTax = v },
	},
	{
		Name: FieldHealthInsurance, Label: "Health insurance", LabelJA: "健康保険",
		InputID: "template-health-insurance", IncludeID: "include-health-insurance",
		get: func(p payslip.Payslip) int64 { return p.HealthInsurance },
		set: func(p *payslip.Payslip, v int64) { p.HealthInsurance = v },
	},
	{
		Name: FieldPensionInsurance, Label: "Pension insurance", LabelJA: "厚生年金",
		InputID: "template-pension-insurance", IncludeID: "include-pension-insurance",
		get: func(p payslip.Payslip) int64 { return p.PensionInsurance },
		set: func(p *payslip.Payslip, v int64) { p.PensionInsurance = v },
	},
	{
		Name: FieldEmploymentInsurance, Label: "Employment insurance", LabelJA: "雇用保険",
		InputID: "template-employment-insurance", IncludeID: "include-employment-insurance",
		get: func(p payslip.Payslip) int64 { return p.EmploymentInsurance },
		set: func(p *payslip.Payslip, v int64) { p.EmploymentInsurance = v },
	},
}

func LookupField(name string) (Field, bool) {
	for _, f := range Fields {
		if string(f.Name) == name {
			return f, true
		}
	}
	return Field{}, false
}

func (f Field) Get(p payslip.Payslip) int64 {
	return f.get(p)
}

func (f Field) Set(p *payslip.Payslip, v int64) {
	f.set(p, v)
}
