package template_test

import (
	"testing"
	"time"

	"go-payslip/internal/payslip"
	"go-payslip/internal/template"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2025, time.April, 20, 8, 30, 0, 0, time.UTC)

func TestApply(t *testing.T) {
	tpl := template.New(
		"Standard",
		"Acme KK",
		map[string]bool{"basicSalary": true, "residentTax": false},
		map[string]int64{"basicSalary": 300000, "residentTax": 5000},
		2,
	)

	draft := template.Apply(tpl, fixedNow)

	t.Run("included field takes its default", func(t *testing.T) {
		assert.Equal(t, int64(300000), draft.BasicSalary)
	})

	t.Run("excluded field keeps the zero default", func(t *testing.T) {
		assert.Zero(t, draft.ResidentTax)
	})

	t.Run("company and format come from the template", func(t *testing.T) {
		assert.Equal(t, "Acme KK", draft.CompanyName)
		assert.Equal(t, 2, draft.SelectedFormat)
	})

	t.Run("period is the current month", func(t *testing.T) {
		assert.Empty(t, draft.ID)
		assert.Equal(t, 2025, draft.IssueYear)
		assert.Equal(t, 4, draft.IssueMonth)
		assert.Equal(t, 1, *draft.WorkStartDay)
		assert.Equal(t, 30, *draft.WorkEndDay)
	})

	t.Run("totals reflect the defaults", func(t *testing.T) {
		assert.Equal(t, int64(300000), draft.NetPay)
	})
}

func TestApply_FormatFallsBackToDefault(t *testing.T) {
	tpl := template.New("x", "", map[string]bool{"basicSalary": true}, nil, 0)

	draft := template.Apply(tpl, fixedNow)

	assert.Equal(t, payslip.DefaultFormat, draft.SelectedFormat)
}

func TestDuplicate(t *testing.T) {
	src := template.New("Part time", "Acme KK", map[string]bool{"healthInsurance": true}, map[string]int64{"healthInsurance": 9000}, 1)
	src.ID = "1700000000000-aaaaaaaaaaaa"
	src.CreatedAt = fixedNow

	dup := template.Duplicate(src)

	assert.Empty(t, dup.ID)
	assert.True(t, dup.CreatedAt.IsZero())
	assert.Equal(t, "Part time (copy)", dup.Name)
	assert.True(t, dup.Includes(template.FieldHealthInsurance))
	assert.Equal(t, int64(9000), dup.DefaultValue(template.FieldHealthInsurance))
}

func TestFromPayslip(t *testing.T) {
	tpl := template.FromPayslip(payslip.Payslip{
		CompanyName:    "Acme KK",
		BasicSalary:    280000,
		TaxFreeCommute: 12000,
		OvertimePay:    5000,
		IncomeTax:      6000,
		SelectedFormat: 2,
	})

	assert.Empty(t, tpl.Name)
	assert.Equal(t, "Acme KK", tpl.CompanyName)
	assert.Equal(t, 2, tpl.SelectedFormat)
	assert.Equal(t, []template.FieldName{template.FieldBasicSalary, template.FieldTaxFreeCommute}, tpl.IncludedFieldNames())
	assert.Equal(t, int64(12000), tpl.DefaultValue(template.FieldTaxFreeCommute))
}

func TestLookupField(t *testing.T) {
	f, ok := template.LookupField("pensionInsurance")
	assert.True(t, ok)
	assert.Equal(t, "template-pension-insurance", f.InputID)
	assert.Equal(t, "include-pension-insurance", f.IncludeID)

	p := payslip.Payslip{}
	f.Set(&p, 27450)
	assert.Equal(t, int64(27450), p.PensionInsurance)
	assert.Equal(t, int64(27450), f.Get(p))

	_, ok = template.LookupField("overtimePay")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		tpl     template.Template
		wantErr bool
	}{
		{"valid", template.New("Standard", "", map[string]bool{"basicSalary": true}, nil, 1), false},
		{"blank name", template.New("   ", "", map[string]bool{"basicSalary": true}, nil, 1), true},
		{"all fields false", template.New("Standard", "", map[string]bool{"basicSalary": false, "residentTax": false}, nil, 1), true},
		{"no fields", template.New("Standard", "", nil, nil, 1), true},
		{"unknown field", template.New("Standard", "", map[string]bool{"netPay": true}, nil, 1), true},
		{"negative default", template.New("Standard", "", map[string]bool{"basicSalary": true}, map[string]int64{"basicSalary": -1}, 1), true},
		{"default above limit", template.New("Standard", "", map[string]bool{"basicSalary": true}, map[string]int64{"basicSalary": payslip.MaxAmount + 1}, 1), true},
		{"default at limit", template.New("Standard", "", map[string]bool{"basicSalary": true}, map[string]int64{"basicSalary": payslip.MaxAmount}, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := template.Validate(tt.tpl)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
