package report_test

import (
	"bytes"
	"testing"

	"go-payslip/internal/payslip"
	"go-payslip/internal/period"
	"go-payslip/internal/report"

	"github.com/stretchr/testify/assert"
)

func samplePayslip(year, month, format int) payslip.Payslip {
	p := payslip.NewDraftFor(period.New(year, month))
	p.ID = "ps-" + period.New(year, month).String()
	p.EmployeeName = "Taro Yamada"
	p.CompanyName = "Acme K.K."
	p.BasicSalary = 300000
	p.TaxFreeCommute = 12000
	p.IncomeTax = 8000
	p.HealthInsurance = 15000
	p.SelectedFormat = format
	p.Recalculate()
	return p
}

func TestRenderer_Payslip(t *testing.T) {
	r := report.NewRenderer()

	standard, err := r.Payslip(samplePayslip(2025, 3, report.FormatStandard))
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(standard, []byte("%PDF-")))

	compact, err := r.Payslip(samplePayslip(2025, 3, report.FormatCompact))
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(compact, []byte("%PDF-")))
	assert.NotEqual(t, len(standard), len(compact))
}

func TestRenderer_Payslip_UnknownFormatUsesStandard(t *testing.T) {
	r := report.NewRenderer()

	doc, err := r.Payslip(samplePayslip(2025, 3, 99))
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
}

func TestRenderer_Payslip_WithWorkPeriodAndNonLatinNames(t *testing.T) {
	r := report.NewRenderer()
	p := samplePayslip(2025, 3, report.FormatStandard)
	y, sm, sd, em, ed := 2025, 2, 1, 2, 28
	p.WorkStartYear, p.WorkStartMonth, p.WorkStartDay = &y, &sm, &sd
	p.WorkEndYear, p.WorkEndMonth, p.WorkEndDay = &y, &em, &ed
	p.EmployeeName = "山田 太郎"

	doc, err := r.Payslip(p)
	assert.NoError(t, err)
	assert.NotEmpty(t, doc)
}

func TestRenderer_SemiAnnual(t *testing.T) {
	r := report.NewRenderer()
	payslips := []payslip.Payslip{
		samplePayslip(2024, 11, 1),
		samplePayslip(2025, 1, 1),
	}

	doc, err := r.SemiAnnual(period.New(2024, 10), 6, payslips)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))

	_, err = r.SemiAnnual(period.New(2024, 10), 0, payslips)
	assert.Error(t, err)
}
