package report

import (
	"bytes"
	"fmt"

	"go-payslip/internal/payslip"
	"go-payslip/internal/period"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	FormatStandard = 1
	FormatCompact  = 2
)

type amountRow struct {
	label string
	get   func(p payslip.Payslip) int64
}

var earningRows = []amountRow{
	{"Basic salary", func(p payslip.Payslip) int64 { return p.BasicSalary }},
	{"Commuting allowance (tax free)", func(p payslip.Payslip) int64 { return p.TaxFreeCommute }},
	{"Overtime pay", func(p payslip.Payslip) int64 { return p.OvertimePay }},
	{"Other allowance", func(p payslip.Payslip) int64 { return p.OtherAllowance }},
}

var deductionRows = []amountRow{
	{"Income tax", func(p payslip.Payslip) int64 { return p.IncomeTax }},
	{"Resident tax", func(p payslip.Payslip) int64 { return p.ResidentTax }},
	{"Health insurance", func(p payslip.Payslip) int64 { return p.HealthInsurance }},
	{"Pension insurance", func(p payslip.Payslip) int64 { return p.PensionInsurance }},
	{"Employment insurance", func(p payslip.Payslip) int64 { return p.EmploymentInsurance }},
	{"Other deduction", func(p payslip.Payslip) int64 { return p.OtherDeduction }},
}

var totalRows = []amountRow{
	{"Total earnings", func(p payslip.Payslip) int64 { return p.TotalEarnings }},
	{"Total deductions", func(p payslip.Payslip) int64 { return p.TotalDeductions }},
	{"Net pay", func(p payslip.Payslip) int64 { return p.NetPay }},
}

// Renderer lays out payslips as A4 PDFs using the core Helvetica font.
// Text outside cp1252 is not representable and is dropped by the translator.
type Renderer struct {
	printer *message.Printer
}

func NewRenderer() *Renderer {
	return &Renderer{printer: message.NewPrinter(language.English)}
}

func (r *Renderer) yen(v int64) string {
	return r.printer.Sprintf("%d", v)
}

// Payslip renders one statement in the layout named by its selected format.
// Unknown formats fall back to the standard layout.
func (r *Renderer) Payslip(p payslip.Payslip) ([]byte, error) {
	pdf := newDocument("P", fmt.Sprintf("Payslip %s", period.New(p.IssueYear, p.IssueMonth)))
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	switch p.SelectedFormat {
	case FormatCompact:
		r.compact(pdf, tr, p)
	default:
		r.standard(pdf, tr, p)
	}
	return output(pdf)
}

func (r *Renderer) standard(pdf *gofpdf.Fpdf, tr func(string) string, p payslip.Payslip) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Payslip", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, period.New(p.IssueYear, p.IssueMonth).String(), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.CellFormat(95, 7, tr("Company: "+p.CompanyName), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, tr("Employee: "+p.EmployeeName), "", 1, "R", false, 0, "")
	if p.HasWorkPeriod() {
		pdf.CellFormat(0, 7, fmt.Sprintf("Work period: %04d-%02d-%02d to %04d-%02d-%02d",
			*p.WorkStartYear, *p.WorkStartMonth, *p.WorkStartDay,
			*p.WorkEndYear, *p.WorkEndMonth, *p.WorkEndDay), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 7, fmt.Sprintf("Working days: %g   Working hours: %g   Overtime hours: %g",
		p.WorkingDays, p.WorkingHours, p.OvertimeHours), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	r.section(pdf, "Earnings", earningRows, p)
	pdf.Ln(3)
	r.section(pdf, "Deductions", deductionRows, p)
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 11)
	for _, row := range totalRows[:2] {
		pdf.CellFormat(120, 8, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 8, r.yen(row.get(p)), "1", 1, "R", false, 0, "")
	}
	pdf.SetFillColor(230, 230, 230)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(120, 10, "Net pay", "1", 0, "L", true, 0, "")
	pdf.CellFormat(70, 10, r.yen(p.NetPay)+" JPY", "1", 1, "R", true, 0, "")
}

func (r *Renderer) section(pdf *gofpdf.Fpdf, title string, rows []amountRow, p payslip.Payslip) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, title, "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(120, 7, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 7, r.yen(row.get(p)), "1", 1, "R", false, 0, "")
	}
}

func (r *Renderer) compact(pdf *gofpdf.Fpdf, tr func(string) string, p payslip.Payslip) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Payslip %s  %s  %s",
		period.New(p.IssueYear, p.IssueMonth), p.CompanyName, p.EmployeeName)), "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 9)
	rows := append(append([]amountRow{}, earningRows...), deductionRows...)
	for i, row := range rows {
		ln := 0
		if i%2 == 1 {
			ln = 1
		}
		pdf.CellFormat(60, 6, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, r.yen(row.get(p)), "", ln, "R", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 10)
	for _, row := range totalRows {
		pdf.CellFormat(60, 7, row.label, "T", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, r.yen(row.get(p)), "T", 1, "R", false, 0, "")
	}
}

// SemiAnnual renders a month-by-month table for the window starting at start.
// Months without a payslip show a dash.
func (r *Renderer) SemiAnnual(start period.YearMonth, count int, payslips []payslip.Payslip) ([]byte, error) {
	window := period.Window(start, count)
	if len(window) == 0 {
		return nil, fmt.Errorf("report window must cover at least one month, got %d", count)
	}
	pdf := newDocument("L", fmt.Sprintf("Payslips %s to %s", window[0], window[len(window)-1]))
	pdf.AddPage()

	byMonth := make(map[period.YearMonth]payslip.Payslip, len(payslips))
	for _, p := range payslips {
		byMonth[period.New(p.IssueYear, p.IssueMonth)] = p
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Payslip summary %s to %s", window[0], window[len(window)-1]), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	labelWidth := 62.0
	colWidth := (277 - labelWidth) / float64(len(window)+1)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(labelWidth, 7, "", "1", 0, "L", true, 0, "")
	for _, ym := range window {
		pdf.CellFormat(colWidth, 7, ym.String(), "1", 0, "C", true, 0, "")
	}
	pdf.CellFormat(colWidth, 7, "Total", "1", 1, "C", true, 0, "")

	all := append(append(append([]amountRow{}, earningRows...), deductionRows...), totalRows...)
	for i, row := range all {
		style := ""
		if i >= len(earningRows)+len(deductionRows) {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 8)
		pdf.CellFormat(labelWidth, 6, row.label, "1", 0, "L", false, 0, "")

		var sum int64
		for _, ym := range window {
			p, ok := byMonth[ym]
			if !ok {
				pdf.CellFormat(colWidth, 6, "-", "1", 0, "C", false, 0, "")
				continue
			}
			v := row.get(p)
			sum += v
			pdf.CellFormat(colWidth, 6, r.yen(v), "1", 0, "R", false, 0, "")
		}
		pdf.CellFormat(colWidth, 6, r.yen(sum), "1", 1, "R", false, 0, "")
	}
	return output(pdf)
}

func newDocument(orientation, title string) *gofpdf.Fpdf {
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetCreator("go-payslip", false)
	pdf.SetMargins(10, 12, 10)
	return pdf
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
