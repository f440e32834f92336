package template

import (
	"time"

	"go-payslip/internal/payslip"
)

const copySuffix = " (copy)"

// Apply builds a fresh payslip draft for the month containing now. Only included
// fields take the template's default; everything else keeps the empty draft value.
func Apply(t Template, now time.Time) payslip.Payslip {
	draft := payslip.NewDraft(now)
	draft.CompanyName = t.CompanyName
	if t.SelectedFormat > 0 {
		draft.SelectedFormat = t.SelectedFormat
	}

	for _, f := range Fields {
		if t.Includes(f.Name) {
			f.Set(&draft, t.DefaultValue(f.Name))
		}
	}
	draft.Recalculate()
	return draft
}

// Duplicate returns an unsaved copy of t with a suffixed name.
func Duplicate(t Template) Template {
	included := make(map[string]bool, len(t.IncludedFields.Data()))
	for k, v := range t.IncludedFields.Data() {
		included[k] = v
	}
	defaults := make(map[string]int64, len(t.DefaultValues.Data()))
	for k, v := range t.DefaultValues.Data() {
		defaults[k] = v
	}
	return New(t.Name+copySuffix, t.CompanyName, included, defaults, t.SelectedFormat)
}

// FromPayslip presets every template field that carries a non-zero amount in p.
// The result has no name and is not saved.
func FromPayslip(p payslip.Payslip) Template {
	included := make(map[string]bool, len(Fields))
	defaults := make(map[string]int64, len(Fields))
	for _, f := range Fields {
		v := f.Get(p)
		included[string(f.Name)] = v != 0
		if v != 0 {
			defaults[string(f.Name)] = v
		}
	}

	format := p.SelectedFormat
	if format < 1 {
		format = payslip.DefaultFormat
	}
	return New("", p.CompanyName, included, defaults, format)
}
