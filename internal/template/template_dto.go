package template

import (
	"time"

	"go-payslip/internal/shared/numeric"
)

// TemplateRecord is the wire shape of a template, shared by the API and the export file.
type TemplateRecord struct {
	ID             string                 `json:"id,omitempty"`
	Name           string                 `json:"name"`
	CompanyName    string                 `json:"companyName"`
	IncludedFields map[string]bool        `json:"includedFields"`
	DefaultValues  map[string]numeric.Int `json:"defaultValues"`
	SelectedFormat numeric.Int            `json:"selectedFormat"`
	CreatedAt      *time.Time             `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time             `json:"updatedAt,omitempty"`
}

func (r TemplateRecord) ToEntity() Template {
	included := make(map[string]bool, len(r.IncludedFields))
	for k, v := range r.IncludedFields {
		included[k] = v
	}
	defaults := make(map[string]int64, len(r.DefaultValues))
	for k, v := range r.DefaultValues {
		defaults[k] = v.Int64()
	}

	t := New(r.Name, r.CompanyName, included, defaults, int(r.SelectedFormat))
	t.ID = r.ID
	if r.CreatedAt != nil {
		t.CreatedAt = *r.CreatedAt
	}
	if r.UpdatedAt != nil {
		t.UpdatedAt = *r.UpdatedAt
	}
	return t
}

func ToRecord(t Template) TemplateRecord {
	included := make(map[string]bool, len(t.IncludedFields.Data()))
	for k, v := range t.IncludedFields.Data() {
		included[k] = v
	}
	defaults := make(map[string]numeric.Int, len(t.DefaultValues.Data()))
	for k, v := range t.DefaultValues.Data() {
		defaults[k] = numeric.Int(v)
	}

	r := TemplateRecord{
		ID:             t.ID,
		Name:           t.Name,
		CompanyName:    t.CompanyName,
		IncludedFields: included,
		DefaultValues:  defaults,
		SelectedFormat: numeric.Int(t.SelectedFormat),
	}
	if !t.CreatedAt.IsZero() {
		createdAt := t.CreatedAt
		r.CreatedAt = &createdAt
	}
	if !t.UpdatedAt.IsZero() {
		updatedAt := t.UpdatedAt
		r.UpdatedAt = &updatedAt
	}
	return r
}

func ToRecords(templates []Template) []TemplateRecord {
	records := make([]TemplateRecord, len(templates))
	for i, t := range templates {
		records[i] = ToRecord(t)
	}
	return records
}
