package backup

import (
	"encoding/json"
	"time"

	"go-payslip/internal/payslip"
	"go-payslip/internal/template"
)

const FormatVersion = 1

// Payload is the export file: every payslip and template of one owner.
type Payload struct {
	Version    int                       `json:"version"`
	ExportedAt time.Time                 `json:"exportedAt"`
	Payslips   []payslip.PayslipRecord   `json:"payslips"`
	Templates  []template.TemplateRecord `json:"templates"`
}

// ImportPayload accepts the export file. Missing or null arrays stay nil so they
// can be told apart from empty ones.
type ImportPayload struct {
	Version    json.Number                `json:"version"`
	ExportedAt string                     `json:"exportedAt"`
	Payslips   *[]payslip.PayslipRecord   `json:"payslips"`
	Templates  *[]template.TemplateRecord `json:"templates"`
}

type ImportResult struct {
	PayslipsCount  int `json:"payslipsCount"`
	TemplatesCount int `json:"templatesCount"`
}

// PartialImportDetails is returned alongside an IMPORT_PARTIAL error.
type PartialImportDetails struct {
	ImportResult
	Cause string `json:"cause"`
}
