package report

import (
	"path/filepath"
	"time"

	"go-payslip/internal/period"
)

const (
	StatusPending = "pending"
	StatusReady   = "ready"
	StatusFailed  = "failed"
)

const KindSemiAnnual = "semi_annual"

// SemiAnnualMonths is the window length of a semi-annual report.
const SemiAnnualMonths = 6

type Report struct {
	ID           string
	OwnerID      string
	Kind         string
	StartYear    int
	StartMonth   int
	Count        int
	Status       string
	FilePath     string
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r Report) Start() period.YearMonth {
	return period.New(r.StartYear, r.StartMonth)
}

// OutputPath is where the rendered report for id is written.
func OutputPath(dir, id string) string {
	return filepath.Join(dir, id+".pdf")
}
