package events

import "time"

const SemiAnnualReportRequestedTopic = "payslip.report.requested.v1"

type SemiAnnualReportRequestedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	ReportID   string    `json:"report_id"`
	OwnerID    string    `json:"owner_id"`
	StartYear  int       `json:"start_year"`
	StartMonth int       `json:"start_month"`
	Count      int       `json:"count"`
	OccurredAt time.Time `json:"occurred_at"`
}
