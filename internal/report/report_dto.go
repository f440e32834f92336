package report

import "time"

type SemiAnnualRequest struct {
	StartYear  int `json:"startYear" binding:"required"`
	StartMonth int `json:"startMonth" binding:"required,min=1,max=12"`
}

type ReportResponse struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Status     string    `json:"status"`
	StartYear  int       `json:"startYear"`
	StartMonth int       `json:"startMonth"`
	Count      int       `json:"count"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ToResponse(r Report) ReportResponse {
	return ReportResponse{
		ID:         r.ID,
		Kind:       r.Kind,
		Status:     r.Status,
		StartYear:  r.StartYear,
		StartMonth: r.StartMonth,
		Count:      r.Count,
		CreatedAt:  r.CreatedAt,
	}
}
