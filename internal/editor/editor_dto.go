package editor

import "go-payslip/internal/payslip"

type SwitchViewRequest struct {
	View View `json:"view" binding:"required"`
}

type CopyForwardRequest struct {
	SourceID string `json:"sourceId"`
}

type SaveResponse struct {
	Session Session               `json:"session"`
	Payslip payslip.PayslipRecord `json:"payslip"`
}
