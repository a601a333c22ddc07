package dto

import "github.com/shopspring/decimal"

// Request DTOs

// SettlePaymentRequest tenders an amount against the patient's outstanding
// total; the amount must match it exactly.
type SettlePaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// Response DTOs

type PaymentResponse struct {
	Amount string `json:"amount"`
	Paid   bool   `json:"paid"`
}

type OutstandingResponse struct {
	PatientKey  string `json:"patient_key"`
	Outstanding string `json:"outstanding"`
}

type SettlementResponse struct {
	PatientKey string `json:"patient_key"`
	AmountPaid string `json:"amount_paid"`
}
