package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateExamRequest struct {
	Type             string          `json:"type" validate:"required"`
	PrescriptionDate string          `json:"prescription_date" validate:"required"` // Format: DD-MM-YYYY
	PerformedDate    string          `json:"performed_date" validate:"required"`    // Format: DD-MM-YYYY
	Result           string          `json:"result" validate:"required"`
	Cost             decimal.Decimal `json:"cost"`
}

type UpdateExamRequest struct {
	Type             string           `json:"type" validate:"omitempty"`
	PrescriptionDate string           `json:"prescription_date" validate:"omitempty"`
	PerformedDate    string           `json:"performed_date" validate:"omitempty"`
	Result           string           `json:"result" validate:"omitempty"`
	Cost             *decimal.Decimal `json:"cost" validate:"omitempty"`
}

// Response DTOs

type ExamResponse struct {
	Index            int       `json:"index"`
	ID               uuid.UUID `json:"id"`
	Type             string    `json:"type"`
	PrescriptionDate string    `json:"prescription_date"`
	PerformedDate    string    `json:"performed_date"`
	Result           string    `json:"result"`
	Cost             string    `json:"cost"`
}

type ExamListResponse struct {
	Exams []ExamResponse `json:"exams"`
	Total int            `json:"total"`
}
