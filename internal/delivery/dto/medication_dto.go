package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateMedicationRequest struct {
	Name         string          `json:"name" validate:"required"`
	Dosage       string          `json:"dosage" validate:"required"`
	Instructions string          `json:"instructions" validate:"required"`
	Price        decimal.Decimal `json:"price"`
}

type UpdateMedicationRequest struct {
	Name         string           `json:"name" validate:"omitempty"`
	Dosage       string           `json:"dosage" validate:"omitempty"`
	Instructions string           `json:"instructions" validate:"omitempty"`
	Price        *decimal.Decimal `json:"price" validate:"omitempty"`
}

// Response DTOs

type MedicationResponse struct {
	Index        int       `json:"index"`
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage"`
	Instructions string    `json:"instructions"`
	Price        string    `json:"price"`
}

type MedicationListResponse struct {
	Medications []MedicationResponse `json:"medications"`
	Total       int                  `json:"total"`
}
