package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Medication is a catalog entry looked up by exact name.
type Medication struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Dosage       string          `json:"dosage"`
	Instructions string          `json:"instructions"`
	Price        decimal.Decimal `json:"price"`
}
