package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExamType represents the kind of exam the clinic can prescribe
type ExamType string

const (
	ExamBlood      ExamType = "SANGUE"
	ExamXRay       ExamType = "RAIO_X"
	ExamUltrasound ExamType = "ULTRASSOM"
)

// IsValid reports whether the type is one of the three enumerated tokens.
func (t ExamType) IsValid() bool {
	switch t {
	case ExamBlood, ExamXRay, ExamUltrasound:
		return true
	}
	return false
}

// Exam is a catalog entry. PerformedDate must not precede PrescriptionDate
// and neither date may be in the future at creation time.
type Exam struct {
	ID               uuid.UUID       `json:"id"`
	Type             ExamType        `json:"type"`
	PrescriptionDate time.Time       `json:"prescription_date"`
	PerformedDate    time.Time       `json:"performed_date"`
	Result           string          `json:"result"`
	Cost             decimal.Decimal `json:"cost"`
}
