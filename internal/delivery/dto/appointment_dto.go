package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentRequest struct {
	Date            string          `json:"date" validate:"required"` // Format: DD-MM-YYYY
	Time            string          `json:"time" validate:"required"` // Format: HH:MM
	DurationMinutes int             `json:"duration_minutes" validate:"required,min=1"`
	Status          string          `json:"status" validate:"required"`
	PatientKey      string          `json:"patient_key" validate:"required"`
	DoctorLicense   string          `json:"doctor_license" validate:"required"`
	ExamTypes       []string        `json:"exam_types" validate:"omitempty,dive,required"`
	Medications     []string        `json:"medications" validate:"omitempty,dive,required"`
	Charge          decimal.Decimal `json:"charge"`
}

// Blank fields keep the current value; cross-entity rules are not re-checked
// on update.
type UpdateAppointmentRequest struct {
	Date            string           `json:"date" validate:"omitempty"`
	Time            string           `json:"time" validate:"omitempty"`
	DurationMinutes *int             `json:"duration_minutes" validate:"omitempty,min=1"`
	Status          string           `json:"status" validate:"omitempty"`
	Charge          *decimal.Decimal `json:"charge" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	Index           int                  `json:"index"`
	ID              uuid.UUID            `json:"id"`
	Date            string               `json:"date"`
	Time            string               `json:"time"`
	DurationMinutes int                  `json:"duration_minutes"`
	Status          string               `json:"status"`
	PatientName     string               `json:"patient_name"`
	PatientKey      string               `json:"patient_key"`
	DoctorName      string               `json:"doctor_name"`
	DoctorLicense   string               `json:"doctor_license"`
	Exams           []ExamResponse       `json:"exams,omitempty"`
	Medications     []MedicationResponse `json:"medications,omitempty"`
	Charge          string               `json:"charge"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
