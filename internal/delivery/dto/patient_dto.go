package dto

import "github.com/google/uuid"

// Request DTOs

type RegisterPatientRequest struct {
	Name       string `json:"name" validate:"required"`
	NationalID string `json:"national_id" validate:"required"` // 11 digits, structural check only
	BirthDate  string `json:"birth_date" validate:"required"`  // Format: DD-MM-YYYY
}

type UpdatePatientRequest struct {
	Name       string `json:"name" validate:"omitempty"`
	NationalID string `json:"national_id" validate:"omitempty"`
	BirthDate  string `json:"birth_date" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	IDKey     string            `json:"id_key"`
	BirthDate string            `json:"birth_date"`
	Payments  []PaymentResponse `json:"payments,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
