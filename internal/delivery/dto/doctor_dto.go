package dto

import "github.com/google/uuid"

// Request DTOs

type RegisterDoctorRequest struct {
	Name       string `json:"name" validate:"required"`
	NationalID string `json:"national_id" validate:"required"`
	BirthDate  string `json:"birth_date" validate:"required"` // Format: DD-MM-YYYY
	License    string `json:"license" validate:"required"`
	Specialty  string `json:"specialty" validate:"required"`
}

type UpdateDoctorRequest struct {
	Name       string `json:"name" validate:"omitempty"`
	NationalID string `json:"national_id" validate:"omitempty"`
	BirthDate  string `json:"birth_date" validate:"omitempty"`
	License    string `json:"license" validate:"omitempty"`
	Specialty  string `json:"specialty" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IDKey     string    `json:"id_key"`
	BirthDate string    `json:"birth_date"`
	License   string    `json:"license"`
	Specialty string    `json:"specialty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
