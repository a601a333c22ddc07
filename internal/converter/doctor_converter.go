package converter

import (
	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}
	return &dto.DoctorResponse{
		ID:        doctor.ID,
		Name:      doctor.Identity.Name,
		IDKey:     doctor.Identity.IDKey,
		BirthDate: doctor.Identity.BirthDate.Format(entity.DateLayout),
		License:   doctor.License,
		Specialty: doctor.Specialty,
	}
}

// DoctorsToResponses converts a slice of Doctor entities
func DoctorsToResponses(doctors []*entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = *DoctorToResponse(doctor)
	}
	return responses
}
