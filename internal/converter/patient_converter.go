package converter

import (
	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Identity.Name,
		IDKey:     patient.Identity.IDKey,
		BirthDate: patient.Identity.BirthDate.Format(entity.DateLayout),
	}
	for _, payment := range patient.Payments {
		response.Payments = append(response.Payments, dto.PaymentResponse{
			Amount: payment.Amount.StringFixed(2),
			Paid:   payment.Paid,
		})
	}
	return response
}

// PatientsToResponses converts a slice of Patient entities
func PatientsToResponses(patients []*entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		responses[i] = *PatientToResponse(patient)
	}
	return responses
}
