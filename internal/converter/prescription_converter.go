package converter

import (
	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/domain/entity"
)

// ExamToResponse converts an Exam entity to ExamResponse DTO
func ExamToResponse(index int, exam *entity.Exam) *dto.ExamResponse {
	if exam == nil {
		return nil
	}
	return &dto.ExamResponse{
		Index:            index,
		ID:               exam.ID,
		Type:             string(exam.Type),
		PrescriptionDate: exam.PrescriptionDate.Format(entity.DateLayout),
		PerformedDate:    exam.PerformedDate.Format(entity.DateLayout),
		Result:           exam.Result,
		Cost:             exam.Cost.StringFixed(2),
	}
}

// ExamsToResponses converts a slice of Exam entities
func ExamsToResponses(exams []*entity.Exam) []dto.ExamResponse {
	responses := make([]dto.ExamResponse, len(exams))
	for i, exam := range exams {
		responses[i] = *ExamToResponse(i, exam)
	}
	return responses
}

// MedicationToResponse converts a Medication entity to MedicationResponse DTO
func MedicationToResponse(index int, medication *entity.Medication) *dto.MedicationResponse {
	if medication == nil {
		return nil
	}
	return &dto.MedicationResponse{
		Index:        index,
		ID:           medication.ID,
		Name:         medication.Name,
		Dosage:       medication.Dosage,
		Instructions: medication.Instructions,
		Price:        medication.Price.StringFixed(2),
	}
}

// MedicationsToResponses converts a slice of Medication entities
func MedicationsToResponses(medications []*entity.Medication) []dto.MedicationResponse {
	responses := make([]dto.MedicationResponse, len(medications))
	for i, medication := range medications {
		responses[i] = *MedicationToResponse(i, medication)
	}
	return responses
}
