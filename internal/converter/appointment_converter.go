package converter

import (
	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO.
// The index is the ordinal position in the schedule listing.
func AppointmentToResponse(index int, appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		Index:           index,
		ID:              appointment.ID,
		Date:            appointment.Date.Format(entity.DateLayout),
		Time:            appointment.Time,
		DurationMinutes: appointment.DurationMinutes,
		Status:          string(appointment.Status),
		Charge:          appointment.Charge.StringFixed(2),
	}
	if appointment.Patient != nil {
		response.PatientName = appointment.Patient.Identity.Name
		response.PatientKey = appointment.Patient.Identity.IDKey
	}
	if appointment.Doctor != nil {
		response.DoctorName = appointment.Doctor.Identity.Name
		response.DoctorLicense = appointment.Doctor.License
	}
	for i, exam := range appointment.Exams {
		response.Exams = append(response.Exams, *ExamToResponse(i, exam))
	}
	for i, medication := range appointment.Medications {
		response.Medications = append(response.Medications, *MedicationToResponse(i, medication))
	}
	return response
}

// AppointmentsToResponses converts the schedule listing, preserving creation
// order and assigning ordinal indexes.
func AppointmentsToResponses(appointments []*entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(i, appointment)
	}
	return responses
}
