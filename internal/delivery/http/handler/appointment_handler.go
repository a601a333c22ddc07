package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-scheduling/internal/converter"
	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/usecase"
	"clinic-scheduling/pkg/natid"
	"clinic-scheduling/pkg/response"
	"clinic-scheduling/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	scheduler usecase.SchedulerUsecase
	validator *validator.CustomValidator
}

func NewAppointmentHandler(scheduler usecase.SchedulerUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		scheduler: scheduler,
		validator: validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	// The registry key is the formatted national ID; formatting happens at
	// the shell boundary, never inside the scheduler.
	req.PatientKey = natid.Format(req.PatientKey)

	appointment, err := h.scheduler.CreateAppointment(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create appointment")
		return
	}

	listing := h.scheduler.ListAppointments(r.Context())
	response.Success(w, http.StatusCreated, "Appointment created successfully",
		converter.AppointmentToResponse(len(listing)-1, appointment))
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments := h.scheduler.ListAppointments(r.Context())
	if len(appointments) == 0 {
		response.Success(w, http.StatusOK, "No appointments scheduled", &dto.AppointmentListResponse{
			Appointments: []dto.AppointmentResponse{},
			Total:        0,
		})
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	})
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.scheduler.UpdateAppointment(r.Context(), index, &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully",
		converter.AppointmentToResponse(index, appointment))
}

func (h *AppointmentHandler) RemoveAppointment(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	if _, err := h.scheduler.RemoveAppointment(r.Context(), index); err != nil {
		writeUsecaseError(w, err, "Failed to remove appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment removed successfully", nil)
}

func (h *AppointmentHandler) PatientAppointments(w http.ResponseWriter, r *http.Request) {
	idKey := natid.Format(mux.Vars(r)["idKey"])
	visits := h.scheduler.AppointmentsForPatient(r.Context(), idKey)

	response.Success(w, http.StatusOK, "Patient visit history retrieved successfully", &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(visits),
		Total:        len(visits),
	})
}

func (h *AppointmentHandler) DoctorAppointments(w http.ResponseWriter, r *http.Request) {
	visits := h.scheduler.AppointmentsForDoctor(r.Context(), mux.Vars(r)["license"])

	response.Success(w, http.StatusOK, "Doctor visit history retrieved successfully", &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(visits),
		Total:        len(visits),
	})
}

func parseIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment index", nil)
		return 0, false
	}
	return index, true
}
