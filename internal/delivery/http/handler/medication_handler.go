package handler

import (
	"encoding/json"
	"net/http"

	"clinic-scheduling/internal/converter"
	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/usecase"
	"clinic-scheduling/pkg/response"
	"clinic-scheduling/pkg/validator"
)

type MedicationHandler struct {
	medicationUsecase usecase.MedicationUsecase
	validator         *validator.CustomValidator
}

func NewMedicationHandler(medicationUsecase usecase.MedicationUsecase, validator *validator.CustomValidator) *MedicationHandler {
	return &MedicationHandler{
		medicationUsecase: medicationUsecase,
		validator:         validator,
	}
}

func (h *MedicationHandler) CreateMedication(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medication, err := h.medicationUsecase.Create(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create medication")
		return
	}

	listing := h.medicationUsecase.List(r.Context())
	response.Success(w, http.StatusCreated, "Medication created successfully",
		converter.MedicationToResponse(len(listing)-1, medication))
}

func (h *MedicationHandler) GetAllMedications(w http.ResponseWriter, r *http.Request) {
	medications := h.medicationUsecase.List(r.Context())
	response.Success(w, http.StatusOK, "Medications retrieved successfully", &dto.MedicationListResponse{
		Medications: converter.MedicationsToResponses(medications),
		Total:       len(medications),
	})
}

func (h *MedicationHandler) UpdateMedication(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	var req dto.UpdateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medication, err := h.medicationUsecase.Update(r.Context(), index, &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update medication")
		return
	}

	response.Success(w, http.StatusOK, "Medication updated successfully", converter.MedicationToResponse(index, medication))
}

func (h *MedicationHandler) DeleteMedication(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	if err := h.medicationUsecase.Remove(r.Context(), index); err != nil {
		writeUsecaseError(w, err, "Failed to delete medication")
		return
	}

	response.Success(w, http.StatusOK, "Medication deleted successfully", nil)
}
