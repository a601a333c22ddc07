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

type ExamHandler struct {
	examUsecase usecase.ExamUsecase
	validator   *validator.CustomValidator
}

func NewExamHandler(examUsecase usecase.ExamUsecase, validator *validator.CustomValidator) *ExamHandler {
	return &ExamHandler{
		examUsecase: examUsecase,
		validator:   validator,
	}
}

func (h *ExamHandler) CreateExam(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateExamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	exam, err := h.examUsecase.Create(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create exam")
		return
	}

	listing := h.examUsecase.List(r.Context())
	response.Success(w, http.StatusCreated, "Exam created successfully",
		converter.ExamToResponse(len(listing)-1, exam))
}

func (h *ExamHandler) GetAllExams(w http.ResponseWriter, r *http.Request) {
	exams := h.examUsecase.List(r.Context())
	response.Success(w, http.StatusOK, "Exams retrieved successfully", &dto.ExamListResponse{
		Exams: converter.ExamsToResponses(exams),
		Total: len(exams),
	})
}

func (h *ExamHandler) UpdateExam(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	var req dto.UpdateExamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	exam, err := h.examUsecase.Update(r.Context(), index, &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update exam")
		return
	}

	response.Success(w, http.StatusOK, "Exam updated successfully", converter.ExamToResponse(index, exam))
}

func (h *ExamHandler) DeleteExam(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	if err := h.examUsecase.Remove(r.Context(), index); err != nil {
		writeUsecaseError(w, err, "Failed to delete exam")
		return
	}

	response.Success(w, http.StatusOK, "Exam deleted successfully", nil)
}
