package handler

import (
	"encoding/json"
	"net/http"

	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/usecase"
	"clinic-scheduling/pkg/natid"
	"clinic-scheduling/pkg/response"
	"clinic-scheduling/pkg/validator"

	"github.com/gorilla/mux"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

func (h *PaymentHandler) GetOutstanding(w http.ResponseWriter, r *http.Request) {
	idKey := mux.Vars(r)["idKey"]

	outstanding, err := h.paymentUsecase.Outstanding(r.Context(), idKey)
	if err != nil {
		writeUsecaseError(w, err, "Failed to compute outstanding balance")
		return
	}

	response.Success(w, http.StatusOK, "Outstanding balance retrieved successfully", &dto.OutstandingResponse{
		PatientKey:  natid.Format(idKey),
		Outstanding: outstanding.StringFixed(2),
	})
}

func (h *PaymentHandler) SettlePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.SettlePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	settled, err := h.paymentUsecase.Settle(r.Context(), mux.Vars(r)["idKey"], &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to settle payment")
		return
	}

	response.Success(w, http.StatusOK, "Payment settled successfully", &dto.SettlementResponse{
		PatientKey: natid.Format(mux.Vars(r)["idKey"]),
		AmountPaid: settled.StringFixed(2),
	})
}
