package handler

import (
	"errors"
	"net/http"

	"clinic-scheduling/internal/usecase"
	"clinic-scheduling/pkg/response"
)

// writeUsecaseError maps the core's typed errors onto HTTP statuses. The
// pending-payment gate is surfaced verbatim as its own condition, never
// folded into a generic validation failure.
func writeUsecaseError(w http.ResponseWriter, err error, fallback string) {
	var (
		validationErr *usecase.ValidationError
		conflictErr   *usecase.ConflictError
		notFoundErr   *usecase.NotFoundError
	)
	switch {
	case errors.Is(err, usecase.ErrPendingPayment):
		response.UnprocessableEntity(w, err.Error())
	case errors.Is(err, usecase.ErrNoVisitsToSettle), errors.Is(err, usecase.ErrNothingOutstanding):
		response.UnprocessableEntity(w, err.Error())
	case errors.As(err, &validationErr):
		response.Error(w, http.StatusBadRequest, validationErr.Error(), nil)
	case errors.As(err, &conflictErr):
		response.Conflict(w, conflictErr.Error())
	case errors.As(err, &notFoundErr):
		response.NotFound(w, notFoundErr.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
