package usecase

import (
	"context"
	"errors"

	"clinic-scheduling/internal/delivery/dto"
	"clinic-scheduling/internal/domain/entity"
	"clinic-scheduling/internal/domain/repository"
	"clinic-scheduling/pkg/natid"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoVisitsToSettle   = errors.New("patient has no visits to settle")
	ErrNothingOutstanding = errors.New("all appointment charges are already settled")
)

// VisitSource answers a patient's visit history under the lock that
// serializes scheduling. The scheduler implements it; the ledger never keeps
// its own copy of the schedule, and every read or write of a patient's
// payment records happens inside the callback, in the same critical section
// the billing gate uses.
type VisitSource interface {
	WithPatientVisits(ctx context.Context, idKey string, fn func(visits []*entity.Appointment))
}

type PaymentUsecase interface {
	Outstanding(ctx context.Context, rawID string) (decimal.Decimal, error)
	Settle(ctx context.Context, rawID string, req *dto.SettlePaymentRequest) (decimal.Decimal, error)
}

type paymentUsecase struct {
	log      *logrus.Logger
	patients repository.PatientRegistry
	visits   VisitSource
}

func NewPaymentUsecase(log *logrus.Logger, patients repository.PatientRegistry, visits VisitSource) PaymentUsecase {
	return &paymentUsecase{log: log, patients: patients, visits: visits}
}

// Outstanding sums the charges of every visit that has no covering payment.
// A charge is covered when a paid record with exactly the same amount exists;
// there is no stored appointment-to-payment link.
func (u *paymentUsecase) Outstanding(ctx context.Context, rawID string) (decimal.Decimal, error) {
	patient := u.patients.FindByIDKey(natid.Format(rawID))
	if patient == nil {
		return decimal.Zero, notFound("patient")
	}

	total := decimal.Zero
	u.visits.WithPatientVisits(ctx, patient.Identity.IDKey, func(visits []*entity.Appointment) {
		total = outstandingTotal(patient, visits)
	})
	return total, nil
}

// Settle records the payment of everything outstanding. The tendered amount
// must match the outstanding total exactly; on success one paid record is
// appended per uncovered charge.
func (u *paymentUsecase) Settle(ctx context.Context, rawID string, req *dto.SettlePaymentRequest) (decimal.Decimal, error) {
	patient := u.patients.FindByIDKey(natid.Format(rawID))
	if patient == nil {
		return decimal.Zero, notFound("patient")
	}

	var (
		total = decimal.Zero
		err   error
	)
	u.visits.WithPatientVisits(ctx, patient.Identity.IDKey, func(visits []*entity.Appointment) {
		if len(visits) == 0 {
			err = ErrNoVisitsToSettle
			return
		}

		total = outstandingTotal(patient, visits)
		if total.IsZero() {
			err = ErrNothingOutstanding
			return
		}

		if !req.Amount.IsPositive() {
			err = invalidField("amount", "must be greater than zero")
			return
		}
		if !req.Amount.Equal(total) {
			err = invalidField("amount", "must equal the outstanding total of "+total.StringFixed(2))
			return
		}

		for _, visit := range visits {
			if !patient.HasPaidAmount(visit.Charge) {
				patient.AddPayment(entity.Payment{Amount: visit.Charge, Paid: true})
			}
		}
	})
	if err != nil {
		return total, err
	}

	u.log.Infof("Payment settled: patient=%s, amount=%s", patient.Identity.IDKey, total.StringFixed(2))
	return total, nil
}

func outstandingTotal(patient *entity.Patient, visits []*entity.Appointment) decimal.Decimal {
	total := decimal.Zero
	for _, visit := range visits {
		if !patient.HasPaidAmount(visit.Charge) {
			total = total.Add(visit.Charge)
		}
	}
	return total
}
