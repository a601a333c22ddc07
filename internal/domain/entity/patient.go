package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Patient is a registry entry. Its visit history is a computed view owned by
// the scheduler; the only state a patient accumulates here is its payment
// records.
type Patient struct {
	ID       uuid.UUID      `json:"id"`
	Identity PersonIdentity `json:"identity"`
	Payments []Payment      `json:"payments"`
}

// HasAnyPayment reports whether at least one payment record exists,
// regardless of whether it covers anything. The default billing policy is
// built on this check.
func (p *Patient) HasAnyPayment() bool {
	return len(p.Payments) > 0
}

// HasPaidAmount reports whether a paid record with exactly this amount exists.
func (p *Patient) HasPaidAmount(amount decimal.Decimal) bool {
	for _, pay := range p.Payments {
		if pay.Paid && pay.Amount.Equal(amount) {
			return true
		}
	}
	return false
}

// AddPayment appends a payment record to the patient's sequence.
func (p *Patient) AddPayment(payment Payment) {
	p.Payments = append(p.Payments, payment)
}
