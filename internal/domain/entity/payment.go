package entity

import "github.com/shopspring/decimal"

// Payment is a ledger record on a patient. A paid record covers an
// appointment charge when the amounts are exactly equal; there is no stored
// appointment reference.
type Payment struct {
	Amount decimal.Decimal `json:"amount"`
	Paid   bool            `json:"paid"`
}
