package console

import (
	"context"

	"clinic-scheduling/internal/delivery/dto"
)

func (c *Console) settlePayment() {
	idKey, ok := c.promptNonEmpty("Patient national ID: ")
	if !ok {
		return
	}
	outstanding, err := c.payments.Outstanding(context.Background(), idKey)
	if err != nil {
		c.printf("%v\n", err)
		return
	}
	c.printf("Outstanding balance: %s\n", outstanding.StringFixed(2))
	if outstanding.IsZero() {
		return
	}

	amount, ok := c.promptDecimal("Amount to pay: ")
	if !ok {
		return
	}
	paid, err := c.payments.Settle(context.Background(), idKey, &dto.SettlePaymentRequest{Amount: amount})
	if err != nil {
		c.printf("Could not settle payment: %v\n", err)
		return
	}
	c.printf("Payment of %s recorded, balance settled.\n", paid.StringFixed(2))
}
