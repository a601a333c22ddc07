package usecase

import (
	"context"
	"sync"
	"testing"

	"clinic-scheduling/internal/delivery/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paymentFixture is a scheduler fixture plus the ledger built on top of it.
type paymentFixture struct {
	*schedulerFixture
	payments PaymentUsecase
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	f := newSchedulerFixture(allowAll)
	return &paymentFixture{
		schedulerFixture: f,
		payments:         NewPaymentUsecase(testLogger(), f.patients, f.scheduler),
	}
}

// bookVisit schedules a visit for Alice on the given day with the given charge.
func (f *paymentFixture) bookVisit(t *testing.T, date string, charge int64) {
	t.Helper()
	req := createRequest()
	req.Date = date
	req.Charge = decimal.NewFromInt(charge)
	_, err := f.scheduler.CreateAppointment(context.Background(), req)
	require.NoError(t, err)
}

func TestOutstandingNoVisits(t *testing.T) {
	f := newPaymentFixture(t)

	outstanding, err := f.payments.Outstanding(context.Background(), "12345678901")
	require.NoError(t, err)
	assert.True(t, outstanding.IsZero())
}

func TestOutstandingUnknownPatient(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.payments.Outstanding(context.Background(), "00000000000")
	assert.True(t, IsNotFound(err))
}

func TestOutstandingSumsUncoveredCharges(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	f.bookVisit(t, "20-03-2026", 100)
	f.bookVisit(t, "21-03-2026", 50)

	outstanding, err := f.payments.Outstanding(ctx, "123.456.789-01")
	require.NoError(t, err)
	assert.True(t, outstanding.Equal(decimal.NewFromInt(150)))
}

func TestSettle(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	f.bookVisit(t, "20-03-2026", 100)
	f.bookVisit(t, "21-03-2026", 50)

	// A partial amount is rejected without recording anything.
	_, err := f.payments.Settle(ctx, "12345678901", &dto.SettlePaymentRequest{Amount: decimal.NewFromInt(100)})
	assert.True(t, IsValidation(err))
	assert.Empty(t, f.alice.Payments)

	paid, err := f.payments.Settle(ctx, "12345678901", &dto.SettlePaymentRequest{Amount: decimal.NewFromInt(150)})
	require.NoError(t, err)
	assert.True(t, paid.Equal(decimal.NewFromInt(150)))

	// One paid record per distinct uncovered charge.
	require.Len(t, f.alice.Payments, 2)
	for _, p := range f.alice.Payments {
		assert.True(t, p.Paid)
	}

	outstanding, err := f.payments.Outstanding(ctx, "12345678901")
	require.NoError(t, err)
	assert.True(t, outstanding.IsZero())

	// A second settlement finds nothing outstanding.
	_, err = f.payments.Settle(ctx, "12345678901", &dto.SettlePaymentRequest{Amount: decimal.NewFromInt(150)})
	assert.ErrorIs(t, err, ErrNothingOutstanding)
}

func TestSettleNoVisits(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.payments.Settle(context.Background(), "12345678901", &dto.SettlePaymentRequest{Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, ErrNoVisitsToSettle)
}

func TestSettleRejectsNonPositiveAmount(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	f.bookVisit(t, "20-03-2026", 100)

	_, err := f.payments.Settle(ctx, "12345678901", &dto.SettlePaymentRequest{Amount: decimal.Zero})
	assert.True(t, IsValidation(err))

	_, err = f.payments.Settle(ctx, "12345678901", &dto.SettlePaymentRequest{Amount: decimal.NewFromInt(-100)})
	assert.True(t, IsValidation(err))
}

// Settlement writes the same payment records the billing gate reads during
// scheduling, so both must run under the schedule lock. Exercised with the
// race detector enabled.
func TestConcurrentSettlementAndScheduling(t *testing.T) {
	f := newSchedulerFixture(nil) // default AnyPaymentOnFile policy
	payments := NewPaymentUsecase(testLogger(), f.patients, f.scheduler)
	ctx := context.Background()

	_, err := f.scheduler.CreateAppointment(ctx, createRequest())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			payments.Settle(ctx, "12345678901", &dto.SettlePaymentRequest{Amount: decimal.NewFromInt(150)})
			payments.Outstanding(ctx, "12345678901")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			req := createRequest()
			req.Date = "21-03-2026"
			f.scheduler.CreateAppointment(ctx, req)
		}
	}()
	wg.Wait()

	// Only the first settlement appends a record; the second visit's equal
	// charge is covered by it, so the ledger ends settled either way.
	assert.Len(t, f.alice.Payments, 1)
	outstanding, err := payments.Outstanding(ctx, "12345678901")
	require.NoError(t, err)
	assert.True(t, outstanding.IsZero())
}

// Charges are matched to payments by amount equality alone, so two visits
// with the same charge are both covered by a single paid record of that
// amount, and settlement still demands the sum of both.
func TestSettleEqualChargesShareOneRecord(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	f.bookVisit(t, "20-03-2026", 100)
	f.bookVisit(t, "21-03-2026", 100)

	outstanding, err := f.payments.Outstanding(ctx, "12345678901")
	require.NoError(t, err)
	assert.True(t, outstanding.Equal(decimal.NewFromInt(200)))

	paid, err := f.payments.Settle(ctx, "12345678901", &dto.SettlePaymentRequest{Amount: decimal.NewFromInt(200)})
	require.NoError(t, err)
	assert.True(t, paid.Equal(decimal.NewFromInt(200)))

	// The first record covers both visits; no second one is written.
	assert.Len(t, f.alice.Payments, 1)

	outstanding, err = f.payments.Outstanding(ctx, "12345678901")
	require.NoError(t, err)
	assert.True(t, outstanding.IsZero())
}
