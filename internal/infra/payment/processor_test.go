//go:build unit

package payment_test

import (
	"context"
	"testing"
	"time"

	"happyhotel/internal/domain/booking"
	"happyhotel/internal/infra/payment"
	"happyhotel/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chargeRequest() booking.Request {
	return booking.Request{
		RoomID:     uuid.New(),
		CheckIn:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
		Prepay:     true,
	}
}

func TestChargeWithinLimit(t *testing.T) {
	proc := payment.NewProcessor(config.PaymentConfig{ChargeLimit: 1000})

	err := proc.Charge(context.Background(), chargeRequest(), 400)

	require.NoError(t, err)
	ledger := proc.Ledger()
	require.Len(t, ledger, 1)
	assert.Equal(t, 400.0, ledger[0].Amount)
}

func TestChargeAboveLimitDeclined(t *testing.T) {
	proc := payment.NewProcessor(config.PaymentConfig{ChargeLimit: 300})

	err := proc.Charge(context.Background(), chargeRequest(), 400)

	assert.ErrorIs(t, err, booking.ErrPaymentDeclined)
	assert.Empty(t, proc.Ledger())
}

func TestChargeNegativeAmountDeclined(t *testing.T) {
	proc := payment.NewProcessor(config.PaymentConfig{ChargeLimit: 1000})

	err := proc.Charge(context.Background(), chargeRequest(), -1)

	assert.ErrorIs(t, err, booking.ErrPaymentDeclined)
}

func TestLedgerKeepsChargeOrder(t *testing.T) {
	proc := payment.NewProcessor(config.PaymentConfig{ChargeLimit: 1000})

	require.NoError(t, proc.Charge(context.Background(), chargeRequest(), 400))
	require.NoError(t, proc.Charge(context.Background(), chargeRequest(), 100))

	ledger := proc.Ledger()
	require.Len(t, ledger, 2)
	assert.Equal(t, 400.0, ledger[0].Amount)
	assert.Equal(t, 100.0, ledger[1].Amount)
}
