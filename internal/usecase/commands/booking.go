package commands

import (
	"context"
	"log/slog"

	"happyhotel/internal/domain/booking"
	"happyhotel/internal/pkg/clock"

	"github.com/google/uuid"
)

type BookingCommands interface {
	MakeBooking(ctx context.Context, req booking.Request) (uuid.UUID, error)
	CancelBooking(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	inventory RoomInventory
	payments  PaymentGateway
	store     BookingStore
	notifier  ConfirmationNotifier
	clock     clock.Clock
}

func NewBookingCommands(
	inventory RoomInventory,
	payments PaymentGateway,
	store BookingStore,
	notifier ConfirmationNotifier,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		inventory: inventory,
		payments:  payments,
		store:     store,
		notifier:  notifier,
		clock:     clock,
	}
}

// MakeBooking runs the booking workflow in strict order: resolve room,
// price, charge (prepay only), persist, confirm. The first failing step
// aborts the rest and its error is returned untranslated; side effects of
// earlier steps are left in place (no compensation here). In particular a
// notifier failure leaves the booking persisted but unconfirmed.
func (c *bookingCommandsImpl) MakeBooking(ctx context.Context, req booking.Request) (uuid.UUID, error) {
	if err := req.Validate(); err != nil {
		return uuid.Nil, err
	}

	roomID, err := c.inventory.FindAvailableRoom(ctx, req)
	if err != nil {
		return uuid.Nil, err
	}
	req.RoomID = roomID // local copy only, the caller's request is untouched

	price, err := booking.Price(req)
	if err != nil {
		return uuid.Nil, err
	}

	if req.Prepay {
		if err := c.payments.Charge(ctx, req, price); err != nil {
			return uuid.Nil, err
		}
	}

	rec := booking.NewRecord(req, price, c.clock.Now())
	id, err := c.store.Save(ctx, rec)
	if err != nil {
		return uuid.Nil, err
	}
	rec.ID = id

	if err := c.notifier.SendBookingConfirmation(ctx, rec); err != nil {
		slog.Warn("booking persisted but confirmation failed",
			"booking_id", id, "error", err)
		return uuid.Nil, err
	}

	return id, nil
}

// CancelBooking looks the record up once, releases its room and removes
// the record. Unknown ids fail with the store's booking.ErrNotFound.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id uuid.UUID) error {
	rec, err := c.store.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := c.inventory.ReleaseRoom(ctx, rec.RoomID); err != nil {
		return err
	}

	return c.store.Delete(ctx, id)
}
