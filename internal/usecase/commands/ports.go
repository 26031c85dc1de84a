package commands

import (
	"context"

	"happyhotel/internal/domain/booking"

	"github.com/google/uuid"
)

// Write-side collaborator ports. Implementations live under internal/infra
// and are substituted with gomock doubles in tests.

// RoomInventory resolves and releases rooms. FindAvailableRoom must be
// atomic with respect to reservation: a returned room id is already held
// for the request. Failures surface as booking.ErrNoRoomAvailable.
type RoomInventory interface {
	FindAvailableRoom(ctx context.Context, req booking.Request) (uuid.UUID, error)
	ReleaseRoom(ctx context.Context, roomID uuid.UUID) error
}

// PaymentGateway executes a charge for the given request. Any processor
// failure surfaces as booking.ErrPaymentDeclined.
type PaymentGateway interface {
	Charge(ctx context.Context, req booking.Request, amount float64) error
}

// BookingStore persists booking records. Save assigns and returns the
// record identifier. Get and Delete surface booking.ErrNotFound for
// unknown ids.
type BookingStore interface {
	Save(ctx context.Context, rec booking.Record) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*booking.Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ConfirmationNotifier delivers the booking confirmation. Failures surface
// as booking.ErrConfirmationFailed.
type ConfirmationNotifier interface {
	SendBookingConfirmation(ctx context.Context, rec booking.Record) error
}
