package queries

import (
	"context"
	"time"

	"happyhotel/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Read-side collaborator ports.

// RoomReadStore lists currently available rooms. The sequence may differ
// between calls; callers must not cache it.
type RoomReadStore interface {
	GetAvailableRooms(ctx context.Context) ([]booking.Room, error)
}

// CurrencyConverter turns a local-currency amount into the reference
// currency. It is injected rather than reached globally so tests can
// substitute deterministic conversion. Failures surface as
// booking.ErrRateUnavailable.
type CurrencyConverter interface {
	ToReferenceCurrency(amount float64) (float64, error)
}

// BookingReadStore reads persisted bookings; unknown ids surface
// booking.ErrNotFound.
type BookingReadStore interface {
	Get(ctx context.Context, id uuid.UUID) (*booking.Record, error)
}

// BookingView is the read model returned over the API.
type BookingView struct {
	ID         uuid.UUID `json:"id"`
	RoomID     uuid.UUID `json:"room_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	GuestCount int       `json:"guest_count"`
	Prepay     bool      `json:"prepay"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}

type BookingQueries interface {
	CalculatePrice(req booking.Request) (float64, error)
	CalculatePriceInReferenceCurrency(req booking.Request) (float64, error)
	AvailablePlaceCount(ctx context.Context) (int, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	rooms     RoomReadStore
	converter CurrencyConverter
	store     BookingReadStore
}

func NewBookingQueries(
	rooms RoomReadStore,
	converter CurrencyConverter,
	store BookingReadStore,
) BookingQueries {
	return &bookingQueriesImpl{
		rooms:     rooms,
		converter: converter,
		store:     store,
	}
}

func (q *bookingQueriesImpl) CalculatePrice(req booking.Request) (float64, error) {
	return booking.Price(req)
}

func (q *bookingQueriesImpl) CalculatePriceInReferenceCurrency(req booking.Request) (float64, error) {
	price, err := booking.Price(req)
	if err != nil {
		return 0, err
	}
	return q.converter.ToReferenceCurrency(price)
}

// AvailablePlaceCount re-queries the inventory on every call and sums the
// capacities of whatever it reports, duplicates included.
func (q *bookingQueriesImpl) AvailablePlaceCount(ctx context.Context) (int, error) {
	rooms, err := q.rooms.GetAvailableRooms(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, room := range rooms {
		count += room.Capacity
	}
	return count, nil
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	rec, err := q.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var view BookingView
	if err := copier.Copy(&view, rec); err != nil {
		return nil, err
	}
	return &view, nil
}
