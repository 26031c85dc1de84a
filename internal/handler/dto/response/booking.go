package response

import (
	"time"

	"happyhotel/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	RoomID     uuid.UUID `json:"roomId"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	GuestCount int       `json:"guestCount"`
	Prepay     bool      `json:"prepay"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"createdAt"`
}

type QuoteResponse struct {
	Price          float64 `json:"price"`
	ReferencePrice float64 `json:"referencePrice"`
}

type AvailabilityResponse struct {
	PlaceCount int `json:"placeCount"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:         view.ID,
		RoomID:     view.RoomID,
		CheckIn:    view.CheckIn,
		CheckOut:   view.CheckOut,
		GuestCount: view.GuestCount,
		Prepay:     view.Prepay,
		Price:      view.Price,
		CreatedAt:  view.CreatedAt,
	}
}
