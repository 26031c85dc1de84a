package request

import (
	"time"

	"happyhotel/internal/domain/booking"
)

type CreateBookingRequest struct {
	CheckIn    time.Time `json:"checkIn" binding:"required"`
	CheckOut   time.Time `json:"checkOut" binding:"required"`
	GuestCount int       `json:"guestCount" binding:"required,gt=0"`
	Prepay     bool      `json:"prepay"`
}

func (r CreateBookingRequest) ToDomain() booking.Request {
	return booking.Request{
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		GuestCount: r.GuestCount,
		Prepay:     r.Prepay,
	}
}

type QuoteBookingRequest struct {
	CheckIn    time.Time `json:"checkIn" binding:"required"`
	CheckOut   time.Time `json:"checkOut" binding:"required"`
	GuestCount int       `json:"guestCount" binding:"required,gt=0"`
}

func (r QuoteBookingRequest) ToDomain() booking.Request {
	return booking.Request{
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		GuestCount: r.GuestCount,
	}
}
