package booking

import (
	"time"

	"github.com/google/uuid"
)

// Request is a guest's booking intent. RoomID stays uuid.Nil until the
// booking workflow resolves a room; the workflow works on its own copy and
// never writes the caller's value back.
type Request struct {
	RoomID     uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
	Prepay     bool
}

// Validate rejects requests that cannot price to a positive amount.
// Date ordering and guest count are checked here once, before any
// collaborator is contacted.
func (r Request) Validate() error {
	if r.GuestCount <= 0 {
		return ErrInvalidRequest
	}
	if !r.CheckOut.After(r.CheckIn) {
		return ErrInvalidRequest
	}
	return nil
}

// Nights counts whole nights between check-in and check-out.
func (r Request) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Room is an immutable inventory value. The booking core only reads its
// capacity; rooms are owned by the inventory collaborator.
type Room struct {
	ID       uuid.UUID
	Name     string
	Capacity int
}

// Record is the persisted form of a request: the request fields with the
// resolved room, the price it was sold at and the generated identifier.
type Record struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
	Prepay     bool
	Price      float64
	CreatedAt  time.Time
}

// NewRecord builds the persisted form of req. req.RoomID must already be
// resolved; the store assigns Record.ID on save.
func NewRecord(req Request, price float64, now time.Time) Record {
	return Record{
		RoomID:     req.RoomID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		GuestCount: req.GuestCount,
		Prepay:     req.Prepay,
		Price:      price,
		CreatedAt:  now,
	}
}
