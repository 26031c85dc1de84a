// Package memstore is the in-memory booking store used for local runs and
// tests. State lives for the process lifetime only.
package memstore

import (
	"context"
	"sync"

	"happyhotel/internal/domain/booking"
	"happyhotel/internal/infra"
	"happyhotel/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingStore struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]booking.Record
}

func New() *BookingStore {
	return &BookingStore{
		bookings: make(map[uuid.UUID]booking.Record),
	}
}

func (s *BookingStore) Save(_ context.Context, rec booking.Record) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = uuid.New()
	s.bookings[rec.ID] = rec

	return rec.ID, nil
}

func (s *BookingStore) Get(_ context.Context, id uuid.UUID) (*booking.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.bookings[id]
	if !ok {
		return nil, s.notFound()
	}
	return &rec, nil
}

func (s *BookingStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return s.notFound()
	}
	delete(s.bookings, id)

	return nil
}

func (s *BookingStore) notFound() error {
	return errs.Mark(
		infra.WrapRepoErr("booking not found", nil, infra.KindNotFound),
		booking.ErrNotFound,
	)
}
