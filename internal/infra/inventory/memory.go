// Package inventory is the in-memory room inventory. A resolved room is
// held for its whole stay until the booking is canceled, so find-and-reserve
// is a single operation under the lock; that is what keeps this adapter
// safe against double-booking under concurrent callers.
package inventory

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"happyhotel/internal/domain/booking"
	"happyhotel/internal/pkg/config"
	"happyhotel/internal/pkg/errs"

	"github.com/google/uuid"
)

type Memory struct {
	mu       sync.Mutex
	rooms    []booking.Room
	reserved map[uuid.UUID]bool
}

// NewMemory seeds the catalog from "name:capacity" entries. Malformed
// entries are skipped.
func NewMemory(cfg config.InventoryConfig) *Memory {
	inv := &Memory{
		reserved: make(map[uuid.UUID]bool),
	}

	for _, entry := range cfg.Rooms {
		name, capStr, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok {
			continue
		}
		capacity, err := strconv.Atoi(strings.TrimSpace(capStr))
		if err != nil || capacity <= 0 {
			continue
		}
		inv.rooms = append(inv.rooms, booking.Room{
			ID:       uuid.New(),
			Name:     strings.TrimSpace(name),
			Capacity: capacity,
		})
	}

	return inv
}

// GetAvailableRooms lists the rooms not currently reserved. Every call
// reflects the state at call time; callers must not cache the result.
func (m *Memory) GetAvailableRooms(_ context.Context) ([]booking.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	available := make([]booking.Room, 0, len(m.rooms))
	for _, room := range m.rooms {
		if !m.reserved[room.ID] {
			available = append(available, room)
		}
	}
	return available, nil
}

// FindAvailableRoom picks the smallest free room that fits the guest count
// and reserves it in the same critical section.
func (m *Memory) FindAvailableRoom(_ context.Context, req booking.Request) (uuid.UUID, error) {
	if err := req.Validate(); err != nil {
		return uuid.Nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	best := -1
	for i, room := range m.rooms {
		if m.reserved[room.ID] || room.Capacity < req.GuestCount {
			continue
		}
		if best == -1 || room.Capacity < m.rooms[best].Capacity {
			best = i
		}
	}
	if best == -1 {
		return uuid.Nil, errs.Mark(
			errs.New("no free room fits the request"),
			booking.ErrNoRoomAvailable,
		)
	}

	roomID := m.rooms[best].ID
	m.reserved[roomID] = true
	return roomID, nil
}

// ReleaseRoom returns a reserved room to the pool. Releasing an unknown or
// unreserved room is a no-op.
func (m *Memory) ReleaseRoom(_ context.Context, roomID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.reserved, roomID)
	return nil
}
