//go:build unit

package inventory_test

import (
	"context"
	"testing"
	"time"

	"happyhotel/internal/domain/booking"
	"happyhotel/internal/infra/inventory"
	"happyhotel/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(rooms ...string) *inventory.Memory {
	return inventory.NewMemory(config.InventoryConfig{Rooms: rooms})
}

func request(guests int) booking.Request {
	checkIn := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	return booking.Request{
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 4),
		GuestCount: guests,
	}
}

func TestSeedSkipsMalformedEntries(t *testing.T) {
	inv := seeded("Room 101:2", "garbage", "Room 102:x", "Room 103:-1", "Room 201:3")

	rooms, err := inv.GetAvailableRooms(context.Background())

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "Room 101", rooms[0].Name)
	assert.Equal(t, 2, rooms[0].Capacity)
	assert.Equal(t, "Room 201", rooms[1].Name)
	assert.Equal(t, 3, rooms[1].Capacity)
}

func TestFindAvailableRoomPrefersSmallestFit(t *testing.T) {
	inv := seeded("Suite:4", "Room 101:2")

	roomID, err := inv.FindAvailableRoom(context.Background(), request(2))
	require.NoError(t, err)

	rooms, err := inv.GetAvailableRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Suite", rooms[0].Name)
	assert.NotEqual(t, rooms[0].ID, roomID)
}

func TestFindAvailableRoomReservesAtomically(t *testing.T) {
	inv := seeded("Room 101:2")

	_, err := inv.FindAvailableRoom(context.Background(), request(2))
	require.NoError(t, err)

	// The only room is now held; a second request must fail.
	_, err = inv.FindAvailableRoom(context.Background(), request(2))
	assert.ErrorIs(t, err, booking.ErrNoRoomAvailable)
}

func TestFindAvailableRoomNoCapacityFits(t *testing.T) {
	inv := seeded("Room 101:2", "Room 102:2")

	_, err := inv.FindAvailableRoom(context.Background(), request(5))

	assert.ErrorIs(t, err, booking.ErrNoRoomAvailable)
}

func TestFindAvailableRoomRejectsInvalidRequest(t *testing.T) {
	inv := seeded("Room 101:2")

	_, err := inv.FindAvailableRoom(context.Background(), request(0))

	assert.ErrorIs(t, err, booking.ErrInvalidRequest)
}

func TestReleaseRoomRestoresAvailability(t *testing.T) {
	inv := seeded("Room 101:2")

	roomID, err := inv.FindAvailableRoom(context.Background(), request(2))
	require.NoError(t, err)

	require.NoError(t, inv.ReleaseRoom(context.Background(), roomID))

	again, err := inv.FindAvailableRoom(context.Background(), request(2))
	require.NoError(t, err)
	assert.Equal(t, roomID, again)
}

func TestGetAvailableRoomsReflectsReservations(t *testing.T) {
	inv := seeded("Room 101:2", "Room 201:3")

	rooms, err := inv.GetAvailableRooms(context.Background())
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	_, err = inv.FindAvailableRoom(context.Background(), request(2))
	require.NoError(t, err)

	rooms, err = inv.GetAvailableRooms(context.Background())
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}
