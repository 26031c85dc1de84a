//go:build unit

package memstore_test

import (
	"context"
	"testing"
	"time"

	"happyhotel/internal/domain/booking"
	"happyhotel/internal/infra"
	"happyhotel/internal/infra/memstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() booking.Record {
	return booking.Record{
		RoomID:     uuid.New(),
		CheckIn:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
		Prepay:     true,
		Price:      400,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestSaveAssignsID(t *testing.T) {
	store := memstore.New()

	id, err := store.Save(context.Background(), testRecord())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestSaveGetRoundtrip(t *testing.T) {
	store := memstore.New()
	rec := testRecord()

	id, err := store.Save(context.Background(), rec)
	require.NoError(t, err)

	got, err := store.Get(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, got.ID)
	if diff := cmp.Diff(&rec, got, cmpopts.IgnoreFields(booking.Record{}, "ID")); diff != "" {
		t.Errorf("stored record mismatch (-want +got):\n%s", diff)
	}
}

func TestGetUnknownID(t *testing.T) {
	store := memstore.New()

	_, err := store.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, booking.ErrNotFound)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestDelete(t *testing.T) {
	store := memstore.New()

	id, err := store.Save(context.Background(), testRecord())
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), id))

	_, err = store.Get(context.Background(), id)
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestDeleteUnknownID(t *testing.T) {
	store := memstore.New()

	err := store.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, booking.ErrNotFound)
}
