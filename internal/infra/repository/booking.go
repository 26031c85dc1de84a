package repository

import (
	"context"
	"errors"

	"happyhotel/internal/domain/booking"
	"happyhotel/internal/infra"
	"happyhotel/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema applied by ops tooling (and by the integration test setup):
//
//	CREATE TABLE IF NOT EXISTS bookings (
//	    id          uuid PRIMARY KEY DEFAULT gen_random_uuid(),
//	    room_id     uuid NOT NULL,
//	    check_in    timestamptz NOT NULL,
//	    check_out   timestamptz NOT NULL,
//	    guest_count integer NOT NULL,
//	    prepaid     boolean NOT NULL,
//	    price       double precision NOT NULL,
//	    created_at  timestamptz NOT NULL
//	);
const (
	insertBooking = `
		INSERT INTO bookings (room_id, check_in, check_out, guest_count, prepaid, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	selectBooking = `
		SELECT id, room_id, check_in, check_out, guest_count, prepaid, price, created_at
		FROM bookings
		WHERE id = $1`

	deleteBooking = `DELETE FROM bookings WHERE id = $1`
)

// BookingRepository is the Postgres booking store. It satisfies both the
// write-side and read-side store ports.
type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Save(ctx context.Context, rec booking.Record) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, insertBooking,
		rec.RoomID, rec.CheckIn, rec.CheckOut, rec.GuestCount, rec.Prepay, rec.Price, rec.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to save booking", err)
	}
	return id, nil
}

func (r *BookingRepository) Get(ctx context.Context, id uuid.UUID) (*booking.Record, error) {
	var rec booking.Record
	err := r.pool.QueryRow(ctx, selectBooking, id).Scan(
		&rec.ID, &rec.RoomID, &rec.CheckIn, &rec.CheckOut,
		&rec.GuestCount, &rec.Prepay, &rec.Price, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(
				infra.WrapRepoErr("booking not found", err, infra.KindNotFound),
				booking.ErrNotFound,
			)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return &rec, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteBooking, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.Mark(
			infra.WrapRepoErr("booking not found", nil, infra.KindNotFound),
			booking.ErrNotFound,
		)
	}
	return nil
}
