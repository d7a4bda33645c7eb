package repository

import (
	"context"
	"errors"
	"time"

	"chartrettes-rooms/internal/domain/booking"
	"chartrettes-rooms/internal/infra"
	"chartrettes-rooms/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Slot rows live in their own table guarded by an exclusion constraint, so
// overlap detection happens in the database instead of a read-then-write race.
// Rejected and canceled bookings release their slot rows.
type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

const insertBookingSQL = `
INSERT INTO bookings (
	id, room_id, user_id, date, status,
	price_cents, pricing_method, units_charged, unit_cents, deposit_cents,
	note
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const insertSlotSQL = `
INSERT INTO booking_slots (booking_id, room_id, date, slot)
VALUES ($1, $2, $3, int4range($4, $5))`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	quote := b.Quote()
	var note *string
	if b.Note() != "" {
		n := b.Note()
		note = &n
	}

	_, err = tx.Exec(ctx, insertBookingSQL,
		b.ID(), b.RoomID(), b.UserID(), pgconv.DateToPgtype(b.Date()), b.Status().String(),
		quote.TotalCents, quote.Method.String(), quote.UnitsCharged, quote.UnitCents, quote.DepositCents,
		pgconv.StringPtrToPgtype(note),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert booking", err)
	}

	for _, slot := range b.Slots() {
		_, err = tx.Exec(ctx, insertSlotSQL,
			b.ID(), b.RoomID(), pgconv.DateToPgtype(b.Date()), slot.StartHour(), slot.EndHour(),
		)
		if err != nil {
			if isOverlapErr(err) {
				return uuid.Nil, infra.WrapRepoErr("slot overlaps an existing booking", err, infra.KindConflict)
			}
			return uuid.Nil, infra.WrapRepoErr("failed to insert booking slot", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to commit booking", err)
	}
	return b.ID(), nil
}

const findBookingSQL = `
SELECT id, room_id, user_id, date, status,
       price_cents, pricing_method, units_charged, unit_cents, deposit_cents,
       note, created_at, updated_at
FROM bookings
WHERE id = $1`

const findSlotsSQL = `
SELECT lower(slot), upper(slot)
FROM booking_slots
WHERE booking_id = $1
ORDER BY lower(slot)`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		bookingID, roomID, userID uuid.UUID
		date                      time.Time
		status                    string
		priceCents                int64
		pricingMethod             string
		unitsCharged              int
		unitCents                 int64
		depositCents              int64
		note                      *string
		createdAt, updatedAt      time.Time
	)

	err := r.db.QueryRow(ctx, findBookingSQL, id).Scan(
		&bookingID, &roomID, &userID, &date, &status,
		&priceCents, &pricingMethod, &unitsCharged, &unitCents, &depositCents,
		&note, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	slots, err := r.findSlots(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	noteValue := ""
	if note != nil {
		noteValue = *note
	}

	return booking.ReconstructBooking(
		bookingID, roomID, userID,
		date, slots,
		booking.Status(status),
		booking.PriceQuote{
			TotalCents:   priceCents,
			Method:       booking.PricingMethod(pricingMethod),
			UnitsCharged: unitsCharged,
			UnitCents:    unitCents,
			DepositCents: depositCents,
		},
		noteValue,
		createdAt, updatedAt,
	), nil
}

func (r *BookingRepository) findSlots(ctx context.Context, bookingID uuid.UUID) ([]booking.TimeSlot, error) {
	rows, err := r.db.Query(ctx, findSlotsSQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking slots", err)
	}
	defer rows.Close()

	var slots []booking.TimeSlot
	for rows.Next() {
		var start, end int
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking slot", err)
		}
		slot, err := booking.NewTimeSlot(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("stored slot is invalid", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking slots", err)
	}
	return slots, nil
}

const updateStatusSQL = `
UPDATE bookings
SET status = $2, updated_at = $3
WHERE id = $1`

const releaseSlotsSQL = `
DELETE FROM booking_slots
WHERE booking_id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, updatedAt time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx, updateStatusSQL, id, status.String(), pgconv.TimeToPgtype(updatedAt))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	if status == booking.StatusRejected || status == booking.StatusCanceled {
		if _, err := tx.Exec(ctx, releaseSlotsSQL, id); err != nil {
			return infra.WrapRepoErr("failed to release booking slots", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit status update", err)
	}
	return nil
}

func isOverlapErr(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23P01 exclusion_violation, 23505 unique_violation
		return pgErr.Code == "23P01" || pgErr.Code == "23505"
	}
	return false
}
