package readstore

import (
	"context"
	"fmt"

	"chartrettes-rooms/internal/infra"
	"chartrettes-rooms/internal/pkg/pgconv"
	"chartrettes-rooms/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

// slotsSubquery collects a booking's hour ranges as "HH:00-HH:00" strings.
// Rejected and canceled bookings have released their slot rows and come back
// with an empty list.
const slotsSubquery = `
	SELECT array_agg(
		lpad(lower(s.slot)::text, 2, '0') || ':00-' || lpad(upper(s.slot)::text, 2, '0') || ':00'
		ORDER BY lower(s.slot)
	)
	FROM booking_slots s
	WHERE s.booking_id = b.id`

const findBookingViewSQL = `
SELECT b.id, b.room_id, r.name, b.user_id, u.email,
       b.date, (` + slotsSubquery + `),
       b.status, b.price_cents, b.pricing_method, b.deposit_cents,
       b.note, b.created_at, b.updated_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN users u ON u.id = b.user_id
WHERE b.id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view      queries.BookingView
		date      pgtype.Date
		slots     []string
		note      pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, findBookingViewSQL, id).Scan(
		&view.ID, &view.RoomID, &view.RoomName, &view.UserID, &view.UserEmail,
		&date, &slots,
		&view.Status, &view.PriceCents, &view.PricingMethod, &view.DepositCents,
		&note, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view.Date = pgconv.DateFromPgtype(date)
	view.Slots = slots
	view.Note = pgconv.StringPtrFromPgtype(note)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const listBookingsByUserSQL = `
SELECT b.id, b.room_id, r.name,
       b.date, (` + slotsSubquery + `),
       b.status, b.price_cents, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
WHERE b.user_id = $1
ORDER BY b.date DESC, b.created_at DESC`

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, listBookingsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	return collectListItems(rows)
}

const listPendingBookingsSQL = `
SELECT b.id, b.room_id, r.name,
       b.date, (` + slotsSubquery + `),
       b.status, b.price_cents, b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
WHERE b.status = 'pending'
ORDER BY b.date ASC, b.created_at ASC`

func (r *BookingReadStore) FindPending(ctx context.Context) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, listPendingBookingsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending bookings", err)
	}
	return collectListItems(rows)
}

func collectListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var (
			item      queries.BookingListItem
			date      pgtype.Date
			slots     []string
			createdAt pgtype.Timestamptz
		)
		err := rows.Scan(
			&item.ID, &item.RoomID, &item.RoomName,
			&date, &slots,
			&item.Status, &item.PriceCents, &createdAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr(fmt.Sprintf("failed to scan booking row %d", len(result)), err)
		}
		item.Date = pgconv.DateFromPgtype(date)
		item.Slots = slots
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}
