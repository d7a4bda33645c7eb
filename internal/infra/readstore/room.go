package readstore

import (
	"context"

	"chartrettes-rooms/internal/infra"
	"chartrettes-rooms/internal/pkg/pgconv"
	"chartrettes-rooms/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomReadStore struct {
	db *pgxpool.Pool
}

func NewRoomReadStore(db *pgxpool.Pool) *RoomReadStore {
	return &RoomReadStore{db: db}
}

const findRoomViewSQL = `
SELECT id, name, capacity, opening_hour, closing_hour,
       paid, hourly_cents, half_day_cents, full_day_cents, deposit_cents,
       free_for_residents, created_at, updated_at
FROM rooms
WHERE id = $1`

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row := r.db.QueryRow(ctx, findRoomViewSQL, id)
	view, err := scanRoomView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return view, nil
}

const listRoomsSQL = `
SELECT id, name, capacity, opening_hour, closing_hour,
       paid, hourly_cents, half_day_cents, full_day_cents, deposit_cents,
       free_for_residents, created_at, updated_at
FROM rooms
ORDER BY name`

func (r *RoomReadStore) FindAll(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, listRoomsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		view, err := scanRoomView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}

func scanRoomView(row pgx.Row) (*queries.RoomView, error) {
	var (
		view                              queries.RoomView
		hourly, halfDay, fullDay, deposit pgtype.Int8
		createdAt, updatedAt              pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID, &view.Name, &view.Capacity, &view.OpeningHour, &view.ClosingHour,
		&view.Paid, &hourly, &halfDay, &fullDay, &deposit,
		&view.FreeForResidents, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.HourlyCents = pgconv.Int64PtrFromPgtype(hourly)
	view.HalfDayCents = pgconv.Int64PtrFromPgtype(halfDay)
	view.FullDayCents = pgconv.Int64PtrFromPgtype(fullDay)
	view.DepositCents = pgconv.Int64PtrFromPgtype(deposit)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
