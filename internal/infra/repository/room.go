package repository

import (
	"context"

	"chartrettes-rooms/internal/infra"
	"chartrettes-rooms/internal/pkg/pgconv"
	"chartrettes-rooms/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: db}
}

const findRoomSQL = `
SELECT id, name, capacity, opening_hour, closing_hour,
       paid, hourly_cents, half_day_cents, full_day_cents, deposit_cents,
       free_for_residents, half_day_hours, full_day_hours
FROM rooms
WHERE id = $1`

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.RoomSnapshot, error) {
	var (
		snap                              commands.RoomSnapshot
		hourly, halfDay, fullDay, deposit pgtype.Int8
	)

	err := r.db.QueryRow(ctx, findRoomSQL, id).Scan(
		&snap.ID, &snap.Name, &snap.Capacity, &snap.OpeningHour, &snap.ClosingHour,
		&snap.Paid, &hourly, &halfDay, &fullDay, &deposit,
		&snap.FreeForResidents, &snap.HalfDayHours, &snap.FullDayHours,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	snap.HourlyCents = pgconv.Int64PtrFromPgtype(hourly)
	snap.HalfDayCents = pgconv.Int64PtrFromPgtype(halfDay)
	snap.FullDayCents = pgconv.Int64PtrFromPgtype(fullDay)
	snap.DepositCents = pgconv.Int64PtrFromPgtype(deposit)
	return &snap, nil
}
