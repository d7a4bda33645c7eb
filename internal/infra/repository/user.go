package repository

import (
	"context"

	"chartrettes-rooms/internal/infra"
	"chartrettes-rooms/internal/pkg/pgconv"
	"chartrettes-rooms/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const findUserByIDSQL = `
SELECT id, email, role, chartrettes_resident
FROM users
WHERE id = $1`

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.RequesterSnapshot, error) {
	var snap commands.RequesterSnapshot

	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(
		&snap.ID, &snap.Email, &snap.Role, &snap.ChartrettesResident,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &snap, nil
}

const findUserByEmailSQL = `
SELECT id, email, password_hash, role, chartrettes_resident
FROM users
WHERE email = $1`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*commands.CredentialsSnapshot, error) {
	var snap commands.CredentialsSnapshot

	err := r.db.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&snap.ID, &snap.Email, &snap.PasswordHash, &snap.Role, &snap.ChartrettesResident,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &snap, nil
}
