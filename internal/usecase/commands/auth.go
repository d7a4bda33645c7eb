package commands

import (
	"context"
	"errors"

	"chartrettes-rooms/internal/domain/user"
	"chartrettes-rooms/internal/infra"
	"chartrettes-rooms/internal/pkg/errs"
	"chartrettes-rooms/internal/pkg/jwt"
	"chartrettes-rooms/internal/pkg/password"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginResult struct {
	Token               string
	UserID              uuid.UUID
	Email               string
	Role                string
	ChartrettesResident bool
}

type ProfileResult struct {
	UserID              uuid.UUID
	Email               string
	Role                string
	ChartrettesResident bool
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*ProfileResult, error)
}

type authCommandsImpl struct {
	requesterRepo RequesterRepository
	jwtService    *jwt.Service
}

func NewAuthCommands(requesterRepo RequesterRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		requesterRepo: requesterRepo,
		jwtService:    jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	creds, err := a.requesterRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(creds.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(creds.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	token, err := a.jwtService.GenerateToken(creds.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{
		Token:               token,
		UserID:              creds.ID,
		Email:               creds.Email,
		Role:                role.String(),
		ChartrettesResident: creds.ChartrettesResident,
	}, nil
}

func (a *authCommandsImpl) CurrentUser(ctx context.Context, userID uuid.UUID) (*ProfileResult, error) {
	snap, err := a.requesterRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequesterNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &ProfileResult{
		UserID:              snap.ID,
		Email:               snap.Email,
		Role:                snap.Role,
		ChartrettesResident: snap.ChartrettesResident,
	}, nil
}
