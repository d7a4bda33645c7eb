//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"chartrettes-rooms/internal/infra"
	"chartrettes-rooms/internal/pkg/jwt"
	"chartrettes-rooms/internal/pkg/password"
	"chartrettes-rooms/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCredentialsRepo struct {
	creds *commands.CredentialsSnapshot
}

func (s *stubCredentialsRepo) FindByID(_ context.Context, _ uuid.UUID) (*commands.RequesterSnapshot, error) {
	return nil, infra.NewRepoErr(infra.KindNotFound, "not found")
}

func (s *stubCredentialsRepo) FindByEmail(_ context.Context, email string) (*commands.CredentialsSnapshot, error) {
	if s.creds == nil || s.creds.Email != email {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return s.creds, nil
}

func TestLogin(t *testing.T) {
	hash, err := password.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	creds := &commands.CredentialsSnapshot{
		ID:                  uuid.New(),
		Email:               "marie@chartrettes.fr",
		PasswordHash:        hash,
		Role:                "resident",
		ChartrettesResident: true,
	}
	jwtService := jwt.NewService("test-secret", time.Hour)
	auth := commands.NewAuthCommands(&stubCredentialsRepo{creds: creds}, jwtService)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := auth.Login(context.Background(), "marie@chartrettes.fr", "correct horse battery staple")
		require.NoError(t, err)

		assert.Equal(t, creds.ID, result.UserID)
		assert.Equal(t, "resident", result.Role)
		assert.True(t, result.ChartrettesResident)

		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, creds.ID, claims.UserID)
		assert.Equal(t, "resident", claims.Role)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := auth.Login(context.Background(), "nobody@chartrettes.fr", "whatever")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login(context.Background(), "marie@chartrettes.fr", "wrong")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
