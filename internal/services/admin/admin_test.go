package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifelse01-debug/subpool-admin/internal/config"
	"github.com/ifelse01-debug/subpool-admin/internal/lib/password"
	"github.com/ifelse01-debug/subpool-admin/internal/lib/sessiontoken"
)

func newTestService(t *testing.T) (*AuthService, *sessiontoken.Maker) {
	t.Helper()

	hash, err := password.GetHash("correct-password")
	require.NoError(t, err)

	maker, err := sessiontoken.New(sessiontoken.Config{
		Secret:   "test_secret_key_1234567890",
		Issuer:   "subpool-admin",
		Audience: "subpool-admin-ui",
		TTL:      time.Hour,
	}, slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})))
	require.NoError(t, err)

	return NewAuthService(config.Admin{
		Username:     "admin",
		PasswordHash: hash,
	}, maker), maker
}

func TestAuthService_Login(t *testing.T) {
	service, maker := newTestService(t)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "valid credentials", username: "admin", password: "correct-password"},
		{name: "wrong password", username: "admin", password: "wrong-password", wantErr: true},
		{name: "unknown username", username: "intruder", password: "correct-password", wantErr: true},
		{name: "empty password", username: "admin", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Login(tt.username, tt.password)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			claims, ok := maker.Verify(token)
			require.True(t, ok)
			assert.Equal(t, "admin", claims["sub"])
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	service, maker := newTestService(t)

	token, err := service.Login("admin", "correct-password")
	require.NoError(t, err)

	refreshed, err := service.Refresh(token)
	require.NoError(t, err)

	claims, ok := maker.Verify(refreshed)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["sub"])
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Refresh("invalid.token.here")
	require.Error(t, err)
	assert.ErrorIs(t, err, sessiontoken.ErrInvalidToken)
}
