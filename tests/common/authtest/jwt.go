//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"fervo/internal/domain/user"
	"fervo/internal/pkg/config"
	"fervo/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens with the same secret and issuer as the app under test.
type JWTHelper struct {
	live    *jwt.Service
	expired *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{
		live:    jwt.NewService(cfg.Secret, cfg.Issuer, cfg.AccessTokenDuration, cfg.RefreshTokenDuration),
		expired: jwt.NewService(cfg.Secret, cfg.Issuer, -time.Minute, -time.Minute),
	}
}

func (h *JWTHelper) AccessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.live.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) RefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.live.GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}

// ExpiredAccessToken is signed correctly but expired a minute ago.
func (h *JWTHelper) ExpiredAccessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.expired.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
