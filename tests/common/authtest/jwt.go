//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"branch-reservations/internal/domain/access"
	"branch-reservations/internal/pkg/config"
	"branch-reservations/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, actor access.Actor) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return h.sign(t, actor, duration)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, actor access.Actor) string {
	t.Helper()
	token := h.sign(t, actor, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	return token
}

func (h *JWTHelper) sign(t *testing.T, actor access.Actor, ttl time.Duration) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, ttl)
	token, err := service.GenerateToken(jwt.Subject{
		UserID:      actor.UserID,
		Username:    actor.Username,
		DisplayName: actor.DisplayName,
		Role:        actor.Role,
		Branch:      actor.Branch,
	})
	require.NoError(t, err)
	return token
}
