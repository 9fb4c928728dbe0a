//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"branch-reservations/internal/domain/user"
	"branch-reservations/internal/handler/middleware"
	"branch-reservations/internal/pkg/config"
	"branch-reservations/internal/pkg/jwt"
	"branch-reservations/internal/usecase"
	"branch-reservations/tests/common/authtest"
	"branch-reservations/tests/common/builder"
	"branch-reservations/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *authtest.JWTHelper) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig().JWT
	m := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(cfg.Secret, 0)))

	r := gin.New()
	r.Use(m.RequireAuth())
	r.GET("/me", func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"branch": actor.Branch, "role": actor.Role})
	})
	r.POST("/archive", m.RequireRole(user.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r, authtest.NewJWTHelper(cfg)
}

func TestRequireAuth(t *testing.T) {
	router, tokens := newRouter(t)
	actor := builder.NewUserBuilder().BuildActor()

	t.Run("bearer token sets the actor", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, tokens.GenerateToken(t, actor))

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "Centro", body["branch"])
		assert.Equal(t, "branch_staff", body["role"])
	})

	t.Run("cookie token is accepted", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: "access_token", Value: tokens.GenerateToken(t, actor)}}
		rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/me", nil, cookies, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("expired token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, tokens.CreateExpiredToken(t, actor))
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "not-a-jwt")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRole(t *testing.T) {
	router, tokens := newRouter(t)

	cases := []struct {
		name   string
		role   string
		expect int
	}{
		{name: "admin passes", role: "admin", expect: http.StatusNoContent},
		{name: "manager is rejected", role: "branch_manager", expect: http.StatusForbidden},
		{name: "staff is rejected", role: "branch_staff", expect: http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actor := builder.NewUserBuilder().WithRole(tc.role).BuildActor()
			rec := httptest.PerformRequest(t, router, http.MethodPost, "/archive", nil, tokens.GenerateToken(t, actor))
			assert.Equal(t, tc.expect, rec.Code)
		})
	}
}
