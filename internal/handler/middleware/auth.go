package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"branch-reservations/internal/domain/access"
	"branch-reservations/internal/domain/user"
	"branch-reservations/internal/handler/httperr"
	"branch-reservations/internal/pkg/cookie"
	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxActorKey    = "actor"
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

var errUnauthenticated = errs.New("unauthenticated")

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, errUnauthenticated, "Access token required")
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// RequireRole rejects actors whose role is not listed. Use after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.Abort(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized")
			return
		}
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		httperr.Abort(c, http.StatusForbidden, access.ErrForbidden, "Forbidden")
	}
}

// SetActor stores the authenticated caller for handlers and the request logger.
func SetActor(c *gin.Context, actor access.Actor) {
	c.Set(ctxActorKey, actor)
	c.Set(ctxUserIDKey, actor.UserID)
	c.Set(ctxUserRoleKey, actor.Role)
}

func GetActor(c *gin.Context) (access.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return access.Actor{}, false
	}
	actor, ok := v.(access.Actor)
	return actor, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
