package api

import (
	"net/http"
	"time"

	reqdto "branch-reservations/internal/handler/dto/request"
	resdto "branch-reservations/internal/handler/dto/response"
	"branch-reservations/internal/handler/httperr"
	"branch-reservations/internal/handler/middleware"
	"branch-reservations/internal/pkg/config"
	"branch-reservations/internal/pkg/cookie"
	"branch-reservations/internal/usecase/commands"
	"branch-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	q         queries.UserQueries
	cookieCfg config.CookieConfig
	tokenTTL  time.Duration
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cookieCfg config.CookieConfig, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		q:         q,
		cookieCfg: cookieCfg,
		tokenTTL:  tokenTTL,
	}
}

// @Summary User login
// @Description Login with username and password; the token is also set as an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if !result.Accepted {
		httperr.Abort(c, http.StatusUnauthorized, nil, "Invalid username or password")
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, h.tokenTTL)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresIn:   int64(h.tokenTTL.Seconds()),
		User:        resdto.FromUserView(result.User),
	})
}

// @Summary User logout
// @Description Clears the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
