package middleware

import (
	"log/slog"
	"net/http"

	"branch-reservations/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs the cause behind 5xx responses and writes an envelope for
// handlers that recorded an error without responding.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() >= http.StatusInternalServerError {
			for _, e := range c.Errors {
				slog.Error("request failed",
					"request_id", httperr.RequestID(c),
					"path", c.FullPath(),
					"error", e.Err)
			}
		}

		if c.Writer.Written() {
			return
		}
		// the last public error wins
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) == 0 {
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(c, http.StatusInternalServerError, "Internal server error"))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"request_id", httperr.RequestID(c),
					"path", c.Request.URL.Path)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(c, http.StatusInternalServerError, "Internal server error"))
			}
		}()
		c.Next()
	}
}
