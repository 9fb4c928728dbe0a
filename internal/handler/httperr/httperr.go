package httperr

import (
	"github.com/gin-gonic/gin"

	"branch-reservations/internal/pkg/errs"
)

const requestIDKey = "request_id"

type Body struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// Response is the JSON error envelope: {"error":{"message":...}}.
type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
}

func SetRequestID(c *gin.Context, id string) {
	c.Set(requestIDKey, id)
}

func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func NewResponse(c *gin.Context, status int, msg string) Response {
	return Response{
		Status: status,
		Error:  Body{Message: msg, RequestID: RequestID(c)},
	}
}

// Abort writes msg to the client and keeps err on the context for the error middleware.
// err never reaches the response body.
func Abort(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := NewResponse(c, status, msg)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
