package api

import (
	"net/http"

	"branch-reservations/internal/domain/access"
	"branch-reservations/internal/handler/httperr"
	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/usecase/commands"
	"branch-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

var errorMappings = []errorMapping{
	{commands.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{queries.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{queries.ErrArchivedNotFound, http.StatusNotFound, "Archived reservation not found"},
	{queries.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{commands.ErrProductNotFound, http.StatusUnprocessableEntity, "Unknown product code"},
	{commands.ErrInvalidTransition, http.StatusConflict, "Status change not allowed"},
	{commands.ErrConcurrentUpdate, http.StatusConflict, "Reservation was modified by someone else, reload and retry"},
	{commands.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{queries.ErrArchiveForbidden, http.StatusForbidden, "Forbidden"},
	{access.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{commands.ErrDomainValidation, http.StatusUnprocessableEntity, "Validation failed"},
	{commands.ErrUserValidation, http.StatusUnprocessableEntity, "Validation failed"},
	{commands.ErrInvalidPriceSheet, http.StatusBadRequest, "Invalid price sheet"},
}

// abortWithUseCaseError maps use case errors to a status; anything unknown is a 500 with a generic message.
func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			msg := m.msg
			if m.status == http.StatusUnprocessableEntity || m.status == http.StatusBadRequest {
				msg = errs.Hint(err, m.msg)
			}
			httperr.Abort(c, m.status, err, msg)
			return
		}
	}
	httperr.Abort(c, http.StatusInternalServerError, err, "Internal error")
}
