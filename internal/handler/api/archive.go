package api

import (
	"net/http"

	resdto "branch-reservations/internal/handler/dto/response"
	"branch-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ArchiveHandler struct {
	q queries.ArchiveQueries
}

func NewArchiveHandler(q queries.ArchiveQueries) *ArchiveHandler {
	return &ArchiveHandler{q: q}
}

// @Summary Get archived reservation
// @Tags archive
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ArchivedReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /archive/{id} [get]
func (h *ArchiveHandler) Get(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}
	view, err := h.q.GetArchived(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromArchivedView(view))
}
