package api

import (
	"io"
	"net/http"
	"strings"

	resdto "branch-reservations/internal/handler/dto/response"
	"branch-reservations/internal/handler/httperr"
	"branch-reservations/internal/usecase/commands"
	"branch-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const maxPriceSheetBytes = 10 << 20

type ProductHandler struct {
	q    queries.ProductQueries
	cmds commands.CatalogCommands
}

func NewProductHandler(q queries.ProductQueries, cmds commands.CatalogCommands) *ProductHandler {
	return &ProductHandler{q: q, cmds: cmds}
}

// @Summary Look up product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param code path string true "Product code"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /products/{code} [get]
func (h *ProductHandler) Lookup(c *gin.Context) {
	view, err := h.q.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Import prices
// @Description Upload a delimited sheet with code and price columns, as a multipart "file" field or as the raw body
// @Tags products
// @Accept mpfd
// @Accept plain
// @Produce json
// @Security BearerAuth
// @Param file formData file false "Price sheet"
// @Success 200 {object} resdto.ImportResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /products/prices/import [post]
func (h *ProductHandler) ImportPrices(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	body, closeFn, err := priceSheetBody(c)
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Missing price sheet")
		return
	}
	defer closeFn()

	result, err := h.cmds.ImportPrices(c.Request.Context(), actor, io.LimitReader(body, maxPriceSheetBytes))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromImportResult(result))
}

func priceSheetBody(c *gin.Context) (io.Reader, func(), error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("file")
		if err != nil {
			return nil, nil, err
		}
		f, err := fh.Open()
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Close() }, nil
	}
	return c.Request.Body, func() {}, nil
}
