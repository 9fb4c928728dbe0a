//go:build unit

package api_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"branch-reservations/internal/domain/access"
	"branch-reservations/internal/handler/api"
	resdto "branch-reservations/internal/handler/dto/response"
	"branch-reservations/internal/handler/middleware"
	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/usecase/commands"
	"branch-reservations/internal/usecase/queries"
	"branch-reservations/tests/common/builder"
	"branch-reservations/tests/common/httptest"
	commandsmock "branch-reservations/tests/mock/commands"
	queriesmock "branch-reservations/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockProducts *queriesmock.MockProductQueries
	mockArchive  *queriesmock.MockArchiveQueries
	actor        access.Actor
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockProducts = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.mockArchive = queriesmock.NewMockArchiveQueries(s.mockCtrl)
	products := api.NewProductHandler(s.mockProducts, s.mockCommands)
	archive := api.NewArchiveHandler(s.mockArchive)

	s.actor = builder.NewUserBuilder().WithRole("admin").BuildActor()
	s.router.Use(func(c *gin.Context) { middleware.SetActor(c, s.actor) })
	s.router.GET("/products/:code", products.Lookup)
	s.router.POST("/products/prices/import", products.ImportPrices)
	s.router.GET("/archive/:id", archive.Get)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (s *ProductHandlerTestSuite) TestLookup() {
	s.Run("success", func() {
		s.mockProducts.EXPECT().Lookup(gomock.Any(), "X1").Return(&queries.ProductView{
			Code:        "X1",
			Description: "Taladro percutor",
			UnitPrice:   decimal.RequireFromString("250.00"),
			UpdatedAt:   builder.FixedNow,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/X1", nil, "")
		var response resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Taladro percutor", response.Description)
		s.True(decimal.NewFromInt(250).Equal(response.UnitPrice))
	})

	s.Run("error: unknown code", func() {
		s.mockProducts.EXPECT().Lookup(gomock.Any(), "NOPE").Return(nil, queries.ErrProductNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/NOPE", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}

func (s *ProductHandlerTestSuite) TestImportPrices() {
	sheet := "codigo;precio\nX1;300\nA-100;1.250,50\n"

	s.Run("success: raw body", func() {
		s.mockCommands.EXPECT().ImportPrices(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ any, _ access.Actor, r io.Reader) (*commands.ImportResult, error) {
				b, err := io.ReadAll(r)
				s.Require().NoError(err)
				s.Equal(sheet, string(b))
				return &commands.ImportResult{Rows: 2, Updated: 2}, nil
			}).Times(1)

		rec := httptest.PerformUpload(s.T(), s.router, "/products/prices/import", "text/csv", bytes.NewBufferString(sheet), "")

		var response resdto.ImportResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resdto.ImportResultResponse{Rows: 2, Updated: 2}, response)
	})

	s.Run("success: multipart file", func() {
		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		part, err := w.CreateFormFile("file", "precios.csv")
		s.Require().NoError(err)
		_, _ = part.Write([]byte(sheet))
		s.Require().NoError(w.Close())

		s.mockCommands.EXPECT().ImportPrices(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ any, _ access.Actor, r io.Reader) (*commands.ImportResult, error) {
				b, err := io.ReadAll(r)
				s.Require().NoError(err)
				s.Equal(sheet, string(b))
				return &commands.ImportResult{Rows: 2, Updated: 1, Skipped: 1}, nil
			}).Times(1)

		rec := httptest.PerformUpload(s.T(), s.router, "/products/prices/import", w.FormDataContentType(), &body, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: multipart without a file field", func() {
		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		s.Require().NoError(w.WriteField("other", "x"))
		s.Require().NoError(w.Close())

		rec := httptest.PerformUpload(s.T(), s.router, "/products/prices/import", w.FormDataContentType(), &body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing price sheet")
	})

	s.Run("error: unreadable sheet keeps the parser message", func() {
		bad := errs.WithHint(errs.Mark(errs.New("missing columns: code, price"), commands.ErrInvalidPriceSheet), "missing columns: code, price")
		s.mockCommands.EXPECT().ImportPrices(gomock.Any(), s.actor, gomock.Any()).Return(nil, bad).Times(1)

		rec := httptest.PerformUpload(s.T(), s.router, "/products/prices/import", "text/csv", bytes.NewBufferString("foo\n1\n"), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "missing columns")
	})
}

func (s *ProductHandlerTestSuite) TestArchiveGet() {
	s.Run("success", func() {
		s.mockArchive.EXPECT().GetArchived(gomock.Any(), s.actor, int64(11)).Return(&queries.ArchivedReservationView{
			ReservationView: *builder.NewReservationBuilder().WithID(11).BuildView(),
			ArchivedAt:      builder.FixedNow,
			ArchivedBy:      "Admin",
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/archive/11", nil, "")
		var response resdto.ArchivedReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Admin", response.ArchivedBy)
	})

	s.Run("error: not archived", func() {
		s.mockArchive.EXPECT().GetArchived(gomock.Any(), s.actor, int64(12)).Return(nil, queries.ErrArchivedNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/archive/12", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Archived reservation not found")
	})
}
