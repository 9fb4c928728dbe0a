package response

import (
	"time"

	"branch-reservations/internal/usecase/commands"
	"branch-reservations/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type ImportResultResponse struct {
	Rows    int `json:"rows"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		Code:        v.Code,
		Description: v.Description,
		UnitPrice:   v.UnitPrice,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromImportResult(r *commands.ImportResult) *ImportResultResponse {
	return &ImportResultResponse{Rows: r.Rows, Updated: r.Updated, Skipped: r.Skipped}
}
