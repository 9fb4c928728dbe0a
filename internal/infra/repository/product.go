package repository

import (
	"context"
	"time"

	"branch-reservations/internal/infra"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

type ProductWriteQueries interface {
	UpdateProductPrice(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateProductPriceParams) (int64, error)
}

type ProductRepository struct {
	queries ProductWriteQueries
	db      pgsql.DBTX
}

func NewProductRepository(queries ProductWriteQueries, db pgsql.DBTX) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
	}
}

// UpdatePrice reports false when no product has the code.
func (r *ProductRepository) UpdatePrice(ctx context.Context, code string, price decimal.Decimal, at time.Time) (bool, error) {
	affected, err := r.queries.UpdateProductPrice(ctx, r.db, pgsql.UpdateProductPriceParams{
		Code:      code,
		UnitPrice: pgconv.DecimalToText(price),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update product price", err)
	}
	return affected > 0, nil
}
