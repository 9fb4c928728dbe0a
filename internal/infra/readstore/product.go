package readstore

import (
	"context"

	"branch-reservations/internal/domain/product"
	"branch-reservations/internal/infra"
	"branch-reservations/internal/infra/converter"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/internal/pkg/pgconv"
	"branch-reservations/internal/usecase/queries"
)

type ProductReadQueries interface {
	GetProduct(ctx context.Context, db pgsql.DBTX, code string) (pgsql.Products, error)
}

type ProductReadStore struct {
	queries ProductReadQueries
	db      pgsql.DBTX
}

func NewProductReadStore(queries ProductReadQueries, db pgsql.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProductReadStore) FindByCode(ctx context.Context, code string) (*queries.ProductView, error) {
	p, err := r.FindProduct(ctx, code)
	if err != nil {
		return nil, err
	}
	return &queries.ProductView{
		Code:        p.Code,
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func (r *ProductReadStore) FindProduct(ctx context.Context, code string) (*product.Product, error) {
	row, err := r.queries.GetProduct(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	p, err := converter.ProductFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map product", err)
	}
	return &p, nil
}
