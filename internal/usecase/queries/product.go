package queries

//go:generate go run go.uber.org/mock/mockgen -source=product.go -destination=../../../tests/mock/queries/product_mock.go -package=queriesmock

import (
	"context"

	"branch-reservations/internal/domain/product"
	"branch-reservations/internal/infra"
	"branch-reservations/internal/pkg/errs"
)

var ErrProductNotFound = errs.New("product not found")

type ProductQueries interface {
	Lookup(ctx context.Context, code string) (*ProductView, error)
}

type ProductReadStore interface {
	FindByCode(ctx context.Context, code string) (*ProductView, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

func (q *productQueriesImpl) Lookup(ctx context.Context, code string) (*ProductView, error) {
	normalized, err := product.NormalizeCode(code)
	if err != nil {
		return nil, errs.Mark(err, ErrProductNotFound)
	}
	view, err := q.store.FindByCode(ctx, normalized)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return view, nil
}
