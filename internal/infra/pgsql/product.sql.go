package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getProduct = `-- name: GetProduct :one
SELECT code, description, unit_price::text, updated_at FROM products WHERE code = $1`

func (q *Queries) GetProduct(ctx context.Context, db DBTX, code string) (Products, error) {
	var p Products
	err := db.QueryRow(ctx, getProduct, code).Scan(&p.Code, &p.Description, &p.UnitPrice, &p.UpdatedAt)
	return p, err
}

const updateProductPrice = `-- name: UpdateProductPrice :execrows
UPDATE products SET unit_price = $2::numeric, updated_at = $3 WHERE code = $1`

type UpdateProductPriceParams struct {
	Code      string
	UnitPrice string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateProductPrice(ctx context.Context, db DBTX, arg UpdateProductPriceParams) (int64, error) {
	tag, err := db.Exec(ctx, updateProductPrice, arg.Code, arg.UnitPrice, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
