package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, customer_name, customer_phone, customer_email, product_code, product_description,
	quantity, total::text, origin_branch, destination_branch, destination_contact, created_by, modified_by, comment,
	status, deleted, created_at, updated_at, intake_at, closed_at, received_by, closed_by, version`

func scanReservation(row pgx.Row, extra ...any) (Reservations, error) {
	var r Reservations
	dest := []any{
		&r.ID, &r.CustomerName, &r.CustomerPhone, &r.CustomerEmail, &r.ProductCode, &r.ProductDescription,
		&r.Quantity, &r.Total, &r.OriginBranch, &r.DestinationBranch, &r.DestinationContact, &r.CreatedBy,
		&r.ModifiedBy, &r.Comment, &r.Status, &r.Deleted, &r.CreatedAt, &r.UpdatedAt, &r.IntakeAt, &r.ClosedAt,
		&r.ReceivedBy, &r.ClosedBy, &r.Version,
	}
	err := row.Scan(append(dest, extra...)...)
	return r, err
}

const createReservation = `-- name: CreateReservation :one
INSERT INTO reservations (
	customer_name, customer_phone, customer_email, product_code, product_description, quantity, total,
	origin_branch, destination_branch, destination_contact, created_by, comment, status, deleted,
	created_at, updated_at, version
) VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8, $9, $10, $11, $12, $13, FALSE, $14, $14, 1)
RETURNING id`

type CreateReservationParams struct {
	CustomerName       string
	CustomerPhone      string
	CustomerEmail      string
	ProductCode        string
	ProductDescription string
	Quantity           int32
	Total              string
	OriginBranch       string
	DestinationBranch  string
	DestinationContact string
	CreatedBy          string
	Comment            string
	Status             string
	CreatedAt          pgtype.Timestamptz
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (int64, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.CustomerName, arg.CustomerPhone, arg.CustomerEmail, arg.ProductCode, arg.ProductDescription,
		arg.Quantity, arg.Total, arg.OriginBranch, arg.DestinationBranch, arg.DestinationContact,
		arg.CreatedBy, arg.Comment, arg.Status, arg.CreatedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const updateReservation = `-- name: UpdateReservation :execrows
UPDATE reservations SET
	customer_name = $3, customer_phone = $4, customer_email = $5,
	product_code = $6, product_description = $7, quantity = $8, total = $9::numeric,
	modified_by = $10, comment = $11, status = $12, deleted = $13, updated_at = $14,
	intake_at = $15, closed_at = $16, received_by = $17, closed_by = $18,
	version = version + 1
WHERE id = $1 AND version = $2`

type UpdateReservationParams struct {
	ID                 int64
	Version            int32
	CustomerName       string
	CustomerPhone      string
	CustomerEmail      string
	ProductCode        string
	ProductDescription string
	Quantity           int32
	Total              string
	ModifiedBy         string
	Comment            string
	Status             string
	Deleted            bool
	UpdatedAt          pgtype.Timestamptz
	IntakeAt           pgtype.Timestamptz
	ClosedAt           pgtype.Timestamptz
	ReceivedBy         string
	ClosedBy           string
}

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReservation,
		arg.ID, arg.Version, arg.CustomerName, arg.CustomerPhone, arg.CustomerEmail,
		arg.ProductCode, arg.ProductDescription, arg.Quantity, arg.Total,
		arg.ModifiedBy, arg.Comment, arg.Status, arg.Deleted, arg.UpdatedAt,
		arg.IntakeAt, arg.ClosedAt, arg.ReceivedBy, arg.ClosedBy,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getReservation = `-- name: GetReservation :one
SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

func (q *Queries) GetReservation(ctx context.Context, db DBTX, id int64) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, getReservation, id))
}

const getReservationForUpdate = getReservation + ` FOR UPDATE`

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id int64) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, getReservationForUpdate, id))
}

const searchReservations = `-- name: SearchReservations :many
SELECT ` + reservationColumns + ` FROM reservations
WHERE ($1::text = '' OR origin_branch = $1)
  AND ($2::text = '' OR destination_branch = $2)
  AND ($3::boolean OR deleted = FALSE)
  AND ($4::text = '' OR customer_name ILIKE $4 OR product_code ILIKE $4 OR created_by ILIKE $4 OR origin_branch ILIKE $4)
ORDER BY id DESC
LIMIT $5`

type SearchReservationsParams struct {
	OriginBranch      string
	DestinationBranch string
	IncludeDeleted    bool
	// Pattern is an ILIKE pattern or empty for no text filter.
	Pattern string
	Limit   int32
}

func (q *Queries) SearchReservations(ctx context.Context, db DBTX, arg SearchReservationsParams) ([]Reservations, error) {
	rows, err := db.Query(ctx, searchReservations,
		arg.OriginBranch, arg.DestinationBranch, arg.IncludeDeleted, arg.Pattern, arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Reservations
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
