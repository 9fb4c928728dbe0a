package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const archiveReservation = `-- name: ArchiveReservation :one
INSERT INTO archived_deletions (
	id, customer_name, customer_phone, customer_email, product_code, product_description, quantity, total,
	origin_branch, destination_branch, destination_contact, created_by, modified_by, comment, status, deleted,
	created_at, updated_at, intake_at, closed_at, received_by, closed_by, version, archived_at, archived_by
)
SELECT
	id, customer_name, customer_phone, customer_email, product_code, product_description, quantity, total,
	origin_branch, destination_branch, destination_contact, created_by, modified_by, comment, status, deleted,
	created_at, updated_at, intake_at, closed_at, received_by, closed_by, version, $2, $3
FROM reservations
WHERE id = $1
FOR UPDATE
RETURNING ` + reservationColumns + `, archived_at, archived_by`

type ArchiveReservationParams struct {
	ID         int64
	ArchivedAt pgtype.Timestamptz
	ArchivedBy string
}

func (q *Queries) ArchiveReservation(ctx context.Context, db DBTX, arg ArchiveReservationParams) (ArchivedDeletions, error) {
	var a ArchivedDeletions
	r, err := scanReservation(db.QueryRow(ctx, archiveReservation, arg.ID, arg.ArchivedAt, arg.ArchivedBy), &a.ArchivedAt, &a.ArchivedBy)
	a.Reservations = r
	return a, err
}

const deleteReservation = `-- name: DeleteReservation :execrows
DELETE FROM reservations WHERE id = $1`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id int64) (int64, error) {
	tag, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getArchivedReservation = `-- name: GetArchivedReservation :one
SELECT ` + reservationColumns + `, archived_at, archived_by FROM archived_deletions WHERE id = $1`

func (q *Queries) GetArchivedReservation(ctx context.Context, db DBTX, id int64) (ArchivedDeletions, error) {
	var a ArchivedDeletions
	r, err := scanReservation(db.QueryRow(ctx, getArchivedReservation, id), &a.ArchivedAt, &a.ArchivedBy)
	a.Reservations = r
	return a, err
}
