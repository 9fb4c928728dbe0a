package repository

import (
	"context"
	"time"

	"branch-reservations/internal/infra"
	"branch-reservations/internal/infra/converter"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/internal/pkg/pgconv"
	"branch-reservations/internal/usecase/shared"
)

type ArchiveWriteQueries interface {
	ArchiveReservation(ctx context.Context, db pgsql.DBTX, arg pgsql.ArchiveReservationParams) (pgsql.ArchivedDeletions, error)
	DeleteReservation(ctx context.Context, db pgsql.DBTX, id int64) (int64, error)
}

type ArchiveRepository struct {
	queries ArchiveWriteQueries
	db      pgsql.DBTX
}

func NewArchiveRepository(queries ArchiveWriteQueries, db pgsql.DBTX) *ArchiveRepository {
	return &ArchiveRepository{
		queries: queries,
		db:      db,
	}
}

// Move must run inside a transaction: the copy and the delete commit together or not at all.
func (r *ArchiveRepository) Move(ctx context.Context, id int64, archivedBy string, at time.Time) (*shared.ArchivedSnapshot, error) {
	row, err := r.queries.ArchiveReservation(ctx, r.db, pgsql.ArchiveReservationParams{
		ID:         id,
		ArchivedAt: pgconv.TimeToPgtype(at),
		ArchivedBy: archivedBy,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to copy reservation to archive", err)
	}

	deleted, err := r.queries.DeleteReservation(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete archived reservation", err)
	}
	if deleted != 1 {
		return nil, infra.WrapRepoErr("archived reservation vanished before delete", nil, infra.KindConflict)
	}

	snap, err := converter.SnapshotFromRow(row.Reservations)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map archived reservation", err)
	}
	return &shared.ArchivedSnapshot{
		Reservation: snap,
		ArchivedAt:  pgconv.TimeFromPgtype(row.ArchivedAt),
		ArchivedBy:  row.ArchivedBy,
	}, nil
}
