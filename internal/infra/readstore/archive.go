package readstore

import (
	"context"

	"branch-reservations/internal/infra"
	"branch-reservations/internal/infra/converter"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/internal/pkg/pgconv"
	"branch-reservations/internal/usecase/queries"
)

type ArchiveReadQueries interface {
	GetArchivedReservation(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.ArchivedDeletions, error)
}

type ArchiveReadStore struct {
	queries ArchiveReadQueries
	db      pgsql.DBTX
}

func NewArchiveReadStore(queries ArchiveReadQueries, db pgsql.DBTX) *ArchiveReadStore {
	return &ArchiveReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ArchiveReadStore) FindByID(ctx context.Context, id int64) (*queries.ArchivedReservationView, error) {
	row, err := r.queries.GetArchivedReservation(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("archived reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find archived reservation", err)
	}

	snap, err := converter.SnapshotFromRow(row.Reservations)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map archived reservation", err)
	}
	return &queries.ArchivedReservationView{
		ReservationView: *queries.ViewFromSnapshot(snap),
		ArchivedAt:      pgconv.TimeFromPgtype(row.ArchivedAt),
		ArchivedBy:      row.ArchivedBy,
	}, nil
}
