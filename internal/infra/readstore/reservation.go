package readstore

import (
	"context"
	"strings"

	"branch-reservations/internal/domain/access"
	"branch-reservations/internal/domain/reservation"
	"branch-reservations/internal/infra"
	"branch-reservations/internal/infra/converter"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/internal/pkg/pgconv"
	"branch-reservations/internal/usecase/queries"
)

type ReservationReadQueries interface {
	GetReservation(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Reservations, error)
	GetReservationForUpdate(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Reservations, error)
	SearchReservations(ctx context.Context, db pgsql.DBTX, arg pgsql.SearchReservationsParams) ([]pgsql.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      pgsql.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db pgsql.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	snap, err := r.SnapshotByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return queries.ViewFromSnapshot(snap), nil
}

func (r *ReservationReadStore) SnapshotByID(ctx context.Context, id int64) (reservation.Snapshot, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	return toSnapshot(row, err)
}

// SnapshotForUpdate must run inside a transaction; the row stays locked until it ends.
func (r *ReservationReadStore) SnapshotForUpdate(ctx context.Context, id int64) (reservation.Snapshot, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	return toSnapshot(row, err)
}

func (r *ReservationReadStore) Search(ctx context.Context, filter access.Filter, limit int) ([]*queries.ReservationView, error) {
	if filter.MatchNone {
		return []*queries.ReservationView{}, nil
	}
	params := pgsql.SearchReservationsParams{
		OriginBranch:      filter.OriginBranch,
		DestinationBranch: filter.DestinationBranch,
		IncludeDeleted:    filter.IncludeDeleted,
		Limit:             int32(limit),
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		params.Pattern = pgsql.ContainsPattern(q)
	}

	rows, err := r.queries.SearchReservations(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search reservations", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		snap, err := converter.SnapshotFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to map reservation", err)
		}
		views = append(views, queries.ViewFromSnapshot(snap))
	}
	return views, nil
}

func toSnapshot(row pgsql.Reservations, err error) (reservation.Snapshot, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return reservation.Snapshot{}, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return reservation.Snapshot{}, infra.WrapRepoErr("failed to find reservation", err)
	}
	snap, err := converter.SnapshotFromRow(row)
	if err != nil {
		return reservation.Snapshot{}, infra.WrapRepoErr("failed to map reservation", err)
	}
	return snap, nil
}
