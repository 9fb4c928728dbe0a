package repository

import (
	"context"

	"branch-reservations/internal/domain/reservation"
	"branch-reservations/internal/infra"
	"branch-reservations/internal/infra/converter"
	"branch-reservations/internal/infra/pgsql"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateReservationParams) (int64, error)
	UpdateReservation(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateReservationParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      pgsql.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db pgsql.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	id, err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	res.AssignID(id)
	return id, nil
}

func (r *ReservationRepository) Save(ctx context.Context, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservation(ctx, r.db, converter.ReservationToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation changed since it was read", nil, infra.KindConflict)
	}
	res.MarkSaved()
	return nil
}
