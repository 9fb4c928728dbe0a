package queries

//go:generate go run go.uber.org/mock/mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

import (
	"context"

	"branch-reservations/internal/domain/access"
	"branch-reservations/internal/infra"
	"branch-reservations/internal/pkg/errs"
)

var ErrReservationNotFound = errs.New("reservation not found")

const (
	defaultListLimit = 500
	maxListLimit     = 2000
)

type ListParams struct {
	Query string
	Scope access.Scope
	Limit int
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor access.Actor, id int64) (*ReservationView, error)
	List(ctx context.Context, actor access.Actor, params ListParams) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	// Search applies the filter and returns rows newest first.
	Search(ctx context.Context, filter access.Filter, limit int) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

// GetByID reports rows the actor may not see as not found.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor access.Actor, id int64) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !access.CanAccess(actor, RecordOf(view)) {
		return nil, ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, actor access.Actor, params ListParams) ([]*ReservationView, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	filter := access.FilterFor(actor, params.Scope, params.Query)
	return q.store.Search(ctx, filter, limit)
}

func RecordOf(v *ReservationView) access.Record {
	return access.Record{
		OriginBranch:      v.OriginBranch,
		DestinationBranch: v.DestinationBranch,
		Deleted:           v.Deleted,
	}
}
