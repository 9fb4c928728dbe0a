package queries

//go:generate go run go.uber.org/mock/mockgen -source=archive.go -destination=../../../tests/mock/queries/archive_mock.go -package=queriesmock

import (
	"context"

	"branch-reservations/internal/domain/access"
	"branch-reservations/internal/infra"
	"branch-reservations/internal/pkg/errs"
)

var (
	ErrArchivedNotFound = errs.New("archived reservation not found")
	ErrArchiveForbidden = errs.New("archive access denied")
)

type ArchiveQueries interface {
	GetArchived(ctx context.Context, actor access.Actor, id int64) (*ArchivedReservationView, error)
}

type ArchiveReadStore interface {
	FindByID(ctx context.Context, id int64) (*ArchivedReservationView, error)
}

type archiveQueriesImpl struct {
	store ArchiveReadStore
}

func NewArchiveQueries(store ArchiveReadStore) ArchiveQueries {
	return &archiveQueriesImpl{store: store}
}

func (q *archiveQueriesImpl) GetArchived(ctx context.Context, actor access.Actor, id int64) (*ArchivedReservationView, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, errs.Mark(err, ErrArchiveForbidden)
	}
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrArchivedNotFound
		}
		return nil, err
	}
	return view, nil
}
