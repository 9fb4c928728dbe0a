package queries

//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../../../tests/mock/queries/user_mock.go -package=queriesmock

import (
	"context"

	"github.com/google/uuid"

	"branch-reservations/internal/infra"
	"branch-reservations/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

// UserQueries resolves the session owner on every authenticated "me" call, so a
// deactivated account loses access before its token expires.
type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	// FindBranch returns contact data of the first active user registered at the branch.
	FindBranch(ctx context.Context, name string) (*BranchView, error)
}

type userQueries struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueries{store: store}
}

func (q *userQueries) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	u, err := q.store.FindByID(ctx, userID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, err
	case !u.IsActive:
		return nil, ErrUserInactive
	}
	return u, nil
}
