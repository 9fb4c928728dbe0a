package repository

import (
	"context"

	"branch-reservations/internal/domain/user"
	"branch-reservations/internal/infra"
	"branch-reservations/internal/infra/converter"
	"branch-reservations/internal/infra/pgsql"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	UpsertUser(ctx context.Context, db pgsql.DBTX, arg pgsql.UpsertUserParams) (uuid.UUID, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      pgsql.DBTX
}

func NewUserRepository(queries UserWriteQueries, db pgsql.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

// Upsert inserts the user or replaces the stored account with the same username, keeping its ID.
func (r *UserRepository) Upsert(ctx context.Context, u *user.User) (uuid.UUID, error) {
	id, err := r.queries.UpsertUser(ctx, r.db, converter.UserToUpsertParams(u))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert user", err)
	}
	return id, nil
}
