package readstore

import (
	"context"
	"strings"

	"branch-reservations/internal/domain/user"
	"branch-reservations/internal/infra"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/internal/pkg/pgconv"
	"branch-reservations/internal/usecase/queries"
	"branch-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Users, error)
	GetUserByUsername(ctx context.Context, db pgsql.DBTX, username string) (pgsql.Users, error)
	GetBranchContact(ctx context.Context, db pgsql.DBTX, branch string) (pgsql.BranchContact, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      pgsql.DBTX
}

func NewUserReadStore(queries UserReadQueries, db pgsql.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toAuthorizedUserView(row), nil
}

// FindCredentials matches the username case-insensitively and returns the stored secret with the account.
func (r *UserReadStore) FindCredentials(ctx context.Context, username string) (*shared.Credentials, error) {
	row, err := r.queries.GetUserByUsername(ctx, r.db, strings.TrimSpace(username))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by username", err)
	}

	return &shared.Credentials{
		UserID:       row.ID,
		Username:     row.Username,
		DisplayName:  displayNameOf(row),
		PasswordHash: row.PasswordHash,
		Role:         user.RoleFromStored(row.Role).String(),
		Branch:       row.Branch,
		IsActive:     row.IsActive,
	}, nil
}

func (r *UserReadStore) FindBranch(ctx context.Context, name string) (*queries.BranchView, error) {
	row, err := r.queries.GetBranchContact(ctx, r.db, strings.TrimSpace(name))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("branch not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find branch", err)
	}

	return &queries.BranchView{
		Name:    row.Branch,
		Address: row.Address,
		Hours:   row.Hours,
		Phone:   row.Phone,
	}, nil
}

func toAuthorizedUserView(row pgsql.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          row.ID,
		Username:    row.Username,
		DisplayName: displayNameOf(row),
		Role:        user.RoleFromStored(row.Role).String(),
		Branch:      row.Branch,
		IsActive:    row.IsActive,
	}
}

func displayNameOf(row pgsql.Users) string {
	if strings.TrimSpace(row.DisplayName) == "" {
		return row.Username
	}
	return row.DisplayName
}
