package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, display_name, password_hash, role, branch,
	branch_address, branch_hours, branch_phone, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (Users, error) {
	var u Users
	err := row.Scan(
		&u.ID, &u.Username, &u.DisplayName, &u.PasswordHash, &u.Role, &u.Branch,
		&u.BranchAddress, &u.BranchHours, &u.BranchPhone, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

const getUserByID = `-- name: GetUserByID :one
SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	return scanUser(db.QueryRow(ctx, getUserByID, id))
}

const getUserByUsername = `-- name: GetUserByUsername :one
SELECT ` + userColumns + ` FROM users WHERE lower(username) = lower($1)`

func (q *Queries) GetUserByUsername(ctx context.Context, db DBTX, username string) (Users, error) {
	return scanUser(db.QueryRow(ctx, getUserByUsername, username))
}

// Prefers an active account that has the branch contact data filled in.
const getBranchContact = `-- name: GetBranchContact :one
SELECT branch, branch_address, branch_hours, branch_phone FROM users
WHERE lower(branch) = lower($1)
ORDER BY is_active DESC, (branch_address <> '') DESC, created_at
LIMIT 1`

type BranchContact struct {
	Branch  string
	Address string
	Hours   string
	Phone   string
}

func (q *Queries) GetBranchContact(ctx context.Context, db DBTX, branch string) (BranchContact, error) {
	var b BranchContact
	err := db.QueryRow(ctx, getBranchContact, branch).Scan(&b.Branch, &b.Address, &b.Hours, &b.Phone)
	return b, err
}

const upsertUser = `-- name: UpsertUser :one
INSERT INTO users (
	id, username, display_name, password_hash, role, branch,
	branch_address, branch_hours, branch_phone, is_active, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
ON CONFLICT (username) DO UPDATE SET
	display_name = EXCLUDED.display_name,
	password_hash = EXCLUDED.password_hash,
	role = EXCLUDED.role,
	branch = EXCLUDED.branch,
	branch_address = EXCLUDED.branch_address,
	branch_hours = EXCLUDED.branch_hours,
	branch_phone = EXCLUDED.branch_phone,
	is_active = EXCLUDED.is_active,
	updated_at = EXCLUDED.updated_at
RETURNING id`

type UpsertUserParams struct {
	ID            uuid.UUID
	Username      string
	DisplayName   string
	PasswordHash  string
	Role          string
	Branch        string
	BranchAddress string
	BranchHours   string
	BranchPhone   string
	IsActive      bool
}

func (q *Queries) UpsertUser(ctx context.Context, db DBTX, arg UpsertUserParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, upsertUser,
		arg.ID, arg.Username, arg.DisplayName, arg.PasswordHash, arg.Role, arg.Branch,
		arg.BranchAddress, arg.BranchHours, arg.BranchPhone, arg.IsActive,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}
