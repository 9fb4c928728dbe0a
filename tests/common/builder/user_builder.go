//go:build unit || e2e

package builder

import (
	"branch-reservations/internal/domain/access"
	"branch-reservations/internal/domain/user"
	reqdto "branch-reservations/internal/handler/dto/request"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/internal/pkg/pgconv"
	"branch-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Username     string
	DisplayName  string
	PasswordHash string
	Role         string
	Branch       string
	Address      string
	Hours        string
	Phone        string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.MustParse("6f1c2f0e-3b7a-4c59-9d1e-2a4b5c6d7e8f"),
		Username:     "laura",
		DisplayName:  "Laura",
		PasswordHash: "hashed_password",
		Role:         "branch_staff",
		Branch:       "Centro",
		Address:      "Av. Siempre Viva 742",
		Hours:        "Lun a Vie 9 a 18",
		Phone:        "1144440000",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	branch, err := user.NewBranch(u.Branch, u.Address, u.Hours, u.Phone)
	if err != nil {
		return nil, err
	}

	return user.NewUser(username, u.DisplayName, u.PasswordHash, role, branch), nil
}

func (u *UserBuilder) BuildInfra() pgsql.Users {
	return pgsql.Users{
		ID:            u.ID,
		Username:      u.Username,
		DisplayName:   u.DisplayName,
		PasswordHash:  u.PasswordHash,
		Role:          u.Role,
		Branch:        u.Branch,
		BranchAddress: u.Address,
		BranchHours:   u.Hours,
		BranchPhone:   u.Phone,
		IsActive:      u.IsActive,
		CreatedAt:     pgconv.TimeToPgtype(FixedNow),
		UpdatedAt:     pgconv.TimeToPgtype(FixedNow),
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        user.RoleFromStored(u.Role).String(),
		Branch:      u.Branch,
		IsActive:    u.IsActive,
	}
}

func (u *UserBuilder) BuildActor() access.Actor {
	return access.Actor{
		UserID:      u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        user.RoleFromStored(u.Role),
		Branch:      u.Branch,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithDisplayName(name string) *UserBuilder {
	u.DisplayName = name
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithBranch(branch string) *UserBuilder {
	u.Branch = branch
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

// BuildLoginDTO is the login body this user would send; the secret matches dbtest.TestPassword.
func (u *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Username: u.Username, Password: "password123"}
}
