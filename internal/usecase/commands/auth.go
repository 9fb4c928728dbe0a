package commands

//go:generate go run go.uber.org/mock/mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strings"

	"branch-reservations/internal/domain/access"
	"branch-reservations/internal/domain/user"
	"branch-reservations/internal/infra"
	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/pkg/jwt"
	"branch-reservations/internal/pkg/password"
	"branch-reservations/internal/usecase/queries"
	"branch-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTokenGeneration = errs.New("token generation failed")
	ErrUserValidation  = errs.New("user validation error")
)

// LoginResult separates a rejected login (Accepted false, nil error) from a broken system.
type LoginResult struct {
	Accepted    bool
	User        *queries.AuthorizedUserView
	AccessToken string
}

type UpsertUserInput struct {
	Username      string
	DisplayName   string
	Password      string
	Role          string
	Branch        string
	BranchAddress string
	BranchHours   string
	BranchPhone   string
}

type AuthCommands interface {
	Login(ctx context.Context, username, secret string) (*LoginResult, error)
	UpsertUser(ctx context.Context, in UpsertUserInput) (uuid.UUID, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, username, secret string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || secret == "" {
		return &LoginResult{Accepted: false}, nil
	}

	creds, err := a.uow.CommandReads().CredentialsByUsername(ctx, username)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &LoginResult{Accepted: false}, nil
		}
		return nil, err
	}

	if !creds.IsActive {
		slog.Info("login rejected for inactive user", "username", username)
		return &LoginResult{Accepted: false}, nil
	}

	if err := password.Verify(creds.PasswordHash, secret); err != nil {
		return &LoginResult{Accepted: false}, nil
	}
	if !password.IsHash(creds.PasswordHash) {
		slog.Warn("user still has a plaintext secret", "username", username)
	}

	role := user.RoleFromStored(creds.Role)
	if !(access.Actor{Role: role, Branch: creds.Branch}).HasBranch() {
		slog.Warn("login rejected for user without a branch", "username", username, "role", role.String())
		return &LoginResult{Accepted: false}, nil
	}
	token, err := a.jwtService.GenerateToken(jwt.Subject{
		UserID:      creds.UserID,
		Username:    creds.Username,
		DisplayName: creds.DisplayName,
		Role:        role,
		Branch:      creds.Branch,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Accepted: true,
		User: &queries.AuthorizedUserView{
			ID:          creds.UserID,
			Username:    creds.Username,
			DisplayName: creds.DisplayName,
			Role:        role.String(),
			Branch:      creds.Branch,
			IsActive:    creds.IsActive,
		},
		AccessToken: token,
	}, nil
}

// UpsertUser creates a credential row or replaces the one with the same username.
func (a *authCommandsImpl) UpsertUser(ctx context.Context, in UpsertUserInput) (uuid.UUID, error) {
	username, err := user.NewUsername(in.Username)
	if err != nil {
		return uuid.Nil, invalid(err, ErrUserValidation)
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return uuid.Nil, invalid(err, ErrUserValidation)
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return uuid.Nil, invalid(err, ErrUserValidation)
	}
	branch, err := user.NewBranch(in.Branch, in.BranchAddress, in.BranchHours, in.BranchPhone)
	if err != nil {
		return uuid.Nil, invalid(err, ErrUserValidation)
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return uuid.Nil, err
	}

	u := user.NewUser(username, strings.TrimSpace(in.DisplayName), hash, role, branch)

	var id uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Users().Upsert(ctx, u)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
