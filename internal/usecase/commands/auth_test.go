//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/pkg/jwt"
	"branch-reservations/internal/pkg/password"
	"branch-reservations/internal/usecase/commands"
	"branch-reservations/internal/usecase/shared"
	"branch-reservations/tests/common/builder"
	"branch-reservations/tests/common/fakeuow"

	"github.com/stretchr/testify/suite"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctx        context.Context
	uow        *fakeuow.UoW
	jwtService *jwt.Service
	cmds       commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.uow = fakeuow.New()
	s.jwtService = jwt.NewService("unit-test-secret", time.Hour)
	s.cmds = commands.NewAuthCommands(s.uow, s.jwtService)
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) putUser(b *builder.UserBuilder, stored string) {
	s.uow.PutCredentials(shared.Credentials{
		UserID:       b.ID,
		Username:     b.Username,
		DisplayName:  b.DisplayName,
		PasswordHash: stored,
		Role:         b.Role,
		Branch:       b.Branch,
		IsActive:     b.IsActive,
	})
}

func (s *AuthCommandsTestSuite) TestLogin_Accepted() {
	hash, err := password.HashPassword("password123")
	s.Require().NoError(err)
	b := builder.NewUserBuilder().WithRole("branch_manager")
	s.putUser(b, hash)

	result, err := s.cmds.Login(s.ctx, " laura ", "password123")

	s.Require().NoError(err)
	s.True(result.Accepted)
	s.Equal(b.BuildReadModel(), result.User)

	claims, err := s.jwtService.ValidateToken(result.AccessToken)
	s.Require().NoError(err)
	s.Equal(b.ID, claims.UserID)
	s.Equal("branch_manager", claims.Role)
	s.Equal("Centro", claims.Branch)
}

func (s *AuthCommandsTestSuite) TestLogin_PlaintextSecret() {
	s.putUser(builder.NewUserBuilder(), "legacy-secret")

	result, err := s.cmds.Login(s.ctx, "laura", "legacy-secret")

	s.Require().NoError(err)
	s.True(result.Accepted)
}

func (s *AuthCommandsTestSuite) TestLogin_Rejected() {
	hash, err := password.HashPassword("password123")
	s.Require().NoError(err)
	s.putUser(builder.NewUserBuilder(), hash)
	s.putUser(builder.NewUserBuilder().WithUsername("gone").AsInactive(), hash)
	branchless := builder.NewUserBuilder().WithUsername("sinsucursal")
	branchless.Branch = ""
	s.putUser(branchless, hash)

	tests := []struct {
		name     string
		username string
		secret   string
	}{
		{name: "wrong secret", username: "laura", secret: "nope-nope"},
		{name: "unknown user", username: "nobody", secret: "password123"},
		{name: "inactive user", username: "gone", secret: "password123"},
		{name: "staff without a branch", username: "sinsucursal", secret: "password123"},
		{name: "empty username", username: "  ", secret: "password123"},
		{name: "empty secret", username: "laura", secret: ""},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			result, err := s.cmds.Login(s.ctx, tt.username, tt.secret)

			s.Require().NoError(err)
			s.False(result.Accepted)
			s.Empty(result.AccessToken)
			s.Nil(result.User)
		})
	}
}

func (s *AuthCommandsTestSuite) TestUpsertUser() {
	in := commands.UpsertUserInput{
		Username:      "ana",
		DisplayName:   " Ana ",
		Password:      "s3cret-pass",
		Role:          "branch_manager",
		Branch:        "Norte",
		BranchAddress: "Calle 1",
		BranchHours:   "9 a 18",
		BranchPhone:   "1144441111",
	}

	id, err := s.cmds.UpsertUser(s.ctx, in)
	s.Require().NoError(err)

	stored, ok := s.uow.Credentials("ana")
	s.Require().True(ok)
	s.Equal(id, stored.UserID)
	s.Equal("Ana", stored.DisplayName)
	s.Equal("branch_manager", stored.Role)
	s.Equal("Norte", stored.Branch)
	s.True(password.IsHash(stored.PasswordHash))
	s.NoError(password.Verify(stored.PasswordHash, "s3cret-pass"))

	// same username replaces the row and keeps its id
	in.Role = "admin"
	again, err := s.cmds.UpsertUser(s.ctx, in)
	s.Require().NoError(err)
	s.Equal(id, again)
	stored, _ = s.uow.Credentials("ana")
	s.Equal("admin", stored.Role)
}

func (s *AuthCommandsTestSuite) TestUpsertUser_Validation() {
	valid := commands.UpsertUserInput{Username: "ana", Password: "s3cret-pass", Role: "branch_staff", Branch: "Norte"}

	tests := []struct {
		name   string
		mutate func(*commands.UpsertUserInput)
	}{
		{name: "short username", mutate: func(in *commands.UpsertUserInput) { in.Username = "a" }},
		{name: "weak password", mutate: func(in *commands.UpsertUserInput) { in.Password = "short" }},
		{name: "unknown role", mutate: func(in *commands.UpsertUserInput) { in.Role = "overlord" }},
		{name: "missing branch", mutate: func(in *commands.UpsertUserInput) { in.Branch = " " }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			in := valid
			tt.mutate(&in)

			_, err := s.cmds.UpsertUser(s.ctx, in)

			s.True(errs.Is(err, commands.ErrUserValidation), "got %v", err)
			s.NotEmpty(errs.Hint(err, ""))
		})
	}
	_, ok := s.uow.Credentials("ana")
	s.False(ok)
}
