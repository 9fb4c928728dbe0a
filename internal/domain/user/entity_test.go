//go:build unit

package user_test

import (
	"testing"

	"branch-reservations/internal/domain/user"
	"branch-reservations/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		username, _ := user.NewUsername("laura")
		branch, _ := user.NewBranch("Centro", "Av. Siempre Viva 742", "Lun a Vie 9 a 18", "1144440000")
		expected := user.NewUser(username, "Laura", "hashed_password", user.RoleBranchStaff, branch)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Equal(t, "Centro", actual.Branch().Name)
	})

	t.Run("display name falls back to username", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithDisplayName("").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "laura", actual.DisplayName())
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "plain username",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("ana.gomez") },
			},
			{
				name:   "empty username",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("") },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "too short",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("ab") },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "spaces inside",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("ana gomez") },
				errIs:  user.ErrInvalidUsername,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "branch manager",
				mutate: func(b *builder.UserBuilder) { b.WithRole("branch_manager") },
			},
			{
				name:   "legacy local role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("local") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("root") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("branch validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing branch",
				mutate: func(b *builder.UserBuilder) { b.WithBranch(" ") },
				errIs:  user.ErrBranchRequired,
			},
		})
	})
}

func TestRoleFromStored(t *testing.T) {
	assert.Equal(t, user.RoleAdmin, user.RoleFromStored("ADMIN"))
	assert.Equal(t, user.RoleBranchStaff, user.RoleFromStored("local"))
	assert.Equal(t, user.RoleBranchManager, user.RoleFromStored("gerente"))
	assert.Equal(t, user.RoleBranchStaff, user.RoleFromStored("whatever"))
	assert.True(t, user.RoleBranchManager.IsPrivileged())
	assert.False(t, user.RoleBranchStaff.IsPrivileged())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
