//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"branch-reservations/internal/infra"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByUsername(ctx context.Context, db pgsql.DBTX, username string) (pgsql.Users, error) {
	args := m.Called(ctx, db, username)
	return args.Get(0).(pgsql.Users), args.Error(1)
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db pgsql.DBTX, id uuid.UUID) (pgsql.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgsql.Users), args.Error(1)
}

func (m *MockUserReadQueries) GetBranchContact(ctx context.Context, db pgsql.DBTX, branch string) (pgsql.BranchContact, error) {
	args := m.Called(ctx, db, branch)
	return args.Get(0).(pgsql.BranchContact), args.Error(1)
}

func TestFindCredentials(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().AsInactive().BuildInfra()
	legacyUser := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
		b.Role = "gerente"
		b.DisplayName = ""
	}).BuildInfra()

	tests := []struct {
		name        string
		username    string
		mockReturn  pgsql.Users
		mockError   error
		wantRole    string
		wantDisplay string
		wantKind    infra.RepositoryErrorKind
	}{
		{
			name:        "active user",
			username:    testUser.Username,
			mockReturn:  testUser,
			wantRole:    "branch_staff",
			wantDisplay: "Laura",
		},
		{
			name:        "inactive user is still returned",
			username:    inactiveUser.Username,
			mockReturn:  inactiveUser,
			wantRole:    "branch_staff",
			wantDisplay: "Laura",
		},
		{
			name:        "legacy role and empty display name",
			username:    legacyUser.Username,
			mockReturn:  legacyUser,
			wantRole:    "branch_manager",
			wantDisplay: "laura",
		},
		{
			name:       "user not found",
			username:   "nobody",
			mockReturn: pgsql.Users{},
			mockError:  sql.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			username:   testUser.Username,
			mockReturn: pgsql.Users{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByUsername", mock.Anything, mock.Anything, tt.username).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			creds, err := readStore.FindCredentials(context.Background(), "  "+tt.username+" ")

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, creds)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn.PasswordHash, creds.PasswordHash)
				assert.Equal(t, tt.mockReturn.IsActive, creds.IsActive)
				assert.Equal(t, tt.wantRole, creds.Role)
				assert.Equal(t, tt.wantDisplay, creds.DisplayName)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn pgsql.Users
		mockError  error
		wantError  bool
	}{
		{
			name:       "success",
			userID:     testUser.ID,
			mockReturn: testUser,
		},
		{
			name:       "user not found",
			userID:     uuid.New(),
			mockReturn: pgsql.Users{},
			mockError:  sql.ErrNoRows,
			wantError:  true,
		},
		{
			name:       "database error",
			userID:     testUser.ID,
			mockReturn: pgsql.Users{},
			mockError:  assert.AnError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)

				if tt.mockError == sql.ErrNoRows {
					assert.True(t, infra.IsKind(err, infra.KindNotFound))
				} else {
					assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, view.ID)
				assert.Equal(t, "Centro", view.Branch)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindBranch(t *testing.T) {
	mockQueries := new(MockUserReadQueries)
	mockQueries.On("GetBranchContact", mock.Anything, mock.Anything, "Norte").Return(pgsql.BranchContact{
		Branch:  "Norte",
		Address: "Calle 1",
		Hours:   "9 a 18",
		Phone:   "555",
	}, nil)
	mockQueries.On("GetBranchContact", mock.Anything, mock.Anything, "Oeste").Return(pgsql.BranchContact{}, sql.ErrNoRows)

	readStore := NewUserReadStore(mockQueries, nil)

	branch, err := readStore.FindBranch(context.Background(), " Norte ")
	require.NoError(t, err)
	assert.Equal(t, "Calle 1", branch.Address)

	_, err = readStore.FindBranch(context.Background(), "Oeste")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
