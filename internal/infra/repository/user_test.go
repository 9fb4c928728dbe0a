//go:build unit

package repository

import (
	"context"
	"testing"

	"branch-reservations/internal/infra"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Upsert(t *testing.T) {
	storedID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{
			name:      "success",
			mockError: nil,
			wantError: false,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := builder.NewUserBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries := new(MockWriteQueries)
			mockQueries.On("UpsertUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p pgsql.UpsertUserParams) bool {
				return p.Username == "laura" && p.Branch == "Centro" && p.Role == "branch_staff"
			})).Return(storedID, tt.mockError)

			repo := NewUserRepository(mockQueries, mockQueries)
			id, err := repo.Upsert(context.Background(), u)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, storedID, id)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
