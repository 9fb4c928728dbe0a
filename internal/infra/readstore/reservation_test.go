//go:build unit

package readstore

import (
	"context"
	"testing"

	"branch-reservations/internal/domain/access"
	"branch-reservations/internal/infra"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationReadQueries struct {
	mock.Mock
}

func (m *MockReservationReadQueries) GetReservation(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Reservations, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgsql.Reservations), args.Error(1)
}

func (m *MockReservationReadQueries) GetReservationForUpdate(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Reservations, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgsql.Reservations), args.Error(1)
}

func (m *MockReservationReadQueries) SearchReservations(ctx context.Context, db pgsql.DBTX, arg pgsql.SearchReservationsParams) ([]pgsql.Reservations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgsql.Reservations), args.Error(1)
}

func TestReservationReadStore_FindByID(t *testing.T) {
	t.Run("maps stored row", func(t *testing.T) {
		row := builder.NewReservationBuilder().WithID(5).BuildInfra()
		row.Status = "pendiente"

		mockQueries := new(MockReservationReadQueries)
		mockQueries.On("GetReservation", mock.Anything, mock.Anything, int64(5)).Return(row, nil)

		view, err := NewReservationReadStore(mockQueries, nil).FindByID(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, int64(5), view.ID)
		assert.Equal(t, "awaiting_pickup", view.Status)
		assert.Equal(t, "500", view.Total.String())
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockReservationReadQueries)
		mockQueries.On("GetReservation", mock.Anything, mock.Anything, int64(5)).Return(pgsql.Reservations{}, pgx.ErrNoRows)

		_, err := NewReservationReadStore(mockQueries, nil).FindByID(context.Background(), 5)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("corrupt total", func(t *testing.T) {
		row := builder.NewReservationBuilder().BuildInfra()
		row.Total = "n/a"

		mockQueries := new(MockReservationReadQueries)
		mockQueries.On("GetReservation", mock.Anything, mock.Anything, int64(1)).Return(row, nil)

		_, err := NewReservationReadStore(mockQueries, nil).FindByID(context.Background(), 1)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationReadStore_Search(t *testing.T) {
	tests := []struct {
		name   string
		filter access.Filter
		want   pgsql.SearchReservationsParams
	}{
		{
			name:   "admin without text",
			filter: access.Filter{IncludeDeleted: true},
			want:   pgsql.SearchReservationsParams{IncludeDeleted: true, Limit: 500},
		},
		{
			name:   "staff outgoing with wildcard text",
			filter: access.Filter{OriginBranch: "Centro", Search: " 50%_off "},
			want: pgsql.SearchReservationsParams{
				OriginBranch: "Centro",
				Pattern:      `%50\%\_off%`,
				Limit:        500,
			},
		},
		{
			name:   "incoming",
			filter: access.Filter{DestinationBranch: "Norte", IncludeDeleted: true},
			want:   pgsql.SearchReservationsParams{DestinationBranch: "Norte", IncludeDeleted: true, Limit: 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []pgsql.Reservations{
				builder.NewReservationBuilder().WithID(2).BuildInfra(),
				builder.NewReservationBuilder().WithID(1).BuildInfra(),
			}
			mockQueries := new(MockReservationReadQueries)
			mockQueries.On("SearchReservations", mock.Anything, mock.Anything, tt.want).Return(rows, nil)

			views, err := NewReservationReadStore(mockQueries, nil).Search(context.Background(), tt.filter, 500)

			require.NoError(t, err)
			require.Len(t, views, 2)
			assert.Equal(t, int64(2), views[0].ID)
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestReservationReadStore_SearchMatchNone(t *testing.T) {
	mockQueries := new(MockReservationReadQueries)

	views, err := NewReservationReadStore(mockQueries, nil).Search(context.Background(), access.Filter{MatchNone: true}, 500)

	require.NoError(t, err)
	assert.Empty(t, views)
	mockQueries.AssertNotCalled(t, "SearchReservations", mock.Anything, mock.Anything, mock.Anything)
}
