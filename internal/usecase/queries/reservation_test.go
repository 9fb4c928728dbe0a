//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"branch-reservations/internal/domain/access"
	"branch-reservations/internal/infra"
	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/usecase/queries"
	"branch-reservations/tests/common/builder"
	queriesmock "branch-reservations/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationQueries_GetByID(t *testing.T) {
	staff := builder.NewUserBuilder().BuildActor()
	manager := builder.NewUserBuilder().WithRole("branch_manager").BuildActor()
	admin := builder.NewUserBuilder().WithRole("admin").WithBranch("Casa Central").BuildActor()

	outgoing := builder.NewReservationBuilder().BuildView()
	incoming := builder.NewReservationBuilder().WithOrigin("Sur").WithDestination("Centro").BuildView()
	foreign := builder.NewReservationBuilder().WithOrigin("Sur").WithDestination("Oeste").BuildView()
	deleted := builder.NewReservationBuilder().AsDeleted().BuildView()

	tests := []struct {
		name    string
		actor   access.Actor
		stored  *queries.ReservationView
		repoErr error
		wantErr error
	}{
		{name: "staff sees outgoing", actor: staff, stored: outgoing},
		{name: "staff sees incoming", actor: staff, stored: incoming},
		{name: "staff blind to other branches", actor: staff, stored: foreign, wantErr: queries.ErrReservationNotFound},
		{name: "staff blind to deleted", actor: staff, stored: deleted, wantErr: queries.ErrReservationNotFound},
		{name: "manager sees deleted", actor: manager, stored: deleted},
		{name: "manager blind to other branches", actor: manager, stored: foreign, wantErr: queries.ErrReservationNotFound},
		{name: "admin sees everything", actor: admin, stored: foreign},
		{
			name:    "missing row",
			actor:   admin,
			repoErr: infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound),
			wantErr: queries.ErrReservationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockReservationReadStore(ctrl)
			store.EXPECT().FindByID(gomock.Any(), int64(1)).Return(tt.stored, tt.repoErr)

			got, err := queries.NewReservationQueries(store).GetByID(context.Background(), tt.actor, 1)

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.stored, got)
		})
	}
}

func TestReservationQueries_GetByIDStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReservationReadStore(ctrl)
	boom := errors.New("connection reset")
	store.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil, infra.WrapRepoErr("failed to load reservation", boom))

	_, err := queries.NewReservationQueries(store).GetByID(context.Background(), builder.NewUserBuilder().BuildActor(), 7)

	require.Error(t, err)
	assert.False(t, errs.Is(err, queries.ErrReservationNotFound))
	assert.ErrorIs(t, err, boom)
}

func TestReservationQueries_List(t *testing.T) {
	staff := builder.NewUserBuilder().BuildActor()
	admin := builder.NewUserBuilder().WithRole("admin").BuildActor()

	tests := []struct {
		name       string
		actor      access.Actor
		params     queries.ListParams
		wantFilter access.Filter
		wantLimit  int
	}{
		{
			name:       "staff outgoing by default",
			actor:      staff,
			params:     queries.ListParams{Query: " juan "},
			wantFilter: access.Filter{Search: "juan", OriginBranch: "Centro"},
			wantLimit:  500,
		},
		{
			name:       "staff incoming",
			actor:      staff,
			params:     queries.ListParams{Scope: access.ScopeIncoming, Limit: 20},
			wantFilter: access.Filter{DestinationBranch: "Centro"},
			wantLimit:  20,
		},
		{
			name:       "admin unrestricted and capped",
			actor:      admin,
			params:     queries.ListParams{Scope: access.ScopeIncoming, Limit: 100000},
			wantFilter: access.Filter{IncludeDeleted: true},
			wantLimit:  2000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockReservationReadStore(ctrl)
			rows := []*queries.ReservationView{builder.NewReservationBuilder().BuildView()}

			store.EXPECT().Search(gomock.Any(), gomock.Any(), tt.wantLimit).
				DoAndReturn(func(_ context.Context, f access.Filter, _ int) ([]*queries.ReservationView, error) {
					if diff := cmp.Diff(tt.wantFilter, f); diff != "" {
						t.Errorf("filter mismatch (-want +got):\n%s", diff)
					}
					return rows, nil
				})

			got, err := queries.NewReservationQueries(store).List(context.Background(), tt.actor, tt.params)

			require.NoError(t, err)
			assert.Equal(t, rows, got)
		})
	}
}
