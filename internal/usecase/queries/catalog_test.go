//go:build unit

package queries_test

import (
	"context"
	"testing"

	"branch-reservations/internal/infra"
	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/usecase/queries"
	"branch-reservations/tests/common/builder"
	queriesmock "branch-reservations/tests/mock/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductQueries_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockProductReadStore(ctrl)
	q := queries.NewProductQueries(store)

	x1 := &queries.ProductView{Code: "X1", Description: "Taladro percutor", UnitPrice: decimal.NewFromInt(250)}
	store.EXPECT().FindByCode(gomock.Any(), "X1").Return(x1, nil)
	store.EXPECT().FindByCode(gomock.Any(), "ZZ").Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound))

	got, err := q.Lookup(context.Background(), "  X1 ")
	require.NoError(t, err)
	assert.Equal(t, x1, got)

	_, err = q.Lookup(context.Background(), "ZZ")
	assert.True(t, errs.Is(err, queries.ErrProductNotFound))

	// blank codes never reach the store
	_, err = q.Lookup(context.Background(), "   ")
	assert.True(t, errs.Is(err, queries.ErrProductNotFound))
}

func TestArchiveQueries_GetArchived(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockArchiveReadStore(ctrl)
	q := queries.NewArchiveQueries(store)
	admin := builder.NewUserBuilder().WithRole("admin").BuildActor()

	archived := &queries.ArchivedReservationView{
		ReservationView: *builder.NewReservationBuilder().BuildView(),
		ArchivedAt:      builder.FixedNow,
		ArchivedBy:      "Admin",
	}
	store.EXPECT().FindByID(gomock.Any(), int64(1)).Return(archived, nil)
	store.EXPECT().FindByID(gomock.Any(), int64(2)).Return(nil, infra.WrapRepoErr("archived reservation not found", nil, infra.KindNotFound))

	got, err := q.GetArchived(context.Background(), admin, 1)
	require.NoError(t, err)
	assert.Equal(t, "Admin", got.ArchivedBy)

	_, err = q.GetArchived(context.Background(), admin, 2)
	assert.True(t, errs.Is(err, queries.ErrArchivedNotFound))

	manager := builder.NewUserBuilder().WithRole("branch_manager").BuildActor()
	_, err = q.GetArchived(context.Background(), manager, 1)
	assert.True(t, errs.Is(err, queries.ErrArchiveForbidden))
}
