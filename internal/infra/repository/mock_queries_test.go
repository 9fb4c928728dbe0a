//go:build unit

package repository

import (
	"context"

	"branch-reservations/internal/infra/pgsql"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

type MockWriteQueries struct {
	mock.Mock
}

func (m *MockWriteQueries) CreateReservation(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) UpdateReservation(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) ArchiveReservation(ctx context.Context, db pgsql.DBTX, arg pgsql.ArchiveReservationParams) (pgsql.ArchivedDeletions, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(pgsql.ArchivedDeletions), args.Error(1)
}

func (m *MockWriteQueries) DeleteReservation(ctx context.Context, db pgsql.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) UpdateProductPrice(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateProductPriceParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) UpsertUser(ctx context.Context, db pgsql.DBTX, arg pgsql.UpsertUserParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockWriteQueries) CreateNotificationJob(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateNotificationJobParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockWriteQueries) ClaimDueNotificationJobs(ctx context.Context, db pgsql.DBTX, arg pgsql.ClaimDueNotificationJobsParams) ([]pgsql.NotificationJobs, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgsql.NotificationJobs), args.Error(1)
}

func (m *MockWriteQueries) SetNotificationJobStatus(ctx context.Context, db pgsql.DBTX, arg pgsql.SetNotificationJobStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

// pgsql.DBTX implementation for MockWriteQueries
func (m *MockWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}
