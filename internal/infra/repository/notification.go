package repository

import (
	"context"
	"time"

	"branch-reservations/internal/infra"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/internal/pkg/pgconv"
	"branch-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateNotificationJobParams) (uuid.UUID, error)
	ClaimDueNotificationJobs(ctx context.Context, db pgsql.DBTX, arg pgsql.ClaimDueNotificationJobsParams) ([]pgsql.NotificationJobs, error)
	SetNotificationJobStatus(ctx context.Context, db pgsql.DBTX, arg pgsql.SetNotificationJobStatusParams) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      pgsql.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db pgsql.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error) {
	id, err := r.queries.CreateNotificationJob(ctx, r.db, pgsql.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   runAt,
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification job", err)
	}
	return id, nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, now, leaseUntil time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, r.db, pgsql.ClaimDueNotificationJobsParams{
		Now:        now,
		Limit:      int32(limit),
		LeaseUntil: leaseUntil,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.NotificationJob{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Payload:   row.Payload,
			RunAt:     row.RunAt,
			Attempts:  row.Attempts,
			Status:    row.Status,
			LastError: pgconv.StringFromPgtype(row.LastError),
		})
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.setStatus(ctx, pgsql.SetNotificationJobStatusParams{
		ID:     id,
		Status: shared.JobStatusSent,
		RunAt:  &at,
	})
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, attempts int32, nextRun time.Time, lastError string) error {
	return r.setStatus(ctx, pgsql.SetNotificationJobStatusParams{
		ID:        id,
		Status:    shared.JobStatusFailed,
		Attempts:  &attempts,
		RunAt:     &nextRun,
		LastError: &lastError,
	})
}

func (r *NotificationRepository) MarkDead(ctx context.Context, id uuid.UUID, attempts int32, lastError string) error {
	return r.setStatus(ctx, pgsql.SetNotificationJobStatusParams{
		ID:        id,
		Status:    shared.JobStatusDead,
		Attempts:  &attempts,
		LastError: &lastError,
	})
}

func (r *NotificationRepository) setStatus(ctx context.Context, arg pgsql.SetNotificationJobStatusParams) error {
	affected, err := r.queries.SetNotificationJobStatus(ctx, r.db, arg)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("notification job not found", nil, infra.KindNotFound)
	}
	return nil
}
