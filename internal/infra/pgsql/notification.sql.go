package pgsql

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createNotificationJob = `-- name: CreateNotificationJob :one
INSERT INTO notification_jobs (kind, topic, payload, run_at, status, created_at, updated_at)
VALUES ($1, $2, $3::jsonb, $4, 'queued', $4, $4)
RETURNING id`

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createNotificationJob, arg.Kind, arg.Topic, arg.Payload, arg.RunAt).Scan(&id)
	return id, err
}

const claimDueNotificationJobs = `-- name: ClaimDueNotificationJobs :many
WITH due AS (
    SELECT id FROM notification_jobs
    WHERE status IN ('queued', 'failed', 'sending') AND run_at <= $1
    ORDER BY run_at
    LIMIT $2
    FOR UPDATE SKIP LOCKED
)
UPDATE notification_jobs j
SET status = 'sending', run_at = $3, updated_at = now()
FROM due
WHERE j.id = due.id
RETURNING j.id, j.kind, j.topic, j.payload, j.run_at, j.attempts, j.status, j.last_error, j.created_at, j.updated_at`

type ClaimDueNotificationJobsParams struct {
	Now        time.Time
	Limit      int32
	LeaseUntil time.Time
}

func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, db DBTX, arg ClaimDueNotificationJobsParams) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, claimDueNotificationJobs, arg.Now, arg.Limit, arg.LeaseUntil)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []NotificationJobs
	for rows.Next() {
		var j NotificationJobs
		if err := rows.Scan(
			&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.RunAt, &j.Attempts,
			&j.Status, &j.LastError, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, j)
	}
	return items, rows.Err()
}

const setNotificationJobStatus = `-- name: SetNotificationJobStatus :execrows
UPDATE notification_jobs
SET status = $2, attempts = COALESCE($3, attempts), run_at = COALESCE($4, run_at), last_error = $5, updated_at = now()
WHERE id = $1`

type SetNotificationJobStatusParams struct {
	ID        uuid.UUID
	Status    string
	Attempts  *int32
	RunAt     *time.Time
	LastError *string
}

func (q *Queries) SetNotificationJobStatus(ctx context.Context, db DBTX, arg SetNotificationJobStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, setNotificationJobStatus, arg.ID, arg.Status, arg.Attempts, arg.RunAt, arg.LastError)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
