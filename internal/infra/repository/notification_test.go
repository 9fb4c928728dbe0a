//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"branch-reservations/internal/infra"
	"branch-reservations/internal/infra/pgsql"
	"branch-reservations/internal/usecase/shared"
	"branch-reservations/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_ClaimDue(t *testing.T) {
	jobID := uuid.New()
	lease := builder.FixedNow.Add(5 * time.Minute)
	mockQueries := new(MockWriteQueries)
	mockQueries.On("ClaimDueNotificationJobs", mock.Anything, mock.Anything, pgsql.ClaimDueNotificationJobsParams{
		Now:        builder.FixedNow,
		Limit:      10,
		LeaseUntil: lease,
	}).Return([]pgsql.NotificationJobs{
		{
			ID:        jobID,
			Kind:      "reservation.confirmation",
			Topic:     "reservation/1",
			Payload:   []byte(`{}`),
			RunAt:     lease,
			Attempts:  2,
			Status:    "sending",
			LastError: pgtype.Text{String: "smtp down", Valid: true},
		},
	}, nil)

	repo := NewNotificationRepository(mockQueries, mockQueries)
	jobs, err := repo.ClaimDue(context.Background(), builder.FixedNow, lease, 10)

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, jobID, jobs[0].ID)
	assert.Equal(t, shared.JobStatusSending, jobs[0].Status)
	assert.Equal(t, int32(2), jobs[0].Attempts)
	assert.Equal(t, "smtp down", jobs[0].LastError)
}

func TestNotificationRepository_StatusUpdates(t *testing.T) {
	jobID := uuid.New()
	next := builder.FixedNow.Add(time.Minute)

	tests := []struct {
		name     string
		call     func(r *NotificationRepository) error
		matches  func(p pgsql.SetNotificationJobStatusParams) bool
		affected int64
		wantKind infra.RepositoryErrorKind
	}{
		{
			name: "sent keeps attempts",
			call: func(r *NotificationRepository) error {
				return r.MarkSent(context.Background(), jobID, builder.FixedNow)
			},
			matches: func(p pgsql.SetNotificationJobStatusParams) bool {
				return p.Status == shared.JobStatusSent && p.Attempts == nil && p.LastError == nil
			},
			affected: 1,
		},
		{
			name: "failed reschedules",
			call: func(r *NotificationRepository) error {
				return r.MarkFailed(context.Background(), jobID, 3, next, "timeout")
			},
			matches: func(p pgsql.SetNotificationJobStatusParams) bool {
				return p.Status == shared.JobStatusFailed && *p.Attempts == 3 && p.RunAt.Equal(next) && *p.LastError == "timeout"
			},
			affected: 1,
		},
		{
			name: "dead job missing",
			call: func(r *NotificationRepository) error {
				return r.MarkDead(context.Background(), jobID, 5, "bounced")
			},
			matches: func(p pgsql.SetNotificationJobStatusParams) bool {
				return p.Status == shared.JobStatusDead && p.RunAt == nil
			},
			affected: 0,
			wantKind: infra.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockWriteQueries)
			mockQueries.On("SetNotificationJobStatus", mock.Anything, mock.Anything, mock.MatchedBy(tt.matches)).Return(tt.affected, nil)

			err := tt.call(NewNotificationRepository(mockQueries, mockQueries))

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
