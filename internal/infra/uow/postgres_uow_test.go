//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"branch-reservations/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy_Backoff(t *testing.T) {
	p := retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

	for attempt, floor := range []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond} {
		for range 50 {
			got := p.backoff(attempt)
			assert.GreaterOrEqual(t, got, floor)
			assert.LessOrEqual(t, got, floor+floor/5)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "lock not available behind a mark", err: errs.Mark(&pgconn.PgError{Code: "55P03"}, errTransactionCommit), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}},
		{name: "plain error", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}
