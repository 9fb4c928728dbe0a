package notify

//go:generate go run go.uber.org/mock/mockgen -source=worker.go -destination=../../../tests/mock/notify/worker_mock.go -package=notifymock

import (
	"context"
	"log/slog"
	"time"

	"branch-reservations/internal/pkg/clock"
	"branch-reservations/internal/pkg/config"
	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/usecase/queries"
	"branch-reservations/internal/usecase/shared"
)

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type BranchDirectory interface {
	FindBranch(ctx context.Context, name string) (*queries.BranchView, error)
}

// Worker drains the notification outbox.
type Worker struct {
	uow      shared.UnitOfWork
	mailer   Mailer
	branches BranchDirectory
	renderer *Renderer
	clock    clock.Clock
	cfg      config.NotifyConfig
}

func NewWorker(uow shared.UnitOfWork, mailer Mailer, branches BranchDirectory, renderer *Renderer, clk clock.Clock, cfg config.NotifyConfig) *Worker {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 20
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 30 * time.Second
	}
	if cfg.ClaimLease <= 0 {
		cfg.ClaimLease = 5 * time.Minute
	}
	return &Worker{uow: uow, mailer: mailer, branches: branches, renderer: renderer, clock: clk, cfg: cfg}
}

// Run polls until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	slog.Info("notification worker started", "interval", w.cfg.PollInterval.String())
	for {
		if _, err := w.ProcessOnce(ctx); err != nil && ctx.Err() == nil {
			slog.Error("notification batch failed", "error", err.Error())
		}
		select {
		case <-ctx.Done():
			slog.Info("notification worker stopped")
			return
		case <-ticker.C:
		}
	}
}

// ProcessOnce handles one batch and returns how many jobs were delivered.
// Claiming commits before any mail is sent and every outcome is stored in
// its own transaction.
func (w *Worker) ProcessOnce(ctx context.Context) (int, error) {
	var jobs []shared.NotificationJob
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		now := w.clock.Now()
		jobs, err = tx.Notifications().ClaimDue(ctx, now, now.Add(w.cfg.ClaimLease), w.cfg.BatchSize)
		return err
	})
	if err != nil {
		return 0, err
	}

	sent := 0
	var markErrs []error
	for _, job := range jobs {
		mark, ok := w.deliver(ctx, job)
		if ok {
			sent++
		}
		// the outcome is recorded even when the poll loop is shutting down
		if err := w.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
			return mark(ctx, tx.Notifications())
		}); err != nil {
			slog.Error("failed to record notification outcome",
				"job_id", job.ID.String(),
				"delivered", ok,
				"error", err.Error())
			markErrs = append(markErrs, errs.Wrapf(err, "record outcome of job %s", job.ID))
		}
	}
	return sent, errs.Join(markErrs...)
}

type outcome func(ctx context.Context, repo shared.NotificationRepository) error

// deliver renders and sends job outside any transaction and returns how its
// outcome must be stored.
func (w *Worker) deliver(ctx context.Context, job shared.NotificationJob) (outcome, bool) {
	attempts := job.Attempts + 1
	dead := func(reason string) outcome {
		return func(ctx context.Context, repo shared.NotificationRepository) error {
			return repo.MarkDead(ctx, job.ID, attempts, reason)
		}
	}

	payload, err := DecodePayload(job.Payload)
	if err != nil {
		slog.Error("undecodable notification payload", "job_id", job.ID.String(), "error", err.Error())
		return dead(err.Error()), false
	}

	msg, err := w.renderer.Render(Kind(job.Kind), payload, w.branchInfo(ctx, Kind(job.Kind), payload.DestinationBranch))
	if err != nil {
		slog.Error("failed to render notification", "job_id", job.ID.String(), "kind", job.Kind, "error", err.Error())
		return dead(err.Error()), false
	}

	if err := w.mailer.Send(ctx, msg); err != nil {
		if int(attempts) >= w.cfg.MaxAttempts {
			slog.Error("notification gave up",
				"job_id", job.ID.String(),
				"attempts", attempts,
				"error", err.Error())
			return dead(err.Error()), false
		}
		next := w.clock.Now().Add(w.backoff(attempts))
		slog.Warn("notification delivery failed, rescheduling",
			"job_id", job.ID.String(),
			"attempts", attempts,
			"next_run", next,
			"error", err.Error())
		return func(ctx context.Context, repo shared.NotificationRepository) error {
			return repo.MarkFailed(ctx, job.ID, attempts, next, err.Error())
		}, false
	}

	slog.Info("notification sent", "job_id", job.ID.String(), "kind", job.Kind, "reservation_id", payload.ReservationID)
	at := w.clock.Now()
	return func(ctx context.Context, repo shared.NotificationRepository) error {
		return repo.MarkSent(ctx, job.ID, at)
	}, true
}

// branchInfo is looked up at send time so pickup notices carry current branch data.
func (w *Worker) branchInfo(ctx context.Context, kind Kind, branch string) BranchInfo {
	info := placeholderBranch()
	if kind != KindPickupReady || w.branches == nil {
		return info
	}
	view, err := w.branches.FindBranch(ctx, branch)
	if err != nil {
		slog.Debug("branch lookup failed, using placeholder", "branch", branch, "error", err.Error())
		return info
	}
	if view == nil {
		return info
	}
	if view.Address != "" {
		info.Address = view.Address
	}
	if view.Hours != "" {
		info.Hours = view.Hours
	}
	if view.Phone != "" {
		info.Phone = view.Phone
	}
	return info
}

func (w *Worker) backoff(attempts int32) time.Duration {
	shift := attempts - 1
	if shift > 10 {
		shift = 10
	}
	return w.cfg.BaseBackoff * time.Duration(1<<shift)
}
