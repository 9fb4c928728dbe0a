package notify

import (
	"context"
	"log/slog"

	"branch-reservations/internal/domain/reservation"
	"branch-reservations/internal/pkg/clock"
	"branch-reservations/internal/usecase/shared"
)

// OutboxDispatcher turns intents into notification_jobs rows for the worker.
type OutboxDispatcher struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOutboxDispatcher(uow shared.UnitOfWork, clk clock.Clock) Dispatcher {
	return &OutboxDispatcher{uow: uow, clock: clk}
}

func (d *OutboxDispatcher) Dispatch(ctx context.Context, intent Intent) {
	if !intent.Kind.IsValid() {
		slog.Warn("dropping notification with unknown kind", "kind", string(intent.Kind))
		return
	}
	if !reservation.IsDeliverableEmail(intent.Reservation.CustomerEmail) {
		slog.Debug("skipping notification without deliverable email",
			"kind", string(intent.Kind),
			"reservation_id", intent.Reservation.ID)
		return
	}

	payload, err := EncodePayload(intent.Payload())
	if err != nil {
		slog.Error("failed to encode notification payload", "reservation_id", intent.Reservation.ID, "error", err.Error())
		return
	}

	// the request may be gone by now; the write it reports on is already committed
	ctx = context.WithoutCancel(ctx)
	err = d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Notifications().CreateJob(ctx, string(intent.Kind), intent.Topic(), payload, d.clock.Now())
		return err
	})
	if err != nil {
		slog.Error("failed to enqueue notification",
			"kind", string(intent.Kind),
			"reservation_id", intent.Reservation.ID,
			"error", err.Error())
	}
}
