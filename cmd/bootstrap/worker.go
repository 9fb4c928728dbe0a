package bootstrap

import (
	"context"
	"log/slog"
	"sync"

	"branch-reservations/internal/pkg/config"
	"branch-reservations/internal/usecase/notify"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(startNotificationWorker),
)

func startNotificationWorker(lc fx.Lifecycle, cfg config.Config, worker *notify.Worker, logger *slog.Logger) {
	if !cfg.Notify.WorkerEnable {
		logger.Info("notification worker disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				worker.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
