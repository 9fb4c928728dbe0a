package bootstrap

import (
	"branch-reservations/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.NotifyConfig { return cfg.Notify },
		func(cfg config.Config) config.MailConfig { return cfg.Mail },
		func(cfg config.Config) config.ArchiveConfig { return cfg.Archive },
	),
)
