package bootstrap

import (
	"log/slog"

	"fervo/cmd/bootstrap/components"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var Module = fx.Options(
	fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
		l := &fxevent.SlogLogger{Logger: logger}
		l.UseLogLevel(slog.LevelDebug)
		return l
	}),
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	IntegrationModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	JobsModule,
)
