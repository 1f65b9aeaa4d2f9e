package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"fervo/internal/handler/middleware"
	"fervo/internal/handler/validation"
	"fervo/internal/infra/db"
	"fervo/internal/pkg/config"
	"fervo/internal/pkg/jwt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const dbConnectTimeout = 15 * time.Second

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	fx.Invoke(validation.Register),
)

var LoggerModule = fx.Module("logger",
	fx.Provide(NewLogger),
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

var JWTModule = fx.Module("jwt",
	fx.Provide(NewJWTService),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database pool ready",
		"host", cfg.DB.Host, "database", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.StopHook(cleanup))
	return pool, nil
}

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration)
}
