package components

import (
	"fervo/internal/handler"
	"fervo/internal/handler/api"
	"fervo/internal/handler/middleware"
	"fervo/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDirectoryHandler,
		api.NewEngagementHandler,
		api.NewMeHandler,
		api.NewPartnerHandler,
		api.NewInsightsHandler,
		api.NewCouponHandler,
		api.NewBillingHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
