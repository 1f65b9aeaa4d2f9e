package components

import (
	"fervo/internal/domain/reward"
	"fervo/internal/domain/subscription"
	"fervo/internal/pkg/clock"
	"fervo/internal/pkg/config"
	"fervo/internal/usecase"
	"fervo/internal/usecase/commands"
	"fervo/internal/usecase/queries"
	"fervo/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) (reward.Policy, error) {
		return reward.NewPolicy(cfg.Reward.PerShare, cfg.Reward.CouponThreshold)
	},
	func(cfg config.Config) commands.PriceIDs {
		prices := commands.PriceIDs{}
		if cfg.Stripe.PriceBasic != "" {
			prices[subscription.PlanBasic] = cfg.Stripe.PriceBasic
		}
		if cfg.Stripe.PricePro != "" {
			prices[subscription.PlanPro] = cfg.Stripe.PricePro
		}
		return prices
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewVenueUseCase,
		commands.NewEventUseCase,
		commands.NewCheckInUseCase,
		commands.NewRatingUseCase,
		commands.NewShareUseCase,
		commands.NewCouponUseCase,
		commands.NewFavoriteUseCase,
		commands.NewPushTokenUseCase,
		commands.NewSubscriptionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewDirectoryQueries,
		queries.NewCheckInQueries,
		queries.NewRatingQueries,
		queries.NewWalletQueries,
		queries.NewFavoriteQueries,
		queries.NewAnalyticsQueries,
		queries.NewSubscriptionQueries,
		func(events queries.EventReadStore, comments queries.CommentReadStore, summarizer shared.FeedbackSummarizer, cfg config.Config) queries.FeedbackQueries {
			return queries.NewFeedbackQueries(events, comments, summarizer, cfg.AI.MaxComments)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
