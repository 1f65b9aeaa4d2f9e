package components

import (
	"fervo/internal/infra/readstore"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/infra/uow"
	"fervo/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Write-side repositories are built per transaction inside the unit of work.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.UserReadStore { return readstore.NewUserReadStore(q, db) },
			fx.As(new(queries.UserReadStore)),
		),
		// Venue
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.VenueReadStore { return readstore.NewVenueReadStore(q, db) },
			fx.As(new(queries.VenueReadStore)),
			fx.As(new(queries.FavoriteReadStore)),
		),
		// Event
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.EventReadStore { return readstore.NewEventReadStore(q, db) },
			fx.As(new(queries.EventReadStore)),
		),
		// CheckIn
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.CheckInReadStore { return readstore.NewCheckInReadStore(q, db) },
			fx.As(new(queries.CheckInReadStore)),
		),
		// Rating
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.RatingReadStore { return readstore.NewRatingReadStore(q, db) },
			fx.As(new(queries.RatingReadStore)),
			fx.As(new(queries.CommentReadStore)),
		),
		// Wallet
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.WalletReadStore { return readstore.NewWalletReadStore(q, db) },
			fx.As(new(queries.WalletReadStore)),
		),
		// Coupon
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.CouponReadStore { return readstore.NewCouponReadStore(q, db) },
			fx.As(new(queries.CouponReadStore)),
		),
		// Subscription
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.SubscriptionReadStore {
				return readstore.NewSubscriptionReadStore(q, db)
			},
			fx.As(new(queries.SubscriptionReadStore)),
			fx.As(new(queries.SubscriptionStatusReader)),
		),
		// Analytics
		fx.Annotate(
			func(q *sqlc.Queries, db sqlc.DBTX) *readstore.AnalyticsReadStore { return readstore.NewAnalyticsReadStore(q, db) },
			fx.As(new(queries.AnalyticsReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
