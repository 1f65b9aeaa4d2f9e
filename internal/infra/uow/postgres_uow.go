package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"fervo/internal/domain/coupon"
	"fervo/internal/domain/subscription"
	"fervo/internal/infra/readstore"
	"fervo/internal/infra/repository"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/errs"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Serializable for read-modify-write on aggregates and balances; conflicts surface as 40001 and are retried
func (u *PostgresUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	userRepo         shared.UserRepository
	venueRepo        shared.VenueRepository
	eventRepo        shared.EventRepository
	checkInRepo      shared.CheckInRepository
	ratingRepo       shared.RatingRepository
	rewardRepo       shared.RewardRepository
	couponRepo       shared.CouponRepository
	favoriteRepo     shared.FavoriteRepository
	pushTokenRepo    shared.PushTokenRepository
	subscriptionRepo shared.SubscriptionRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Venues() shared.VenueRepository {
	if t.venueRepo == nil {
		t.venueRepo = repository.NewVenueRepository(t.uow.q)
	}
	return t.venueRepo
}

func (t *pgTx) Events() shared.EventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewEventRepository(t.uow.q)
	}
	return t.eventRepo
}

func (t *pgTx) CheckIns() shared.CheckInRepository {
	if t.checkInRepo == nil {
		t.checkInRepo = repository.NewCheckInRepository(t.uow.q)
	}
	return t.checkInRepo
}

func (t *pgTx) Ratings() shared.RatingRepository {
	if t.ratingRepo == nil {
		t.ratingRepo = repository.NewRatingRepository(t.uow.q)
	}
	return t.ratingRepo
}

func (t *pgTx) Rewards() shared.RewardRepository {
	if t.rewardRepo == nil {
		t.rewardRepo = repository.NewRewardRepository(t.uow.q)
	}
	return t.rewardRepo
}

func (t *pgTx) Coupons() shared.CouponRepository {
	if t.couponRepo == nil {
		t.couponRepo = repository.NewCouponRepository(t.uow.q)
	}
	return t.couponRepo
}

func (t *pgTx) Favorites() shared.FavoriteRepository {
	if t.favoriteRepo == nil {
		t.favoriteRepo = repository.NewFavoriteRepository(t.uow.q)
	}
	return t.favoriteRepo
}

func (t *pgTx) PushTokens() shared.PushTokenRepository {
	if t.pushTokenRepo == nil {
		t.pushTokenRepo = repository.NewPushTokenRepository(t.uow.q)
	}
	return t.pushTokenRepo
}

func (t *pgTx) Subscriptions() shared.SubscriptionRepository {
	if t.subscriptionRepo == nil {
		t.subscriptionRepo = repository.NewSubscriptionRepository(t.uow.q)
	}
	return t.subscriptionRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	userStore         *readstore.UserReadStore
	venueStore        *readstore.VenueReadStore
	eventStore        *readstore.EventReadStore
	checkInStore      *readstore.CheckInReadStore
	ratingStore       *readstore.RatingReadStore
	walletStore       *readstore.WalletReadStore
	couponStore       *readstore.CouponReadStore
	subscriptionStore *readstore.SubscriptionReadStore
	pushTokenStore    *readstore.PushTokenReadStore
}

func (r *commandReads) users() *readstore.UserReadStore {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}
	return r.userStore
}

func (r *commandReads) venues() *readstore.VenueReadStore {
	if r.venueStore == nil {
		r.venueStore = readstore.NewVenueReadStore(r.uow.q, r.dbtx)
	}
	return r.venueStore
}

func (r *commandReads) events() *readstore.EventReadStore {
	if r.eventStore == nil {
		r.eventStore = readstore.NewEventReadStore(r.uow.q, r.dbtx)
	}
	return r.eventStore
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.users().SnapshotByID(ctx, id)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	return r.users().SnapshotByEmail(ctx, email)
}

func (r *commandReads) VenueByID(ctx context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	return r.venues().Snapshot(ctx, id)
}

func (r *commandReads) VenueForUpdate(ctx context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	return r.venues().SnapshotForUpdate(ctx, id)
}

func (r *commandReads) EventByID(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	return r.events().Snapshot(ctx, id)
}

func (r *commandReads) EventByPartnerAndID(ctx context.Context, partnerID, id uuid.UUID) (*shared.EventSnapshot, error) {
	return r.events().SnapshotByPartner(ctx, partnerID, id)
}

func (r *commandReads) EventForUpdate(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	return r.events().SnapshotForUpdate(ctx, id)
}

func (r *commandReads) HasCheckedIn(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	if r.checkInStore == nil {
		r.checkInStore = readstore.NewCheckInReadStore(r.uow.q, r.dbtx)
	}
	return r.checkInStore.Exists(ctx, userID, eventID)
}

func (r *commandReads) RatingForUpdate(ctx context.Context, id string) (*shared.RatingSnapshot, error) {
	if r.ratingStore == nil {
		r.ratingStore = readstore.NewRatingReadStore(r.uow.q, r.dbtx)
	}
	return r.ratingStore.SnapshotForUpdate(ctx, id)
}

func (r *commandReads) VenueCoinsForUpdate(ctx context.Context, userID, partnerID uuid.UUID) (int, error) {
	if r.walletStore == nil {
		r.walletStore = readstore.NewWalletReadStore(r.uow.q, r.dbtx)
	}
	return r.walletStore.BalanceForUpdate(ctx, userID, partnerID)
}

func (r *commandReads) CouponByCodeForUpdate(ctx context.Context, code string) (*coupon.Coupon, error) {
	if r.couponStore == nil {
		r.couponStore = readstore.NewCouponReadStore(r.uow.q, r.dbtx)
	}
	return r.couponStore.ForUpdate(ctx, code)
}

func (r *commandReads) SubscriptionByPartner(ctx context.Context, partnerID uuid.UUID) (*subscription.Subscription, error) {
	if r.subscriptionStore == nil {
		r.subscriptionStore = readstore.NewSubscriptionReadStore(r.uow.q, r.dbtx)
	}
	return r.subscriptionStore.FindByPartner(ctx, partnerID)
}

func (r *commandReads) PushTokensByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if r.pushTokenStore == nil {
		r.pushTokenStore = readstore.NewPushTokenReadStore(r.uow.q, r.dbtx)
	}
	return r.pushTokenStore.ListByUser(ctx, userID)
}
