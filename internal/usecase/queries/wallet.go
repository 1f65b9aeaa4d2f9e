package queries

import (
	"context"

	"fervo/internal/domain/coupon"
	"fervo/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound = errs.New("coupon not found")
)

type WalletReadStore interface {
	ListBalances(ctx context.Context, userID uuid.UUID) ([]*CoinBalanceView, error)
}

type CouponReadStore interface {
	FindByCode(ctx context.Context, code string) (*CouponView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status string) ([]*CouponView, error)
}

type WalletQueries interface {
	ListBalances(ctx context.Context, userID uuid.UUID) ([]*CoinBalanceView, error)
	ListCoupons(ctx context.Context, userID uuid.UUID, status string) ([]*CouponView, error)
	// LookupCoupon finds a code across all users for partner-side redemption.
	LookupCoupon(ctx context.Context, partnerID uuid.UUID, code string) (*CouponLookupView, error)
}

type walletQueriesImpl struct {
	wallet  WalletReadStore
	coupons CouponReadStore
}

func NewWalletQueries(wallet WalletReadStore, coupons CouponReadStore) WalletQueries {
	return &walletQueriesImpl{wallet: wallet, coupons: coupons}
}

func (q *walletQueriesImpl) ListBalances(ctx context.Context, userID uuid.UUID) ([]*CoinBalanceView, error) {
	return q.wallet.ListBalances(ctx, userID)
}

func (q *walletQueriesImpl) ListCoupons(ctx context.Context, userID uuid.UUID, status string) ([]*CouponView, error) {
	if status != "" {
		if _, err := coupon.NewStatus(status); err != nil {
			return nil, err
		}
	}
	return q.coupons.ListByUser(ctx, userID, status)
}

func (q *walletQueriesImpl) LookupCoupon(ctx context.Context, partnerID uuid.UUID, code string) (*CouponLookupView, error) {
	view, err := q.coupons.FindByCode(ctx, code)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	validHere := view.ValidAtPartnerID == partnerID
	return &CouponLookupView{
		CouponView: *view,
		ValidHere:  validHere,
		Redeemable: validHere && view.Status == coupon.StatusActive.String(),
	}, nil
}
