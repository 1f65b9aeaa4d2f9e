package repository

import (
	"context"

	"fervo/internal/domain/coupon"
	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"
)

type CouponWriteQueries interface {
	CreateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponParams) (sqlc.Coupons, error)
	MarkCouponRedeemed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkCouponRedeemedParams) (int64, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
}

func NewCouponRepository(queries CouponWriteQueries) *CouponRepository {
	return &CouponRepository{queries: queries}
}

func (r *CouponRepository) Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	_, err := r.queries.CreateCoupon(ctx, tx, sqlc.CreateCouponParams{
		Code:             c.Code().String(),
		UserID:           c.UserID(),
		ValidAtPartnerID: c.ValidAtPartnerID(),
		VenueName:        c.VenueName(),
		CreatedAt:        pgconv.TimeToPgtype(c.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

// MarkRedeemed only flips active coupons; zero rows means someone else won the race.
func (r *CouponRepository) MarkRedeemed(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	n, err := r.queries.MarkCouponRedeemed(ctx, tx, sqlc.MarkCouponRedeemedParams{
		ID:         c.ID(),
		RedeemedAt: pgconv.TimePtrToPgtype(c.RedeemedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to redeem coupon", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("active coupon not found", nil, infra.KindNotFound)
	}
	return nil
}
