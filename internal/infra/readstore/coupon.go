package readstore

import (
	"context"

	"fervo/internal/domain/coupon"
	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"
	"fervo/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponReadQueries interface {
	GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
	GetCouponByCodeForUpdate(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
	ListCouponsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCouponsByUserParams) ([]sqlc.Coupons, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	row, err := r.queries.GetCouponByCode(ctx, r.db, coupon.NormalizeCode(code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return toCouponView(row), nil
}

func (r *CouponReadStore) ListByUser(ctx context.Context, userID uuid.UUID, status string) ([]*queries.CouponView, error) {
	rows, err := r.queries.ListCouponsByUser(ctx, r.db, sqlc.ListCouponsByUserParams{
		UserID: userID,
		Status: pgconv.NonEmptyToPgtype(status),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons by user", err)
	}
	result := make([]*queries.CouponView, len(rows))
	for i, row := range rows {
		result[i] = toCouponView(row)
	}
	return result, nil
}

// ForUpdate rebuilds the domain coupon under a row lock for redemption.
func (r *CouponReadStore) ForUpdate(ctx context.Context, code string) (*coupon.Coupon, error) {
	row, err := r.queries.GetCouponByCodeForUpdate(ctx, r.db, coupon.NormalizeCode(code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock coupon", err)
	}
	c := coupon.Reconstruct(
		row.ID,
		row.Code,
		row.UserID,
		row.ValidAtPartnerID,
		row.VenueName,
		row.Status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.RedeemedAt),
	)
	return c, nil
}

func toCouponView(row sqlc.Coupons) *queries.CouponView {
	return &queries.CouponView{
		ID:               row.ID,
		Code:             row.Code,
		UserID:           row.UserID,
		ValidAtPartnerID: row.ValidAtPartnerID,
		VenueName:        row.VenueName,
		Status:           row.Status,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		RedeemedAt:       pgconv.TimePtrFromPgtype(row.RedeemedAt),
	}
}
