//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fervo/internal/domain/coupon"
	"fervo/internal/infra"
	"fervo/internal/infra/repository"
	sqlc "fervo/internal/infra/sqlc/generated"
	repositorymock "fervo/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Coupon Tests
// =============================================================================

func TestCouponRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockCouponWriteQueries, *coupon.Coupon, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: coupon row carries the domain values",
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, c *coupon.Coupon, tx sqlc.DBTX) {
				mock.EXPECT().CreateCoupon(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateCouponParams) (sqlc.Coupons, error) {
						assert.Equal(t, c.Code().String(), arg.Code)
						assert.Equal(t, c.UserID(), arg.UserID)
						assert.Equal(t, c.ValidAtPartnerID(), arg.ValidAtPartnerID)
						assert.Equal(t, "Club Fervo", arg.VenueName)
						return sqlc.Coupons{}, nil
					})
			},
		},
		{
			name: "error: duplicate code",
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, c *coupon.Coupon, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateCoupon(ctx, tx, gomock.Any()).Return(sqlc.Coupons{}, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockCouponWriteQueries, c *coupon.Coupon, tx sqlc.DBTX) {
				mock.EXPECT().CreateCoupon(ctx, tx, gomock.Any()).Return(sqlc.Coupons{}, errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCouponRepository(mockQueries)

			code, err := coupon.GenerateCode(now, nil)
			require.NoError(t, err)
			c := coupon.NewCoupon(code, uuid.New(), uuid.New(), "Club Fervo", now)

			tc.setupMock(mockQueries, c, mockDB)

			actualError := repo.Create(ctx, mockDB, c)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// MarkRedeemed Tests
// =============================================================================

func TestCouponRepository_MarkRedeemed(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
	partnerID := uuid.New()

	testCases := []struct {
		name          string
		rows          int64
		dbErr         error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: one row flipped", rows: 1},
		{name: "error: coupon no longer active", rows: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", dbErr: errors.New("timeout"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockCouponWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewCouponRepository(mockQueries)

			c := coupon.Reconstruct(uuid.New(), "FERVO-123456-ABCDE", uuid.New(), partnerID, "Club Fervo", "active", now.Add(-time.Hour), nil)
			require.NoError(t, c.Redeem(partnerID, now))

			mockQueries.EXPECT().MarkCouponRedeemed(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkCouponRedeemedParams) (int64, error) {
					assert.Equal(t, c.ID(), arg.ID)
					assert.True(t, arg.RedeemedAt.Valid)
					return tc.rows, tc.dbErr
				})

			actualError := repo.MarkRedeemed(ctx, mockDB, c)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}
