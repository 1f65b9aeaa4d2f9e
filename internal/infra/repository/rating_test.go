//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fervo/internal/domain/rating"
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

func TestRatingRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	testCases := []struct {
		name          string
		comment       string
		dbErr         error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
		wantComment   bool
	}{
		{name: "success: with comment", comment: "  great set  ", wantComment: true},
		{name: "success: empty comment stored as null", comment: "   "},
		{
			name:          "error: event deleted meanwhile",
			dbErr:         &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{name: "error: database error occurs", dbErr: errors.New("boom"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRatingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRatingRepository(mockQueries)

			eventID, userID := uuid.New(), uuid.New()
			rt, err := rating.NewRating(eventID, userID, uuid.New(), 4, tc.comment, now)
			require.NoError(t, err)

			mockQueries.EXPECT().UpsertRating(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertRatingParams) error {
					assert.Equal(t, eventID.String()+"_"+userID.String(), arg.ID)
					assert.Equal(t, int32(4), arg.Rating)
					assert.Equal(t, tc.wantComment, arg.Comment.Valid)
					if tc.wantComment {
						assert.Equal(t, "great set", arg.Comment.String)
					}
					return tc.dbErr
				})

			actualError := repo.Upsert(ctx, mockDB, rt)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestRatingRepository_Delete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", rows: 1},
		{name: "error: nothing to delete", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", dbErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRatingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRatingRepository(mockQueries)

			id := rating.ID(uuid.New(), uuid.New())
			mockQueries.EXPECT().DeleteRating(ctx, mockDB, id).Return(tc.rows, tc.dbErr)

			err := repo.Delete(ctx, mockDB, id)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}
