//go:build unit

package repository_test

import (
	"context"
	"testing"

	"fervo/internal/infra"
	"fervo/internal/infra/repository"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/tests/common/builder"
	repositorymock "fervo/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockUserWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: snapshot built from the stored row",
			setupMock: func(mock *repositorymock.MockUserWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateUser(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
						return sqlc.Users{
							ID:           uuid.New(),
							Email:        arg.Email,
							PasswordHash: arg.PasswordHash,
							Role:         arg.Role,
							DisplayName:  arg.DisplayName,
							CreatedAt:    pgtype.Timestamptz{Valid: true},
						}, nil
					})
			},
		},
		{
			name: "error: duplicate email",
			setupMock: func(mock *repositorymock.MockUserWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"users_email_key\""}
				mock.EXPECT().CreateUser(ctx, tx, gomock.Any()).Return(sqlc.Users{}, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewUserRepository(mockQueries)

			u, err := builder.NewUserBuilder().AsPartner().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			snap, actualError := repo.Create(ctx, mockDB, u)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Nil(t, snap)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, "test@example.com", snap.Email)
			assert.Equal(t, "partner", snap.Role)
			assert.NotEqual(t, uuid.Nil, snap.ID)
		})
	}
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	testUserID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().UpdateLastLogin(ctx, mockDB, testUserID).Return(tt.mockError)

			err := repository.NewUserRepository(mockQueries).UpdateLastLogin(ctx, mockDB, testUserID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewUserRepository(mockQueries)

	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	mockQueries.EXPECT().UpdateUserProfile(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

	err = repo.UpdateProfile(ctx, mockDB, u)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
