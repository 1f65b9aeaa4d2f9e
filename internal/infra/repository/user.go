package repository

import (
	"context"

	"fervo/internal/domain/user"
	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	UpdateLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (*shared.UserSnapshot, error) {
	row, err := r.queries.CreateUser(ctx, tx, sqlc.CreateUserParams{
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		DisplayName:  u.DisplayName().Value(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	return UserSnapshotFromRow(row), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if err := r.queries.UpdateLastLogin(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	n, err := r.queries.UpdateUserProfile(ctx, tx, sqlc.UpdateUserProfileParams{
		ID:          u.ID(),
		DisplayName: u.DisplayName().Value(),
		AvatarUrl:   pgconv.StringPtrToPgtype(u.AvatarURL()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func UserSnapshotFromRow(row sqlc.Users) *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         row.Role,
		DisplayName:  row.DisplayName,
		AvatarURL:    pgconv.StringPtrFromPgtype(row.AvatarUrl),
		LastLogin:    pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
