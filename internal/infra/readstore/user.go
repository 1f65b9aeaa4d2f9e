package readstore

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"fervo/internal/infra"
	"fervo/internal/infra/repository"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"
	"fervo/internal/usecase/queries"
	"fervo/internal/usecase/shared"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toAuthorizedUserView(row), nil
}

func (r *UserReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return repository.UserSnapshotFromRow(row), nil
}

// SnapshotByEmail carries the password hash for credential checks.
func (r *UserReadStore) SnapshotByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return repository.UserSnapshotFromRow(row), nil
}

func toAuthorizedUserView(row sqlc.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          row.ID,
		Email:       row.Email,
		Role:        row.Role,
		DisplayName: row.DisplayName,
		AvatarURL:   pgconv.StringPtrFromPgtype(row.AvatarUrl),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
