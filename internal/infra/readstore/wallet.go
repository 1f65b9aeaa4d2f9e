package readstore

import (
	"context"

	"fervo/internal/infra"
	sqlc "fervo/internal/infra/sqlc/generated"
	"fervo/internal/pkg/pgconv"
	"fervo/internal/usecase/queries"

	"github.com/google/uuid"
)

type WalletReadQueries interface {
	GetVenueCoinsForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetVenueCoinsForUpdateParams) (sqlc.VenueCoins, error)
	ListVenueCoinsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListVenueCoinsByUserRow, error)
}

type WalletReadStore struct {
	queries WalletReadQueries
	db      sqlc.DBTX
}

func NewWalletReadStore(queries WalletReadQueries, db sqlc.DBTX) *WalletReadStore {
	return &WalletReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WalletReadStore) ListBalances(ctx context.Context, userID uuid.UUID) ([]*queries.CoinBalanceView, error) {
	rows, err := r.queries.ListVenueCoinsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coin balances", err)
	}
	result := make([]*queries.CoinBalanceView, len(rows))
	for i, row := range rows {
		result[i] = &queries.CoinBalanceView{
			PartnerID: row.PartnerID,
			VenueName: row.VenueName,
			Coins:     int(row.Coins),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}

// BalanceForUpdate returns 0 for a venue the user has never earned at.
func (r *WalletReadStore) BalanceForUpdate(ctx context.Context, userID, partnerID uuid.UUID) (int, error) {
	row, err := r.queries.GetVenueCoinsForUpdate(ctx, r.db, sqlc.GetVenueCoinsForUpdateParams{UserID: userID, PartnerID: partnerID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to lock coin balance", err)
	}
	return int(row.Coins), nil
}
