package withdrawalrepo

import (
	"context"

	"github.com/GlebRadaev/fundraiser/internal/domain"
	"github.com/GlebRadaev/fundraiser/internal/pg"
	"go.uber.org/zap"
)

const (
	insertWithdrawalQuery = `
		INSERT INTO withdrawals (campaign_id, beneficiary, amount, reference, processed_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	findByCampaignQuery = `
        SELECT id, campaign_id, beneficiary, amount, reference::text, processed_at
        FROM withdrawals
        WHERE campaign_id = $1
        ORDER BY processed_at DESC, id DESC
    `
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	err := r.db.QueryRow(ctx, insertWithdrawalQuery,
		withdrawal.CampaignID,
		withdrawal.Beneficiary,
		withdrawal.Amount,
		withdrawal.Reference,
		withdrawal.ProcessedAt,
	).Scan(&withdrawal.ID)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) FindByCampaignID(ctx context.Context, campaignID int64) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, findByCampaignQuery, campaignID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		err := rows.Scan(&wd.ID, &wd.CampaignID, &wd.Beneficiary, &wd.Amount, &wd.Reference, &wd.ProcessedAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}

	return withdrawals, nil
}
