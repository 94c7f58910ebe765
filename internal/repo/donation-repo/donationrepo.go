package donationrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fundraiser/internal/domain"
	"github.com/GlebRadaev/fundraiser/internal/pg"
)

const (
	// The timestamp is taken after the campaign row lock, so dates follow id order.
	insertDonationQuery = `
        INSERT INTO donations (campaign_id, donor, value, created_at)
        VALUES ($1, $2, $3, clock_timestamp())
        RETURNING id, created_at
    `
	countByDonorQuery = `SELECT count(*) FROM donations WHERE campaign_id = $1 AND donor = $2`

	findByDonorQuery = `
        SELECT id, campaign_id, donor, value, created_at
        FROM donations
        WHERE campaign_id = $1 AND donor = $2
        ORDER BY id ASC
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

func (r *Repository) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	err := r.db.QueryRow(ctx, insertDonationQuery, donation.CampaignID, donation.Donor, donation.Value).
		Scan(&donation.ID, &donation.CreatedAt)
	if err != nil {
		zap.L().Error("can't save donation", zap.Error(err))
		return nil, err
	}
	return donation, nil
}

func (r *Repository) CountByDonor(ctx context.Context, campaignID int64, donor string) (uint64, error) {
	var count uint64
	if err := r.db.QueryRow(ctx, countByDonorQuery, campaignID, donor).Scan(&count); err != nil {
		zap.L().Error("can't count donations", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// FindByDonor returns the donor's history in the order it was recorded.
func (r *Repository) FindByDonor(ctx context.Context, campaignID int64, donor string) ([]domain.Donation, error) {
	rows, err := r.db.Query(ctx, findByDonorQuery, campaignID, donor)
	if err != nil {
		zap.L().Error("failed to fetch donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	donations := []domain.Donation{}
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.CampaignID, &d.Donor, &d.Value, &d.CreatedAt); err != nil {
			zap.L().Error("failed to scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate donation rows", zap.Error(err))
		return nil, err
	}
	return donations, nil
}
