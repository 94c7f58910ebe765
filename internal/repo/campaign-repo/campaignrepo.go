package campaignrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fundraiser/internal/domain"
	"github.com/GlebRadaev/fundraiser/internal/pg"
)

// numericValueOutOfRange is the SQLSTATE Postgres raises when a BIGINT
// counter would overflow.
const numericValueOutOfRange = "22003"

// registryLockKey serializes campaign creation across the whole registry.
const registryLockKey int64 = 0x66756e64

const (
	lockRegistryQuery = `SELECT pg_advisory_xact_lock($1)`

	insertCampaignQuery = `
        INSERT INTO campaigns (address, name, url, image_url, description, owner, beneficiary, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	countCampaignsQuery = `SELECT count(*) FROM campaigns`

	listProfilesQuery = `
        SELECT id, address::text, name, url, image_url, description, owner, created_at
        FROM campaigns
        ORDER BY id ASC
        LIMIT $1 OFFSET $2
    `
	findProfileQuery = `
        SELECT id, address::text, name, url, image_url, description, owner, created_at
        FROM campaigns
        WHERE address = $1
    `
	findCampaignQuery = `
        SELECT id, address::text, name, url, image_url, description, owner, created_at,
               beneficiary, balance, total_donations, donations_count
        FROM campaigns
        WHERE address = $1
    `
	lockCampaignQuery = `
        SELECT id, address::text, name, url, image_url, description, owner, created_at,
               beneficiary, balance, total_donations, donations_count
        FROM campaigns
        WHERE id = $1
        FOR UPDATE
    `
	addDonationQuery = `
        UPDATE campaigns
        SET balance = balance + $1,
            total_donations = total_donations + $1,
            donations_count = donations_count + 1
        WHERE id = $2
    `
	updateBeneficiaryQuery = `UPDATE campaigns SET beneficiary = $1 WHERE id = $2`
	resetBalanceQuery      = `UPDATE campaigns SET balance = 0 WHERE id = $1`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create must run inside a transaction: the registry lock is released on commit.
func (r *Repository) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	if _, err := r.db.Exec(ctx, lockRegistryQuery, registryLockKey); err != nil {
		zap.L().Error("can't lock registry", zap.Error(err))
		return nil, err
	}
	err := r.db.QueryRow(ctx, insertCampaignQuery,
		campaign.Address,
		campaign.Name,
		campaign.URL,
		campaign.ImageURL,
		campaign.Description,
		campaign.Owner,
		campaign.Beneficiary,
		campaign.CreatedAt,
	).Scan(&campaign.ID)
	if err != nil {
		zap.L().Error("can't save campaign", zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

func (r *Repository) Count(ctx context.Context) (uint64, error) {
	var count uint64
	if err := r.db.QueryRow(ctx, countCampaignsQuery).Scan(&count); err != nil {
		zap.L().Error("can't count campaigns", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) List(ctx context.Context, limit, offset uint64) ([]domain.Profile, error) {
	rows, err := r.db.Query(ctx, listProfilesQuery, int64(limit), int64(offset))
	if err != nil {
		zap.L().Error("can't list campaigns", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	profiles := make([]domain.Profile, 0, limit)
	for rows.Next() {
		var p domain.Profile
		err := rows.Scan(&p.ID, &p.Address, &p.Name, &p.URL, &p.ImageURL, &p.Description, &p.Owner, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan campaign row", zap.Error(err))
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate campaign rows", zap.Error(err))
		return nil, err
	}
	return profiles, nil
}

func (r *Repository) FindProfile(ctx context.Context, address string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.QueryRow(ctx, findProfileQuery, address).
		Scan(&p.ID, &p.Address, &p.Name, &p.URL, &p.ImageURL, &p.Description, &p.Owner, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find campaign profile", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByAddress(ctx context.Context, address string) (*domain.Campaign, error) {
	campaign, err := scanCampaign(r.db.QueryRow(ctx, findCampaignQuery, address))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find campaign", zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

// LockByID must run inside a transaction; the row stays locked until it ends.
func (r *Repository) LockByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	campaign, err := scanCampaign(r.db.QueryRow(ctx, lockCampaignQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCampaignNotFound
		}
		zap.L().Error("can't lock campaign", zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

func (r *Repository) AddDonation(ctx context.Context, id int64, value uint64) error {
	err := r.update(ctx, "can't add donation to campaign", addDonationQuery, value, id)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == numericValueOutOfRange {
		return fmt.Errorf("%w: campaign totals would overflow", domain.ErrInvalidInput)
	}
	return err
}

func (r *Repository) UpdateBeneficiary(ctx context.Context, id int64, beneficiary string) error {
	return r.update(ctx, "can't update beneficiary", updateBeneficiaryQuery, beneficiary, id)
}

func (r *Repository) ResetBalance(ctx context.Context, id int64) error {
	return r.update(ctx, "can't reset campaign balance", resetBalanceQuery, id)
}

func (r *Repository) update(ctx context.Context, msg, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error(msg, zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID, &c.Address, &c.Name, &c.URL, &c.ImageURL, &c.Description, &c.Owner, &c.CreatedAt,
		&c.Beneficiary, &c.Balance, &c.TotalDonations, &c.DonationsCount,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
