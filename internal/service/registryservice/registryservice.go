package registryservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fundraiser/internal/domain"
	"github.com/GlebRadaev/fundraiser/internal/metrics"
	"github.com/GlebRadaev/fundraiser/internal/pg"
)

type Repo interface {
	Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	Count(ctx context.Context) (uint64, error)
	List(ctx context.Context, limit, offset uint64) ([]domain.Profile, error)
}

type EventRepo interface {
	Append(ctx context.Context, event *domain.Event) error
}

type Service struct {
	repo      Repo
	eventRepo EventRepo
	txManager pg.TXManager
	metrics   *metrics.LedgerMetrics
}

func New(repo Repo, eventRepo EventRepo, txManager pg.TXManager, m *metrics.LedgerMetrics) *Service {
	return &Service{
		repo:      repo,
		eventRepo: eventRepo,
		txManager: txManager,
		metrics:   m,
	}
}

type CreateParams struct {
	Name        string
	URL         string
	ImageURL    string
	Description string
	Beneficiary string
}

func (s *Service) CreateFundraiser(ctx context.Context, owner string, params CreateParams) (*domain.Campaign, error) {
	if params.Beneficiary == "" {
		return nil, fmt.Errorf("%w: beneficiary is required", domain.ErrInvalidInput)
	}
	if owner == "" {
		return nil, fmt.Errorf("%w: owner is required", domain.ErrInvalidInput)
	}

	campaign := &domain.Campaign{
		Profile: domain.Profile{
			Address:     uuid.NewString(),
			Name:        params.Name,
			URL:         params.URL,
			ImageURL:    params.ImageURL,
			Description: params.Description,
			Owner:       owner,
			CreatedAt:   time.Now(),
		},
		Beneficiary: params.Beneficiary,
	}

	event, err := domain.NewEvent(domain.EventCampaignCreated, campaign.Address, domain.CampaignCreated{
		Address:     campaign.Address,
		Name:        campaign.Name,
		URL:         campaign.URL,
		ImageURL:    campaign.ImageURL,
		Description: campaign.Description,
		Beneficiary: campaign.Beneficiary,
	})
	if err != nil {
		return nil, err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.repo.Create(ctx, campaign); err != nil {
			return err
		}
		return s.eventRepo.Append(ctx, event)
	})
	if err != nil {
		zap.L().Error("failed to create campaign", zap.Error(err))
		return nil, err
	}

	s.metrics.CampaignsCreated.Inc()
	zap.L().Info("campaign created", zap.String("address", campaign.Address), zap.String("owner", owner))
	return campaign, nil
}

// Fundraisers returns at most domain.PageCap profiles starting at offset, in creation order.
func (s *Service) Fundraisers(ctx context.Context, limit, offset uint64) ([]domain.Profile, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		zap.L().Error("failed to count campaigns", zap.Error(err))
		return nil, err
	}
	if offset > count {
		return nil, domain.ErrOutOfBounds
	}

	size := min(limit, domain.PageCap, count-offset)
	if size == 0 {
		return []domain.Profile{}, nil
	}

	profiles, err := s.repo.List(ctx, size, offset)
	if err != nil {
		zap.L().Error("failed to list campaigns", zap.Error(err))
		return nil, err
	}
	return profiles, nil
}

func (s *Service) FundraisersCount(ctx context.Context) (uint64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		zap.L().Error("failed to count campaigns", zap.Error(err))
		return 0, err
	}
	return count, nil
}
