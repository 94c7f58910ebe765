package repo

import (
	"github.com/GlebRadaev/fundraiser/internal/pg"
	campaignrepo "github.com/GlebRadaev/fundraiser/internal/repo/campaign-repo"
	donationrepo "github.com/GlebRadaev/fundraiser/internal/repo/donation-repo"
	eventrepo "github.com/GlebRadaev/fundraiser/internal/repo/event-repo"
	withdrawalrepo "github.com/GlebRadaev/fundraiser/internal/repo/withdrawal-repo"
	"github.com/GlebRadaev/fundraiser/internal/service/eventservice"
	"github.com/GlebRadaev/fundraiser/internal/service/ledgerservice"
	"github.com/GlebRadaev/fundraiser/internal/service/registryservice"
)

// EventRepo is written by the mutating services and read by the event service.
type EventRepo interface {
	registryservice.EventRepo
	eventservice.Repo
}

type Repositories struct {
	RegistryRepo   registryservice.Repo
	CampaignRepo   ledgerservice.CampaignRepo
	DonationRepo   ledgerservice.DonationRepo
	WithdrawalRepo ledgerservice.WithdrawalRepo
	EventRepo      EventRepo
}

func New(conn pg.Database, profileCacheSize int) (*Repositories, error) {
	campaignRepo, err := campaignrepo.NewCached(campaignrepo.New(conn), profileCacheSize)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		RegistryRepo:   campaignRepo,
		CampaignRepo:   campaignRepo,
		DonationRepo:   donationrepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn),
		EventRepo:      eventrepo.New(conn),
	}, nil
}
