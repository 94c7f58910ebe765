package service

import (
	"github.com/GlebRadaev/fundraiser/internal/dispatcher"
	"github.com/GlebRadaev/fundraiser/internal/handlers/campaigns"
	"github.com/GlebRadaev/fundraiser/internal/handlers/events"
	"github.com/GlebRadaev/fundraiser/internal/handlers/ledger"
	"github.com/GlebRadaev/fundraiser/internal/metrics"
	"github.com/GlebRadaev/fundraiser/internal/pg"
	"github.com/GlebRadaev/fundraiser/internal/repo"
	"github.com/GlebRadaev/fundraiser/internal/service/eventservice"
	"github.com/GlebRadaev/fundraiser/internal/service/ledgerservice"
	"github.com/GlebRadaev/fundraiser/internal/service/registryservice"
)

// EventService serves both the public event log and the dispatcher.
type EventService interface {
	events.Service
	dispatcher.EventSource
}

type Services struct {
	RegistryService campaigns.Service
	LedgerService   ledger.Service
	EventService    EventService
}

func New(repo *repo.Repositories, txManager pg.TXManager, payout ledgerservice.Payout, m *metrics.LedgerMetrics) *Services {
	registryService := registryservice.New(repo.RegistryRepo, repo.EventRepo, txManager, m)
	ledgerService := ledgerservice.New(
		repo.CampaignRepo,
		repo.DonationRepo,
		repo.WithdrawalRepo,
		repo.EventRepo,
		payout,
		txManager,
		m,
	)
	eventService := eventservice.New(repo.EventRepo, txManager)

	return &Services{
		RegistryService: registryService,
		LedgerService:   ledgerService,
		EventService:    eventService,
	}
}
