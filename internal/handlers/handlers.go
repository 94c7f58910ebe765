package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/fundraiser/docs"
	campaignhandlers "github.com/GlebRadaev/fundraiser/internal/handlers/campaigns"
	eventhandlers "github.com/GlebRadaev/fundraiser/internal/handlers/events"
	ledgerhandlers "github.com/GlebRadaev/fundraiser/internal/handlers/ledger"
	"github.com/GlebRadaev/fundraiser/internal/service"
	"github.com/GlebRadaev/fundraiser/pkg/auth"
)

type CampaignHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Count(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetCampaign(w http.ResponseWriter, r *http.Request)
	SetBeneficiary(w http.ResponseWriter, r *http.Request)
	Donate(w http.ResponseWriter, r *http.Request)
	Receive(w http.ResponseWriter, r *http.Request)
	MyDonations(w http.ResponseWriter, r *http.Request)
	MyDonationsCount(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type EventHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	CampaignHandler CampaignHandler
	LedgerHandler   LedgerHandler
	EventHandler    EventHandler
	jwtService      auth.JWTServiceInterface
	metrics         http.Handler
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, metrics http.Handler) *Handlers {
	return &Handlers{
		CampaignHandler: campaignhandlers.New(s.RegistryService),
		LedgerHandler:   ledgerhandlers.New(s.LedgerService),
		EventHandler:    eventhandlers.New(s.EventService),
		jwtService:      jwtService,
		metrics:         metrics,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.metrics != nil {
		r.Handle("/metrics", h.metrics)
	}

	r.Get("/api/events", h.EventHandler.List)
	r.Route("/api/campaigns", func(r chi.Router) {
		r.Get("/", h.CampaignHandler.List)
		r.Get("/count", h.CampaignHandler.Count)
		r.Get("/{address}", h.LedgerHandler.GetCampaign)
		r.Get("/{address}/withdrawals", h.LedgerHandler.GetWithdrawals)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Post("/", h.CampaignHandler.Create)
			r.Put("/{address}/beneficiary", h.LedgerHandler.SetBeneficiary)
			r.Post("/{address}/donations", h.LedgerHandler.Donate)
			r.Post("/{address}/receive", h.LedgerHandler.Receive)
			r.Get("/{address}/donations/me", h.LedgerHandler.MyDonations)
			r.Get("/{address}/donations/me/count", h.LedgerHandler.MyDonationsCount)
			r.Post("/{address}/withdraw", h.LedgerHandler.Withdraw)
		})
	})

	return r
}
