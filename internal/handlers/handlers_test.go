package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fundraiser/internal/handlers/campaigns"
	"github.com/GlebRadaev/fundraiser/internal/handlers/ledger"
	"github.com/GlebRadaev/fundraiser/internal/metrics"
	"github.com/GlebRadaev/fundraiser/internal/service"
	"github.com/GlebRadaev/fundraiser/pkg/auth"
)

const address = "/api/campaigns/2b9f8a4e-6c1d-4a57-9d0e-3f1c2b7a8e90"

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		RegistryService: campaigns.NewMockService(ctrl),
		LedgerService:   ledger.NewMockService(ctrl),
	}

	h := New(services, auth.NewJWTService("secret"), nil)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.CampaignHandler)
	assert.NotNil(t, h.LedgerHandler)
	assert.NotNil(t, h.EventHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCampaignHandler := NewMockCampaignHandler(ctrl)
	mockLedgerHandler := NewMockLedgerHandler(ctrl)
	mockEventHandler := NewMockEventHandler(ctrl)

	mockCampaignHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockCampaignHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockCampaignHandler.EXPECT().Count(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetCampaign(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().SetBeneficiary(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().Donate(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().Receive(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().MyDonations(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().MyDonationsCount(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockEventHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := auth.NewJWTService("secret")
	h := &Handlers{
		CampaignHandler: mockCampaignHandler,
		LedgerHandler:   mockLedgerHandler,
		EventHandler:    mockEventHandler,
		jwtService:      jwtService,
		metrics:         metrics.NewRegistry().Handler(),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	token, err := jwtService.GenerateJWT("79927398713", time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/campaigns", http.StatusOK},
		{"GET", "/api/campaigns/count", http.StatusOK},
		{"GET", address, http.StatusOK},
		{"GET", address + "/withdrawals", http.StatusOK},
		{"GET", "/api/events", http.StatusOK},
		{"GET", "/metrics", http.StatusOK},
		{"POST", "/api/campaigns", http.StatusUnauthorized},
		{"PUT", address + "/beneficiary", http.StatusUnauthorized},
		{"POST", address + "/donations", http.StatusUnauthorized},
		{"POST", address + "/receive", http.StatusUnauthorized},
		{"GET", address + "/donations/me", http.StatusUnauthorized},
		{"GET", address + "/donations/me/count", http.StatusUnauthorized},
		{"POST", address + "/withdraw", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})

		if tt.status == http.StatusUnauthorized {
			t.Run(tt.method+" "+tt.url+" with token", func(t *testing.T) {
				req := httptest.NewRequest(tt.method, tt.url, nil)
				req.Header.Set("Authorization", "Bearer "+token)
				rec := httptest.NewRecorder()

				router.ServeHTTP(rec, req)

				assert.Equal(t, http.StatusOK, rec.Code)
			})
		}
	}
}
