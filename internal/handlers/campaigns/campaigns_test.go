package campaigns

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fundraiser/internal/domain"
	"github.com/GlebRadaev/fundraiser/internal/dto"
	"github.com/GlebRadaev/fundraiser/internal/service/registryservice"
	"github.com/GlebRadaev/fundraiser/pkg/auth"
)

func NewMock(t *testing.T) (*CampaignHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withAccount(r *http.Request, account string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.AccountKey, account))
}

func TestCreateHandler(t *testing.T) {
	createdAt := time.Date(2024, 12, 9, 16, 9, 57, 0, time.UTC)
	params := registryservice.CreateParams{
		Name:        "Beneficiary Name",
		URL:         "beneficiary.org",
		ImageURL:    "https://placekitten.com/200/300",
		Description: "Beneficiary Description",
		Beneficiary: "79927398713",
	}

	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody *dto.CampaignResponseDTO
	}{
		{
			name: "Campaign created",
			body: `{"name":"Beneficiary Name","url":"beneficiary.org","imageURL":"https://placekitten.com/200/300","description":"Beneficiary Description","beneficiary":"79927398713"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateFundraiser(gomock.Any(), "owner", params).Return(&domain.Campaign{
					Profile: domain.Profile{
						ID:          1,
						Address:     "a1",
						Name:        params.Name,
						URL:         params.URL,
						ImageURL:    params.ImageURL,
						Description: params.Description,
						Owner:       "owner",
						CreatedAt:   createdAt,
					},
					Beneficiary: params.Beneficiary,
				}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &dto.CampaignResponseDTO{
				ProfileResponseDTO: dto.ProfileResponseDTO{
					Address:     "a1",
					Name:        params.Name,
					URL:         params.URL,
					ImageURL:    params.ImageURL,
					Description: params.Description,
					Owner:       "owner",
					CreatedAt:   createdAt,
				},
				Beneficiary: params.Beneficiary,
			},
		},
		{
			name:         "Invalid JSON",
			body:         `{"name":`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing beneficiary",
			body:         `{"name":"Beneficiary Name"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Beneficiary fails checksum",
			body:         `{"name":"Beneficiary Name","beneficiary":"79927398710"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Service rejects input",
			body: `{"name":"Beneficiary Name","beneficiary":"79927398713"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateFundraiser(gomock.Any(), "owner", gomock.Any()).
					Return(nil, fmt.Errorf("%w: owner is required", domain.ErrInvalidInput))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"name":"Beneficiary Name","beneficiary":"79927398713"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateFundraiser(gomock.Any(), "owner", gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := withAccount(httptest.NewRequest(http.MethodPost, "/api/campaigns", bytes.NewBufferString(tt.body)), "owner")
			w := httptest.NewRecorder()
			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.CampaignResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	profiles := []domain.Profile{
		{ID: 1, Address: "a1", Name: "first", Owner: "owner"},
		{ID: 2, Address: "a2", Name: "second", Owner: "owner"},
	}

	tests := []struct {
		name            string
		query           string
		prepareMock     func(service *MockService)
		expectedCode    int
		expectedMessage string
		expectedLen     int
	}{
		{
			name:  "Default paging",
			query: "",
			prepareMock: func(service *MockService) {
				service.EXPECT().Fundraisers(gomock.Any(), uint64(domain.PageCap), uint64(0)).Return(profiles, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:  "Explicit paging",
			query: "?limit=2&offset=10",
			prepareMock: func(service *MockService) {
				service.EXPECT().Fundraisers(gomock.Any(), uint64(2), uint64(10)).Return(profiles, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:  "Empty page",
			query: "?offset=30",
			prepareMock: func(service *MockService) {
				service.EXPECT().Fundraisers(gomock.Any(), uint64(domain.PageCap), uint64(30)).Return([]domain.Profile{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:  "Offset out of bounds",
			query: "?offset=31",
			prepareMock: func(service *MockService) {
				service.EXPECT().Fundraisers(gomock.Any(), uint64(domain.PageCap), uint64(31)).Return(nil, domain.ErrOutOfBounds)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "offset out of bounds",
		},
		{
			name:            "Invalid limit",
			query:           "?limit=-1",
			prepareMock:     func(service *MockService) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "invalid limit",
		},
		{
			name:            "Invalid offset",
			query:           "?offset=abc",
			prepareMock:     func(service *MockService) {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "invalid offset",
		},
		{
			name:  "Internal server error",
			query: "",
			prepareMock: func(service *MockService) {
				service.EXPECT().Fundraisers(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodGet, "/api/campaigns"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.List(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.ProfileResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Len(t, body, tt.expectedLen)
				assert.NotNil(t, body)
			}
			if tt.expectedMessage != "" {
				assert.JSONEq(t, fmt.Sprintf(`{"message":%q}`, tt.expectedMessage), w.Body.String())
			}
		})
	}
}

func TestCountHandler(t *testing.T) {
	t.Run("Count returned", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().FundraisersCount(gomock.Any()).Return(uint64(3), nil)

		w := httptest.NewRecorder()
		handler.Count(w, httptest.NewRequest(http.MethodGet, "/api/campaigns/count", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count":3}`, w.Body.String())
	})

	t.Run("Internal server error", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().FundraisersCount(gomock.Any()).Return(uint64(0), errors.New("db error"))

		w := httptest.NewRecorder()
		handler.Count(w, httptest.NewRequest(http.MethodGet, "/api/campaigns/count", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
