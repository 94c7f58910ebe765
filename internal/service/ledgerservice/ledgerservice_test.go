package ledgerservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GlebRadaev/fundraiser/internal/domain"
	"github.com/GlebRadaev/fundraiser/internal/metrics"
	"github.com/GlebRadaev/fundraiser/internal/pg"
)

const (
	address = "2b9f8a4e-6c1d-4a57-9d0e-3f1c2b7a8e90"
	owner   = "owner"
)

var recordedAt = time.Date(2024, 12, 9, 16, 9, 57, 0, time.UTC)

type mocks struct {
	campaignRepo   *MockCampaignRepo
	donationRepo   *MockDonationRepo
	withdrawalRepo *MockWithdrawalRepo
	eventRepo      *MockEventRepo
	payout         *MockPayout
	txManager      *pg.MockTXManager
	metrics        *metrics.LedgerMetrics
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		campaignRepo:   NewMockCampaignRepo(ctrl),
		donationRepo:   NewMockDonationRepo(ctrl),
		withdrawalRepo: NewMockWithdrawalRepo(ctrl),
		eventRepo:      NewMockEventRepo(ctrl),
		payout:         NewMockPayout(ctrl),
		txManager:      pg.NewMockTXManager(ctrl),
		metrics:        metrics.NewLedgerMetrics(metrics.NewRegistry()),
	}
	service := New(m.campaignRepo, m.donationRepo, m.withdrawalRepo, m.eventRepo, m.payout, m.txManager, m.metrics)
	return service, m
}

func profile() *domain.Profile {
	return &domain.Profile{
		ID:          1,
		Address:     address,
		Name:        "Beneficiary Name",
		URL:         "beneficiary.org",
		ImageURL:    "https://placekitten.com/200/300",
		Description: "Beneficiary Description",
		Owner:       owner,
	}
}

func runInTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })
}

func expectEvent(t *testing.T, m *mocks, eventType domain.EventType, payload any, err error) {
	m.eventRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *domain.Event) error {
			assert.Equal(t, eventType, e.Type)
			assert.Equal(t, address, e.CampaignAddress)
			expected, mErr := json.Marshal(payload)
			require.NoError(t, mErr)
			assert.JSONEq(t, string(expected), string(e.Payload))
			return err
		})
}

func TestGetCampaign(t *testing.T) {
	campaign := &domain.Campaign{Profile: *profile(), Beneficiary: "79927398713", Balance: 10, TotalDonations: 30, DonationsCount: 2}

	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expected      *domain.Campaign
		expectedError error
	}{
		{
			name: "Campaign found",
			prepareMock: func(m *mocks) {
				m.campaignRepo.EXPECT().FindByAddress(gomock.Any(), address).Return(campaign, nil)
			},
			expected: campaign,
		},
		{
			name: "Campaign not found",
			prepareMock: func(m *mocks) {
				m.campaignRepo.EXPECT().FindByAddress(gomock.Any(), address).Return(nil, nil)
			},
			expectedError: domain.ErrCampaignNotFound,
		},
		{
			name: "Repository failure",
			prepareMock: func(m *mocks) {
				m.campaignRepo.EXPECT().FindByAddress(gomock.Any(), address).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.GetCampaign(context.Background(), address)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDonate(t *testing.T) {
	tests := []struct {
		name          string
		donor         string
		value         uint64
		prepareMock   func(t *testing.T, m *mocks)
		expectedError error
	}{
		{
			name:  "Donation recorded",
			donor: "donor",
			value: 289,
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
				runInTx(m)
				m.campaignRepo.EXPECT().AddDonation(gomock.Any(), int64(1), uint64(289)).Return(nil)
				m.donationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *domain.Donation) (*domain.Donation, error) {
						assert.Equal(t, int64(1), d.CampaignID)
						assert.Equal(t, "donor", d.Donor)
						assert.Equal(t, uint64(289), d.Value)
						assert.True(t, d.CreatedAt.IsZero(), "the date is stamped by storage under the row lock")
						d.ID = 1
						d.CreatedAt = recordedAt
						return d, nil
					})
				expectEvent(t, m, domain.EventDonationReceived, domain.DonationReceived{Donor: "donor", Value: 289}, nil)
			},
		},
		{
			name:  "Largest storable value accepted",
			donor: "donor",
			value: math.MaxInt64,
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
				runInTx(m)
				m.campaignRepo.EXPECT().AddDonation(gomock.Any(), int64(1), uint64(math.MaxInt64)).Return(nil)
				m.donationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *domain.Donation) (*domain.Donation, error) {
						d.CreatedAt = recordedAt
						return d, nil
					})
				expectEvent(t, m, domain.EventDonationReceived, domain.DonationReceived{Donor: "donor", Value: math.MaxInt64}, nil)
			},
		},
		{
			name:          "Value above storage range rejected",
			donor:         "donor",
			value:         math.MaxInt64 + 1,
			prepareMock:   func(t *testing.T, m *mocks) {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "Max unsigned value rejected",
			donor:         "donor",
			value:         math.MaxUint64,
			prepareMock:   func(t *testing.T, m *mocks) {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:  "Campaign totals overflow rejected",
			donor: "donor",
			value: 10,
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
				runInTx(m)
				m.campaignRepo.EXPECT().AddDonation(gomock.Any(), int64(1), uint64(10)).
					Return(fmt.Errorf("%w: campaign totals would overflow", domain.ErrInvalidInput))
			},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "Zero value rejected",
			donor:         "donor",
			value:         0,
			prepareMock:   func(t *testing.T, m *mocks) {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:          "Anonymous donor rejected",
			donor:         "",
			value:         10,
			prepareMock:   func(t *testing.T, m *mocks) {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:  "Unknown campaign",
			donor: "donor",
			value: 10,
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(nil, nil)
			},
			expectedError: domain.ErrCampaignNotFound,
		},
		{
			name:  "Balance update failure",
			donor: "donor",
			value: 10,
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
				runInTx(m)
				m.campaignRepo.EXPECT().AddDonation(gomock.Any(), int64(1), uint64(10)).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:  "History insert failure",
			donor: "donor",
			value: 10,
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
				runInTx(m)
				m.campaignRepo.EXPECT().AddDonation(gomock.Any(), int64(1), uint64(10)).Return(nil)
				m.donationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:  "Event append failure",
			donor: "donor",
			value: 10,
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
				runInTx(m)
				m.campaignRepo.EXPECT().AddDonation(gomock.Any(), int64(1), uint64(10)).Return(nil)
				m.donationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *domain.Donation) (*domain.Donation, error) { return d, nil })
				expectEvent(t, m, domain.EventDonationReceived, domain.DonationReceived{Donor: "donor", Value: 10}, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(t, m)

			donation, err := service.Donate(context.Background(), address, tt.donor, tt.value)
			if tt.expectedError != nil {
				if errors.Is(tt.expectedError, domain.ErrInvalidInput) || errors.Is(tt.expectedError, domain.ErrCampaignNotFound) {
					assert.ErrorIs(t, err, tt.expectedError)
				} else {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				assert.Nil(t, donation)
				assert.Equal(t, float64(0), testutil.ToFloat64(m.metrics.Donations))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, donation.Value)
			assert.Equal(t, recordedAt, donation.CreatedAt)
			assert.Equal(t, float64(1), testutil.ToFloat64(m.metrics.Donations))
			assert.Equal(t, float64(tt.value), testutil.ToFloat64(m.metrics.DonatedAmount))
		})
	}
}

func TestReceive(t *testing.T) {
	t.Run("Direct transfer recorded like a donation", func(t *testing.T) {
		service, m := NewMock(t)
		m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
		runInTx(m)
		m.campaignRepo.EXPECT().AddDonation(gomock.Any(), int64(1), uint64(100)).Return(nil)
		m.donationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *domain.Donation) (*domain.Donation, error) { return d, nil })
		expectEvent(t, m, domain.EventDonationReceived, domain.DonationReceived{Donor: "sender", Value: 100}, nil)

		donation, err := service.Receive(context.Background(), address, "sender", 100)
		require.NoError(t, err)
		assert.Equal(t, "sender", donation.Donor)
		assert.Equal(t, uint64(100), donation.Value)
	})

	t.Run("Zero transfer rejected", func(t *testing.T) {
		service, _ := NewMock(t)

		donation, err := service.Receive(context.Background(), address, "sender", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, donation)
	})
}

func TestSetBeneficiary(t *testing.T) {
	tests := []struct {
		name          string
		caller        string
		beneficiary   string
		prepareMock   func(t *testing.T, m *mocks)
		expectedError error
	}{
		{
			name:        "Owner changes beneficiary",
			caller:      owner,
			beneficiary: "2377225624",
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
				runInTx(m)
				m.campaignRepo.EXPECT().UpdateBeneficiary(gomock.Any(), int64(1), "2377225624").Return(nil)
				expectEvent(t, m, domain.EventBeneficiaryChanged, domain.BeneficiaryChanged{Beneficiary: "2377225624"}, nil)
			},
		},
		{
			name:        "Non-owner rejected",
			caller:      "stranger",
			beneficiary: "2377225624",
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
			},
			expectedError: domain.ErrNotOwner,
		},
		{
			name:          "Empty beneficiary rejected",
			caller:        owner,
			beneficiary:   "",
			prepareMock:   func(t *testing.T, m *mocks) {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:        "Unknown campaign",
			caller:      owner,
			beneficiary: "2377225624",
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(nil, nil)
			},
			expectedError: domain.ErrCampaignNotFound,
		},
		{
			name:        "Update failure",
			caller:      owner,
			beneficiary: "2377225624",
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
				runInTx(m)
				m.campaignRepo.EXPECT().UpdateBeneficiary(gomock.Any(), int64(1), "2377225624").Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(t, m)

			err := service.SetBeneficiary(context.Background(), address, tt.caller, tt.beneficiary)
			switch {
			case tt.expectedError == nil:
				assert.NoError(t, err)
			case errors.Is(tt.expectedError, domain.ErrNotOwner),
				errors.Is(tt.expectedError, domain.ErrInvalidInput),
				errors.Is(tt.expectedError, domain.ErrCampaignNotFound):
				assert.ErrorIs(t, err, tt.expectedError)
			default:
				assert.EqualError(t, err, tt.expectedError.Error())
			}
		})
	}
}

func TestMyDonationsCount(t *testing.T) {
	t.Run("Counts caller donations", func(t *testing.T) {
		service, m := NewMock(t)
		m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
		m.donationRepo.EXPECT().CountByDonor(gomock.Any(), int64(1), "donor").Return(uint64(2), nil)

		count, err := service.MyDonationsCount(context.Background(), address, "donor")
		assert.NoError(t, err)
		assert.Equal(t, uint64(2), count)
	})

	t.Run("Repository failure", func(t *testing.T) {
		service, m := NewMock(t)
		m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
		m.donationRepo.EXPECT().CountByDonor(gomock.Any(), int64(1), "donor").Return(uint64(0), errors.New("db error"))

		count, err := service.MyDonationsCount(context.Background(), address, "donor")
		assert.EqualError(t, err, "db error")
		assert.Zero(t, count)
	})

	t.Run("Unknown campaign", func(t *testing.T) {
		service, m := NewMock(t)
		m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(nil, nil)

		_, err := service.MyDonationsCount(context.Background(), address, "donor")
		assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
	})
}

func TestMyDonations(t *testing.T) {
	first := time.Date(2024, 12, 9, 16, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)

	tests := []struct {
		name           string
		prepareMock    func(m *mocks)
		expectedValues []uint64
		expectedDates  []time.Time
		expectedError  error
	}{
		{
			name: "Values and dates in insertion order",
			prepareMock: func(m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
				m.donationRepo.EXPECT().FindByDonor(gomock.Any(), int64(1), "donor").Return([]domain.Donation{
					{ID: 1, CampaignID: 1, Donor: "donor", Value: 289, CreatedAt: first},
					{ID: 4, CampaignID: 1, Donor: "donor", Value: 5, CreatedAt: second},
				}, nil)
			},
			expectedValues: []uint64{289, 5},
			expectedDates:  []time.Time{first, second},
		},
		{
			name: "No donations",
			prepareMock: func(m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
				m.donationRepo.EXPECT().FindByDonor(gomock.Any(), int64(1), "donor").Return([]domain.Donation{}, nil)
			},
			expectedValues: []uint64{},
			expectedDates:  []time.Time{},
		},
		{
			name: "Repository failure",
			prepareMock: func(m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
				m.donationRepo.EXPECT().FindByDonor(gomock.Any(), int64(1), "donor").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			values, dates, err := service.MyDonations(context.Background(), address, "donor")
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, values)
				assert.Nil(t, dates)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedValues, values)
			assert.Equal(t, tt.expectedDates, dates)
		})
	}
}

func TestWithdraw(t *testing.T) {
	funded := func() *domain.Campaign {
		return &domain.Campaign{Profile: *profile(), Beneficiary: "79927398713", Balance: 289, TotalDonations: 289, DonationsCount: 1}
	}

	tests := []struct {
		name           string
		caller         string
		prepareMock    func(t *testing.T, m *mocks)
		expectedAmount uint64
		expectedError  error
		transferFailed bool
	}{
		{
			name:   "Owner withdraws whole balance",
			caller: owner,
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
				runInTx(m)
				m.campaignRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(funded(), nil)
				m.campaignRepo.EXPECT().ResetBalance(gomock.Any(), int64(1)).Return(nil)
				m.withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
						assert.Equal(t, uint64(289), w.Amount)
						assert.Equal(t, "79927398713", w.Beneficiary)
						assert.NotEmpty(t, w.Reference)
						return w, nil
					})
				expectEvent(t, m, domain.EventWithdraw, domain.Withdraw{Amount: 289}, nil)
				m.payout.EXPECT().Transfer(gomock.Any(), "79927398713", uint64(289), gomock.Any()).Return(nil)
			},
			expectedAmount: 289,
		},
		{
			name:   "Zero balance is a successful no-op",
			caller: owner,
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
				runInTx(m)
				empty := funded()
				empty.Balance = 0
				m.campaignRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(empty, nil)
				expectEvent(t, m, domain.EventWithdraw, domain.Withdraw{Amount: 0}, nil)
			},
			expectedAmount: 0,
		},
		{
			name:   "Non-owner rejected",
			caller: "stranger",
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
			},
			expectedError: domain.ErrNotOwner,
		},
		{
			name:   "Unknown campaign",
			caller: owner,
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(nil, nil)
			},
			expectedError: domain.ErrCampaignNotFound,
		},
		{
			name:   "Transfer failure rolls back",
			caller: owner,
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
				runInTx(m)
				m.campaignRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(funded(), nil)
				m.campaignRepo.EXPECT().ResetBalance(gomock.Any(), int64(1)).Return(nil)
				m.withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) { return w, nil })
				expectEvent(t, m, domain.EventWithdraw, domain.Withdraw{Amount: 289}, nil)
				m.payout.EXPECT().Transfer(gomock.Any(), "79927398713", uint64(289), gomock.Any()).
					Return(errors.New("payout unavailable"))
			},
			expectedError:  domain.ErrTransferFailure,
			transferFailed: true,
		},
		{
			name:   "Lock failure",
			caller: owner,
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
				runInTx(m)
				m.campaignRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:   "Withdrawal record failure",
			caller: owner,
			prepareMock: func(t *testing.T, m *mocks) {
				m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
				runInTx(m)
				m.campaignRepo.EXPECT().LockByID(gomock.Any(), int64(1)).Return(funded(), nil)
				m.campaignRepo.EXPECT().ResetBalance(gomock.Any(), int64(1)).Return(nil)
				m.withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(t, m)

			withdrawal, err := service.Withdraw(context.Background(), address, tt.caller)
			if tt.expectedError != nil {
				if errors.Is(tt.expectedError, domain.ErrNotOwner) ||
					errors.Is(tt.expectedError, domain.ErrCampaignNotFound) ||
					errors.Is(tt.expectedError, domain.ErrTransferFailure) {
					assert.ErrorIs(t, err, tt.expectedError)
				} else {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				assert.Nil(t, withdrawal)
				assert.Equal(t, float64(0), testutil.ToFloat64(m.metrics.Withdrawals))
				if tt.transferFailed {
					assert.Equal(t, float64(1), testutil.ToFloat64(m.metrics.TransferFailures))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAmount, withdrawal.Amount)
			assert.Equal(t, "79927398713", withdrawal.Beneficiary)
			if tt.expectedAmount > 0 {
				assert.Equal(t, float64(1), testutil.ToFloat64(m.metrics.Withdrawals))
				assert.Equal(t, float64(tt.expectedAmount), testutil.ToFloat64(m.metrics.WithdrawnAmount))
			} else {
				assert.Empty(t, withdrawal.Reference)
				assert.Equal(t, float64(0), testutil.ToFloat64(m.metrics.Withdrawals))
			}
		})
	}
}

func TestWithdrawals(t *testing.T) {
	history := []domain.Withdrawal{{ID: 1, CampaignID: 1, Beneficiary: "79927398713", Amount: 289, Reference: "ref"}}

	t.Run("History returned", func(t *testing.T) {
		service, m := NewMock(t)
		m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
		m.withdrawalRepo.EXPECT().FindByCampaignID(gomock.Any(), int64(1)).Return(history, nil)

		result, err := service.Withdrawals(context.Background(), address)
		assert.NoError(t, err)
		assert.Equal(t, history, result)
	})

	t.Run("Repository failure", func(t *testing.T) {
		service, m := NewMock(t)
		m.campaignRepo.EXPECT().FindProfile(gomock.Any(), address).Return(profile(), nil)
		m.withdrawalRepo.EXPECT().FindByCampaignID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))

		result, err := service.Withdrawals(context.Background(), address)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, result)
	})
}

func TestAuthorizeLogsRejection(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	err := authorize(profile(), "intruder", "withdraw")

	assert.ErrorIs(t, err, domain.ErrNotOwner)
	entries := logs.FilterMessage("withdraw rejected").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, owner, fields["owner"])
	assert.Equal(t, "intruder", fields["caller"])
	assert.Equal(t, address, fields["address"])

	assert.NoError(t, authorize(profile(), owner, "withdraw"))
	assert.Equal(t, 1, logs.Len())
}
