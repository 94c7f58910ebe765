package ledgerservice

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fundraiser/internal/access"
	"github.com/GlebRadaev/fundraiser/internal/domain"
	"github.com/GlebRadaev/fundraiser/internal/metrics"
	"github.com/GlebRadaev/fundraiser/internal/pg"
)

type CampaignRepo interface {
	FindProfile(ctx context.Context, address string) (*domain.Profile, error)
	FindByAddress(ctx context.Context, address string) (*domain.Campaign, error)
	LockByID(ctx context.Context, id int64) (*domain.Campaign, error)
	AddDonation(ctx context.Context, id int64, value uint64) error
	UpdateBeneficiary(ctx context.Context, id int64, beneficiary string) error
	ResetBalance(ctx context.Context, id int64) error
}

type DonationRepo interface {
	Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error)
	CountByDonor(ctx context.Context, campaignID int64, donor string) (uint64, error)
	FindByDonor(ctx context.Context, campaignID int64, donor string) ([]domain.Donation, error)
}

type WithdrawalRepo interface {
	Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	FindByCampaignID(ctx context.Context, campaignID int64) ([]domain.Withdrawal, error)
}

type EventRepo interface {
	Append(ctx context.Context, event *domain.Event) error
}

// Payout moves withdrawn funds to the beneficiary outside of the ledger.
type Payout interface {
	Transfer(ctx context.Context, beneficiary string, amount uint64, reference string) error
}

type Service struct {
	campaignRepo   CampaignRepo
	donationRepo   DonationRepo
	withdrawalRepo WithdrawalRepo
	eventRepo      EventRepo
	payout         Payout
	txManager      pg.TXManager
	metrics        *metrics.LedgerMetrics
}

func New(
	campaignRepo CampaignRepo,
	donationRepo DonationRepo,
	withdrawalRepo WithdrawalRepo,
	eventRepo EventRepo,
	payout Payout,
	txManager pg.TXManager,
	m *metrics.LedgerMetrics,
) *Service {
	return &Service{
		campaignRepo:   campaignRepo,
		donationRepo:   donationRepo,
		withdrawalRepo: withdrawalRepo,
		eventRepo:      eventRepo,
		payout:         payout,
		txManager:      txManager,
		metrics:        m,
	}
}

func (s *Service) GetCampaign(ctx context.Context, address string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.FindByAddress(ctx, address)
	if err != nil {
		zap.L().Error("failed to get campaign", zap.Error(err))
		return nil, err
	}
	if campaign == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return campaign, nil
}

func (s *Service) Donate(ctx context.Context, address, donor string, value uint64) (*domain.Donation, error) {
	return s.recordDonation(ctx, address, donor, value)
}

// Receive is the direct transfer entrypoint; it records the value exactly like Donate.
func (s *Service) Receive(ctx context.Context, address, sender string, value uint64) (*domain.Donation, error) {
	return s.recordDonation(ctx, address, sender, value)
}

func (s *Service) recordDonation(ctx context.Context, address, donor string, value uint64) (*domain.Donation, error) {
	if value == 0 {
		return nil, fmt.Errorf("%w: donation value must be positive", domain.ErrInvalidInput)
	}
	if value > math.MaxInt64 {
		return nil, fmt.Errorf("%w: donation value exceeds %d", domain.ErrInvalidInput, int64(math.MaxInt64))
	}
	if donor == "" {
		return nil, fmt.Errorf("%w: donor is required", domain.ErrInvalidInput)
	}

	profile, err := s.profile(ctx, address)
	if err != nil {
		return nil, err
	}

	event, err := domain.NewEvent(domain.EventDonationReceived, address, domain.DonationReceived{
		Donor: donor,
		Value: value,
	})
	if err != nil {
		return nil, err
	}

	donation := &domain.Donation{
		CampaignID: profile.ID,
		Donor:      donor,
		Value:      value,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.campaignRepo.AddDonation(ctx, profile.ID, value); err != nil {
			return err
		}
		if _, err := s.donationRepo.Create(ctx, donation); err != nil {
			return err
		}
		return s.eventRepo.Append(ctx, event)
	})
	if err != nil {
		zap.L().Error("failed to record donation", zap.String("address", address), zap.Error(err))
		return nil, err
	}

	s.metrics.Donations.Inc()
	s.metrics.DonatedAmount.Add(float64(value))
	return donation, nil
}

func (s *Service) SetBeneficiary(ctx context.Context, address, caller, beneficiary string) error {
	if beneficiary == "" {
		return fmt.Errorf("%w: beneficiary is required", domain.ErrInvalidInput)
	}

	profile, err := s.profile(ctx, address)
	if err != nil {
		return err
	}
	if err := authorize(profile, caller, "beneficiary change"); err != nil {
		return err
	}

	event, err := domain.NewEvent(domain.EventBeneficiaryChanged, address, domain.BeneficiaryChanged{
		Beneficiary: beneficiary,
	})
	if err != nil {
		return err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.campaignRepo.UpdateBeneficiary(ctx, profile.ID, beneficiary); err != nil {
			return err
		}
		return s.eventRepo.Append(ctx, event)
	})
	if err != nil {
		zap.L().Error("failed to set beneficiary", zap.String("address", address), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) MyDonationsCount(ctx context.Context, address, donor string) (uint64, error) {
	profile, err := s.profile(ctx, address)
	if err != nil {
		return 0, err
	}
	count, err := s.donationRepo.CountByDonor(ctx, profile.ID, donor)
	if err != nil {
		zap.L().Error("failed to count donations", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// MyDonations returns parallel slices of values and dates, oldest first.
func (s *Service) MyDonations(ctx context.Context, address, donor string) ([]uint64, []time.Time, error) {
	profile, err := s.profile(ctx, address)
	if err != nil {
		return nil, nil, err
	}
	donations, err := s.donationRepo.FindByDonor(ctx, profile.ID, donor)
	if err != nil {
		zap.L().Error("failed to fetch donations", zap.Error(err))
		return nil, nil, err
	}

	values := make([]uint64, len(donations))
	dates := make([]time.Time, len(donations))
	for i, d := range donations {
		values[i] = d.Value
		dates[i] = d.CreatedAt
	}
	return values, dates, nil
}

// Withdraw moves the whole balance to the current beneficiary. The transfer is
// the last step of the transaction, so a failed transfer leaves the balance untouched.
func (s *Service) Withdraw(ctx context.Context, address, caller string) (*domain.Withdrawal, error) {
	profile, err := s.profile(ctx, address)
	if err != nil {
		return nil, err
	}
	if err := authorize(profile, caller, "withdraw"); err != nil {
		return nil, err
	}

	var withdrawal *domain.Withdrawal
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		campaign, err := s.campaignRepo.LockByID(ctx, profile.ID)
		if err != nil {
			return err
		}

		withdrawal = &domain.Withdrawal{
			CampaignID:  campaign.ID,
			Beneficiary: campaign.Beneficiary,
			Amount:      campaign.Balance,
			ProcessedAt: time.Now(),
		}
		event, err := domain.NewEvent(domain.EventWithdraw, address, domain.Withdraw{Amount: withdrawal.Amount})
		if err != nil {
			return err
		}

		if withdrawal.Amount == 0 {
			return s.eventRepo.Append(ctx, event)
		}

		if err := s.campaignRepo.ResetBalance(ctx, campaign.ID); err != nil {
			return err
		}
		withdrawal.Reference = uuid.NewString()
		if _, err := s.withdrawalRepo.Create(ctx, withdrawal); err != nil {
			return err
		}
		if err := s.eventRepo.Append(ctx, event); err != nil {
			return err
		}
		if err := s.payout.Transfer(ctx, withdrawal.Beneficiary, withdrawal.Amount, withdrawal.Reference); err != nil {
			s.metrics.TransferFailures.Inc()
			return fmt.Errorf("%w: %v", domain.ErrTransferFailure, err)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to withdraw", zap.String("address", address), zap.Error(err))
		return nil, err
	}

	if withdrawal.Amount > 0 {
		s.metrics.Withdrawals.Inc()
		s.metrics.WithdrawnAmount.Add(float64(withdrawal.Amount))
	}
	zap.L().Info("withdrawal processed",
		zap.String("address", address),
		zap.String("beneficiary", withdrawal.Beneficiary),
		zap.Uint64("amount", withdrawal.Amount),
	)
	return withdrawal, nil
}

func (s *Service) Withdrawals(ctx context.Context, address string) ([]domain.Withdrawal, error) {
	profile, err := s.profile(ctx, address)
	if err != nil {
		return nil, err
	}
	withdrawals, err := s.withdrawalRepo.FindByCampaignID(ctx, profile.ID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) profile(ctx context.Context, address string) (*domain.Profile, error) {
	profile, err := s.campaignRepo.FindProfile(ctx, address)
	if err != nil {
		zap.L().Error("failed to find campaign", zap.String("address", address), zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return profile, nil
}

func authorize(profile *domain.Profile, caller, action string) error {
	guard := access.NewOwner(profile.Owner)
	if err := guard.Authorize(caller); err != nil {
		zap.L().Info(action+" rejected",
			zap.String("address", profile.Address),
			zap.String("caller", caller),
			zap.String("owner", guard.Owner()),
		)
		return err
	}
	return nil
}
