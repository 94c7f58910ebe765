package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/fundraiser/internal/domain"
	"github.com/GlebRadaev/fundraiser/internal/dto"
	"github.com/GlebRadaev/fundraiser/pkg/auth"
	"github.com/GlebRadaev/fundraiser/pkg/utils"
	"github.com/GlebRadaev/fundraiser/pkg/validate"
)

type Service interface {
	GetCampaign(ctx context.Context, address string) (*domain.Campaign, error)
	Donate(ctx context.Context, address, donor string, value uint64) (*domain.Donation, error)
	Receive(ctx context.Context, address, sender string, value uint64) (*domain.Donation, error)
	SetBeneficiary(ctx context.Context, address, caller, beneficiary string) error
	MyDonationsCount(ctx context.Context, address, donor string) (uint64, error)
	MyDonations(ctx context.Context, address, donor string) ([]uint64, []time.Time, error)
	Withdraw(ctx context.Context, address, caller string) (*domain.Withdrawal, error)
	Withdrawals(ctx context.Context, address string) ([]domain.Withdrawal, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// GetCampaign godoc
//
//	@Summary		Get campaign
//	@Description	Read every field of a campaign from one consistent snapshot.
//	@Tags			Ledger
//	@Produce		json
//	@Param			address	path		string					true	"Campaign address"
//	@Success		200		{object}	dto.CampaignResponseDTO	"Campaign state"
//	@Failure		404		{object}	utils.Response			"Campaign not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/campaigns/{address} [get]
func (h *LedgerHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	address, ok := campaignAddress(w, r)
	if !ok {
		return
	}

	campaign, err := h.ledgerService.GetCampaign(r.Context(), address)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CampaignResponseDTO{
		ProfileResponseDTO: dto.ProfileResponseDTO{
			Address:     campaign.Address,
			Name:        campaign.Name,
			URL:         campaign.URL,
			ImageURL:    campaign.ImageURL,
			Description: campaign.Description,
			Owner:       campaign.Owner,
			CreatedAt:   campaign.CreatedAt,
		},
		Beneficiary:    campaign.Beneficiary,
		Balance:        campaign.Balance,
		TotalDonations: campaign.TotalDonations,
		DonationsCount: campaign.DonationsCount,
	})
}

// SetBeneficiary godoc
//
//	@Summary		Change beneficiary
//	@Description	Only the campaign owner may redirect future withdrawals to another payout account. The account number must pass the Luhn check.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			address	path	string							true	"Campaign address"
//	@Param			request	body	dto.SetBeneficiaryRequestDTO	true	"New beneficiary"
//	@Success		204		{string}	string			"Beneficiary changed"
//	@Failure		400		{object}	utils.Response	"Invalid request body or missing beneficiary"
//	@Failure		401		{object}	utils.Response	"Caller not authorized"
//	@Failure		403		{object}	utils.Response	"Caller is not the owner"
//	@Failure		404		{object}	utils.Response	"Campaign not found"
//	@Failure		422		{object}	utils.Response	"Invalid beneficiary account"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{address}/beneficiary [put]
func (h *LedgerHandler) SetBeneficiary(w http.ResponseWriter, r *http.Request) {
	address, ok := campaignAddress(w, r)
	if !ok {
		return
	}

	var req dto.SetBeneficiaryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Beneficiary == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "beneficiary is required")
		return
	}
	if !validate.IsAccount(req.Beneficiary) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid beneficiary account")
		return
	}

	caller := auth.AccountFromContext(r.Context())
	if err := h.ledgerService.SetBeneficiary(r.Context(), address, caller, req.Beneficiary); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Donate godoc
//
//	@Summary		Donate to a campaign
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			address	path		string					true	"Campaign address"
//	@Param			request	body		dto.DonateRequestDTO	true	"Donation value"
//	@Success		201		{object}	dto.DonationResponseDTO	"Donation recorded"
//	@Failure		400		{object}	utils.Response			"Invalid body or non-positive value"
//	@Failure		401		{object}	utils.Response			"Caller not authorized"
//	@Failure		404		{object}	utils.Response			"Campaign not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/campaigns/{address}/donations [post]
func (h *LedgerHandler) Donate(w http.ResponseWriter, r *http.Request) {
	address, ok := campaignAddress(w, r)
	if !ok {
		return
	}

	var req dto.DonateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	donation, err := h.ledgerService.Donate(r.Context(), address, auth.AccountFromContext(r.Context()), req.Value)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.DonationResponseDTO{
		Value: donation.Value,
		Date:  donation.CreatedAt,
	})
}

// Receive godoc
//
//	@Summary		Transfer value directly to a campaign
//	@Description	Plain value transfer; recorded exactly like a donation from the sender.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			text/plain
//	@Produce		json
//	@Param			address	path		string					true	"Campaign address"
//	@Param			value	body		string					true	"Transferred value"
//	@Success		201		{object}	dto.DonationResponseDTO	"Transfer recorded"
//	@Failure		400		{object}	utils.Response			"Malformed or non-positive value"
//	@Failure		401		{object}	utils.Response			"Caller not authorized"
//	@Failure		404		{object}	utils.Response			"Campaign not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/campaigns/{address}/receive [post]
func (h *LedgerHandler) Receive(w http.ResponseWriter, r *http.Request) {
	address, ok := campaignAddress(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	value, err := strconv.ParseUint(strings.TrimSpace(string(body)), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid value")
		return
	}

	donation, err := h.ledgerService.Receive(r.Context(), address, auth.AccountFromContext(r.Context()), value)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.DonationResponseDTO{
		Value: donation.Value,
		Date:  donation.CreatedAt,
	})
}

// MyDonationsCount godoc
//
//	@Summary		Count caller donations
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			address	path		string					true	"Campaign address"
//	@Success		200		{object}	dto.CountResponseDTO	"Number of donations made by the caller"
//	@Failure		401		{object}	utils.Response			"Caller not authorized"
//	@Failure		404		{object}	utils.Response			"Campaign not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/campaigns/{address}/donations/me/count [get]
func (h *LedgerHandler) MyDonationsCount(w http.ResponseWriter, r *http.Request) {
	address, ok := campaignAddress(w, r)
	if !ok {
		return
	}

	count, err := h.ledgerService.MyDonationsCount(r.Context(), address, auth.AccountFromContext(r.Context()))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CountResponseDTO{Count: count})
}

// MyDonations godoc
//
//	@Summary		List caller donations
//	@Description	Values and dates of the caller's donations as parallel arrays, oldest first.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			address	path		string						true	"Campaign address"
//	@Success		200		{object}	dto.MyDonationsResponseDTO	"Caller donations"
//	@Failure		401		{object}	utils.Response				"Caller not authorized"
//	@Failure		404		{object}	utils.Response				"Campaign not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/campaigns/{address}/donations/me [get]
func (h *LedgerHandler) MyDonations(w http.ResponseWriter, r *http.Request) {
	address, ok := campaignAddress(w, r)
	if !ok {
		return
	}

	values, dates, err := h.ledgerService.MyDonations(r.Context(), address, auth.AccountFromContext(r.Context()))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MyDonationsResponseDTO{
		Values: values,
		Dates:  dates,
	})
}

// Withdraw godoc
//
//	@Summary		Withdraw campaign balance
//	@Description	Transfer the whole balance to the beneficiary. A zero balance succeeds without a transfer.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			address	path		string					true	"Campaign address"
//	@Success		200		{object}	dto.WithdrawResponseDTO	"Withdrawn amount"
//	@Failure		401		{object}	utils.Response			"Caller not authorized"
//	@Failure		403		{object}	utils.Response			"Caller is not the owner"
//	@Failure		404		{object}	utils.Response			"Campaign not found"
//	@Failure		502		{object}	utils.Response			"Transfer to beneficiary failed"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/campaigns/{address}/withdraw [post]
func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	address, ok := campaignAddress(w, r)
	if !ok {
		return
	}

	withdrawal, err := h.ledgerService.Withdraw(r.Context(), address, auth.AccountFromContext(r.Context()))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawResponseDTO{
		Beneficiary: withdrawal.Beneficiary,
		Amount:      withdrawal.Amount,
		Reference:   withdrawal.Reference,
	})
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	Withdrawals of a campaign, newest first.
//	@Tags			Ledger
//	@Produce		json
//	@Param			address	path		string						true	"Campaign address"
//	@Success		200		{array}		dto.WithdrawalResponseDTO	"Withdrawals history"
//	@Success		204		{string}	string						"Withdrawals not found"
//	@Failure		404		{object}	utils.Response	"Campaign not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/campaigns/{address}/withdrawals [get]
func (h *LedgerHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	address, ok := campaignAddress(w, r)
	if !ok {
		return
	}

	withdrawals, err := h.ledgerService.Withdrawals(r.Context(), address)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if len(withdrawals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = dto.WithdrawalResponseDTO{
			Beneficiary: wd.Beneficiary,
			Amount:      wd.Amount,
			Reference:   wd.Reference,
			ProcessedAt: wd.ProcessedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// campaignAddress answers 404 for anything that cannot be a campaign address.
func campaignAddress(w http.ResponseWriter, r *http.Request) (string, bool) {
	address := chi.URLParam(r, "address")
	if _, err := uuid.Parse(address); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, domain.ErrCampaignNotFound.Error())
		return "", false
	}
	return address, true
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotOwner):
		utils.RespondWithError(w, http.StatusForbidden, domain.ErrNotOwner.Error())
	case errors.Is(err, domain.ErrCampaignNotFound):
		utils.RespondWithError(w, http.StatusNotFound, domain.ErrCampaignNotFound.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrTransferFailure):
		utils.RespondWithError(w, http.StatusBadGateway, domain.ErrTransferFailure.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
