package campaigns

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/fundraiser/internal/domain"
	"github.com/GlebRadaev/fundraiser/internal/dto"
	"github.com/GlebRadaev/fundraiser/internal/service/registryservice"
	"github.com/GlebRadaev/fundraiser/pkg/auth"
	"github.com/GlebRadaev/fundraiser/pkg/utils"
	"github.com/GlebRadaev/fundraiser/pkg/validate"
)

const defaultLimit = domain.PageCap

type Service interface {
	CreateFundraiser(ctx context.Context, owner string, params registryservice.CreateParams) (*domain.Campaign, error)
	Fundraisers(ctx context.Context, limit, offset uint64) ([]domain.Profile, error)
	FundraisersCount(ctx context.Context) (uint64, error)
}

type CampaignHandler struct {
	registryService Service
}

func New(registryService Service) *CampaignHandler {
	return &CampaignHandler{
		registryService: registryService,
	}
}

// Create godoc
//
//	@Summary		Create a campaign
//	@Description	Create a new fundraising campaign owned by the authenticated account. The beneficiary is a payout account number and must pass the Luhn check.
//	@Tags			Campaigns
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCampaignRequestDTO	true	"Campaign profile"
//	@Success		201		{object}	dto.CampaignResponseDTO			"Campaign created"
//	@Failure		400		{object}	utils.Response					"Invalid request body or missing beneficiary"
//	@Failure		401		{object}	utils.Response					"Caller not authorized"
//	@Failure		422		{object}	utils.Response					"Invalid beneficiary account"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/campaigns [post]
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner := auth.AccountFromContext(r.Context())

	var req dto.CreateCampaignRequestDTO
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

	campaign, err := h.registryService.CreateFundraiser(r.Context(), owner, registryservice.CreateParams{
		Name:        req.Name,
		URL:         req.URL,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Beneficiary: req.Beneficiary,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.CampaignResponseDTO{
		ProfileResponseDTO: toProfileDTO(campaign.Profile),
		Beneficiary:        campaign.Beneficiary,
		Balance:            campaign.Balance,
		TotalDonations:     campaign.TotalDonations,
		DonationsCount:     campaign.DonationsCount,
	})
}

// List godoc
//
//	@Summary		List campaigns
//	@Description	Page through the registry in creation order. At most 20 entries are returned regardless of limit.
//	@Tags			Campaigns
//	@Produce		json
//	@Param			limit	query		int						false	"Page size (default 20, capped at 20)"
//	@Param			offset	query		int						false	"Index of the first campaign"
//	@Success		200		{array}		dto.ProfileResponseDTO	"Campaigns page"
//	@Failure		400		{object}	utils.Response			"Invalid paging parameters or offset out of bounds"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/campaigns [get]
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryUint(r, "limit", defaultLimit)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := queryUint(r, "offset", 0)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid offset")
		return
	}

	profiles, err := h.registryService.Fundraisers(r.Context(), limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOutOfBounds):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := make([]dto.ProfileResponseDTO, len(profiles))
	for i, p := range profiles {
		response[i] = toProfileDTO(p)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Count godoc
//
//	@Summary		Count campaigns
//	@Tags			Campaigns
//	@Produce		json
//	@Success		200	{object}	dto.CountResponseDTO	"Number of campaigns in the registry"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/campaigns/count [get]
func (h *CampaignHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.registryService.FundraisersCount(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CountResponseDTO{Count: count})
}

func toProfileDTO(p domain.Profile) dto.ProfileResponseDTO {
	return dto.ProfileResponseDTO{
		Address:     p.Address,
		Name:        p.Name,
		URL:         p.URL,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Owner:       p.Owner,
		CreatedAt:   p.CreatedAt,
	}
}

func queryUint(r *http.Request, key string, fallback uint64) (uint64, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseUint(value, 10, 64)
}
