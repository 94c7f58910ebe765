package events

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/fundraiser/internal/domain"
	"github.com/GlebRadaev/fundraiser/internal/dto"
	"github.com/GlebRadaev/fundraiser/pkg/utils"
)

type Service interface {
	List(ctx context.Context, afterSeq int64, limit uint64) ([]domain.Event, error)
}

type EventHandler struct {
	eventService Service
}

func New(eventService Service) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// List godoc
//
//	@Summary		Read the event log
//	@Description	Events positioned after the given seq, in commit order. Observers resume from the last seq they saw.
//	@Tags			Events
//	@Produce		json
//	@Param			after	query		int						false	"Last seen event seq"
//	@Param			limit	query		int						false	"Page size (capped at 100)"
//	@Success		200		{array}		dto.EventResponseDTO	"Events page"
//	@Failure		400		{object}	utils.Response			"Invalid paging parameters"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/events [get]
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		afterSeq int64
		limit   uint64
		err     error
	)
	if value := query.Get("after"); value != "" {
		if afterSeq, err = strconv.ParseInt(value, 10, 64); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid after")
			return
		}
	}
	if value := query.Get("limit"); value != "" {
		if limit, err = strconv.ParseUint(value, 10, 64); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
	}

	events, err := h.eventService.List(r.Context(), afterSeq, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.EventResponseDTO, len(events))
	for i, e := range events {
		response[i] = dto.EventResponseDTO{
			ID:        e.ID,
			Seq:       e.Seq,
			Type:      string(e.Type),
			Campaign:  e.CampaignAddress,
			Payload:   e.Payload,
			CreatedAt: e.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
