package handlers

import (
	"context"
	"net/http"

	"mingle-backend/internal/utils"
)

// Forwarder relays a JSON body to the AI service and returns its reply.
type Forwarder interface {
	Rank(ctx context.Context, body []byte) ([]byte, error)
	Draft(ctx context.Context, body []byte) ([]byte, error)
}

type OutreachHandler struct {
	ai Forwarder
}

func NewOutreachHandler(ai Forwarder) *OutreachHandler {
	return &OutreachHandler{ai: ai}
}

// Rank godoc
// @Summary      Rank candidate contacts
// @Description  Relayed verbatim to the AI service. Upstream failures keep their status; unreachable or timed out becomes 502.
// @Tags         outreach
// @Accept       json
// @Produce      json
// @Param        payload  body      dto.RankRequest  true  "Query and candidates"
// @Success      200      {object}  dto.RankResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/outreach/rank [post]
func (h *OutreachHandler) Rank(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, h.ai.Rank)
}

// Draft godoc
// @Summary      Draft an outreach message
// @Tags         outreach
// @Accept       json
// @Produce      json
// @Param        payload  body      dto.DraftRequest  true  "Sender, recipient and context"
// @Success      200      {object}  dto.DraftResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/outreach/draft [post]
func (h *OutreachHandler) Draft(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, h.ai.Draft)
}

func (h *OutreachHandler) relay(w http.ResponseWriter, r *http.Request, call func(context.Context, []byte) ([]byte, error)) {
	body, err := utils.ReadRawJSON(w, r)
	if err != nil {
		return
	}
	out, err := call(r.Context(), body)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteRawJSON(w, http.StatusOK, out)
}
