package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/adprintpro/storefront/internal/advice"
)

type AdviceHandler struct {
	client *advice.Client
}

func NewAdviceHandler(client *advice.Client) *AdviceHandler {
	return &AdviceHandler{client: client}
}

type AdviceRequestDTO struct {
	Question string `json:"question"`
}

type AdviceResponseDTO struct {
	Reply string `json:"reply"`
}

// Ask forwards a question to the advice collaborator. The reply is
// always a usable string; collaborator failures surface only as the
// fixed fallback text.
func (h *AdviceHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AdviceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		respondError(w, http.StatusBadRequest, "empty_question", "question must not be empty")
		return
	}

	reply := h.client.GetPrintAdvice(r.Context(), question)
	respondJSON(w, http.StatusOK, AdviceResponseDTO{Reply: reply})
}
