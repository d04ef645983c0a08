package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/santoscleaning/website-api/internal/usecase"
)

type WebhookHandler struct {
	Ingest *usecase.IngestReviewsUseCase
}

func NewWebhookHandler(ingest *usecase.IngestReviewsUseCase) *WebhookHandler {
	return &WebhookHandler{Ingest: ingest}
}

// Handle ingests a review batch pushed by the automation tool. The
// batch never fails atomically; per-record outcomes come back as counts.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.IngestReviewsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "INVALID_JSON", "Invalid webhook payload")
		return
	}

	result, err := h.Ingest.Execute(r.Context(), input)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "WEBHOOK_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
