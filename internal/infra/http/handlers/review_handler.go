package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/santoscleaning/website-api/internal/entity"
	"github.com/santoscleaning/website-api/internal/usecase"
)

type ReviewHandler struct {
	Feed     *usecase.ReviewFeedUseCase
	Reviews  entity.ReviewRepositoryInterface
	Validate *validator.Validate
}

func NewReviewHandler(feed *usecase.ReviewFeedUseCase, reviews entity.ReviewRepositoryInterface, validate *validator.Validate) *ReviewHandler {
	return &ReviewHandler{Feed: feed, Reviews: reviews, Validate: validate}
}

// HandleList serves the public review feed. It never errors; a broken
// primary store degrades to sample content.
func (h *ReviewHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	reviews := h.Feed.List(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{"reviews": reviews})
}

type SubmitReviewRequest struct {
	AuthorName  string `json:"author_name" validate:"required"`
	Rating      int    `json:"rating" validate:"required"`
	Text        string `json:"text" validate:"required"`
	ServiceType string `json:"service_type"`
	Verified    bool   `json:"verified"`
}

// HandleSubmit stores a visitor review awaiting approval. The rating is
// stored as given; only the webhook path clamps.
func (h *ReviewHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	review, err := entity.NewReview(req.AuthorName, req.Rating, req.Text, req.ServiceType, req.Verified)
	if err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return
	}

	id, err := h.Reviews.Insert(r.Context(), review)
	if err != nil {
		writeStoreError(w, err, "Failed to submit review")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Review submitted for approval",
		"id":      id,
	})
}
