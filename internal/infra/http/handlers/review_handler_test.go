package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/santoscleaning/website-api/internal/entity"
	"github.com/santoscleaning/website-api/internal/usecase"
	"github.com/santoscleaning/website-api/pkg/logger"
)

func TestReviewHandlerListsSamplesWhenUnconfigured(t *testing.T) {
	feed := usecase.NewReviewFeedUseCase(nil, fixedSamples{}, logger.NewNop())
	h := NewReviewHandler(feed, new(MockReviewRepo), NewValidator())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reviews", nil)

	h.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Reviews []usecase.ReviewView `json:"reviews"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Reviews, 1)
	assert.Equal(t, "Sample Customer", resp.Reviews[0].AuthorName)
}

func TestReviewHandlerListsStoredReviews(t *testing.T) {
	store := new(MockExternalReviewStore)
	store.On("ListReviews", mock.Anything, 50).Return([]entity.ExternalReview{
		{AuthorName: "Maria Rodriguez", Rating: 5, Text: "Spotless."},
	}, nil)

	feed := usecase.NewReviewFeedUseCase(store, fixedSamples{}, logger.NewNop())
	h := NewReviewHandler(feed, new(MockReviewRepo), NewValidator())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reviews", nil)

	h.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Maria Rodriguez")
	store.AssertExpectations(t)
}

func TestReviewHandlerStoresSubmittedRatingAsGiven(t *testing.T) {
	reviews := new(MockReviewRepo)
	reviews.On("Insert", mock.Anything, mock.MatchedBy(func(rev *entity.Review) bool {
		return rev.Rating == 6 && !rev.Approved
	})).Return("review-1", nil)

	feed := usecase.NewReviewFeedUseCase(nil, fixedSamples{}, logger.NewNop())
	h := NewReviewHandler(feed, reviews, NewValidator())

	body := `{"author_name":"Enthusiast","rating":6,"text":"Beyond five stars"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))

	h.HandleSubmit(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Review submitted for approval")
	reviews.AssertExpectations(t)
}

func TestReviewHandlerRequiresText(t *testing.T) {
	reviews := new(MockReviewRepo)
	feed := usecase.NewReviewFeedUseCase(nil, fixedSamples{}, logger.NewNop())
	h := NewReviewHandler(feed, reviews, NewValidator())

	body := `{"author_name":"Quiet Customer","rating":4}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))

	h.HandleSubmit(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	reviews.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
