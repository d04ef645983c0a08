package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/santoscleaning/website-api/internal/entity"
	"github.com/santoscleaning/website-api/pkg/logger"
)

func intPtr(v int) *int { return &v }

func TestIngestSavesNewReview(t *testing.T) {
	store := new(MockExternalReviewStore)
	store.On("ReviewExists", mock.Anything, "gp_maria_rodriguez_1704067200_5").Return(false, nil)
	store.On("InsertReview", mock.Anything, mock.MatchedBy(func(r *entity.ExternalReview) bool {
		return r.ReviewID == "gp_maria_rodriguez_1704067200_5" &&
			r.Rating == 5 && r.IsFeatured && r.IsActive
	})).Return(nil)

	uc := NewIngestReviewsUseCase(store, logger.NewNop())

	result, err := uc.Execute(context.Background(), IngestReviewsInput{
		BusinessName: "Santos Cleaning Solutions",
		TotalReviews: 1,
		Reviews: []WebhookReview{{
			AuthorName: "Maria Rodriguez",
			Rating:     intPtr(5),
			Text:       "Wonderful deep clean",
			ReviewTime: "2024-01-01T00:00:00Z",
		}},
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.ReviewsSaved)
	assert.Equal(t, 0, result.ReviewsSkipped)
	assert.Equal(t, 0, result.ReviewsErrors)
	store.AssertExpectations(t)
}

func TestIngestSkipsDuplicateReplay(t *testing.T) {
	store := new(MockExternalReviewStore)
	store.On("ReviewExists", mock.Anything, "gp_john_smith_1704067200_4").Return(true, nil)

	uc := NewIngestReviewsUseCase(store, logger.NewNop())

	result, err := uc.Execute(context.Background(), IngestReviewsInput{
		TotalReviews: 1,
		Reviews: []WebhookReview{{
			AuthorName: "John Smith",
			Rating:     intPtr(4),
			ReviewTime: "2024-01-01T00:00:00Z",
		}},
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, result.ReviewsSaved)
	assert.Equal(t, 1, result.ReviewsSkipped)
	store.AssertNotCalled(t, "InsertReview", mock.Anything, mock.Anything)
}

func TestIngestNormalizesAuthorForIdentifier(t *testing.T) {
	store := new(MockExternalReviewStore)
	store.On("ReviewExists", mock.Anything, "gp_ana_maria_souza_lima_1704067200_5").Return(true, nil)

	uc := NewIngestReviewsUseCase(store, logger.NewNop())

	_, err := uc.Execute(context.Background(), IngestReviewsInput{
		TotalReviews: 1,
		Reviews: []WebhookReview{{
			AuthorName: "Ana Maria Souza-Lima",
			Rating:     intPtr(5),
			ReviewTime: "2024-01-01T00:00:00Z",
		}},
	})

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestIngestClampsOutOfRangeRating(t *testing.T) {
	store := new(MockExternalReviewStore)
	store.On("ReviewExists", mock.Anything, mock.Anything).Return(false, nil)

	var saved *entity.ExternalReview
	store.On("InsertReview", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*entity.ExternalReview)
	}).Return(nil)

	uc := NewIngestReviewsUseCase(store, logger.NewNop())

	_, err := uc.Execute(context.Background(), IngestReviewsInput{
		TotalReviews: 1,
		Reviews: []WebhookReview{{
			AuthorName: "Over Rater",
			Rating:     intPtr(9),
			ReviewTime: "2024-01-01T00:00:00Z",
		}},
	})

	assert.NoError(t, err)
	// The identifier keeps the raw rating; storage gets the clamped one.
	assert.Equal(t, "gp_over_rater_1704067200_9", saved.ReviewID)
	assert.Equal(t, 5, saved.Rating)
	assert.True(t, saved.IsFeatured)
}

func TestIngestTruncatesLongFields(t *testing.T) {
	store := new(MockExternalReviewStore)
	store.On("ReviewExists", mock.Anything, mock.Anything).Return(false, nil)

	var saved *entity.ExternalReview
	store.On("InsertReview", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*entity.ExternalReview)
	}).Return(nil)

	uc := NewIngestReviewsUseCase(store, logger.NewNop())

	_, err := uc.Execute(context.Background(), IngestReviewsInput{
		TotalReviews: 1,
		Reviews: []WebhookReview{{
			AuthorName: strings.Repeat("a", 300),
			Rating:     intPtr(5),
			Text:       strings.Repeat("b", 6000),
			ReviewTime: "2024-01-01T00:00:00Z",
		}},
	})

	assert.NoError(t, err)
	assert.Len(t, saved.AuthorName, 255)
	assert.Len(t, saved.Text, 5000)
}

func TestIngestBadTimestampFallsBackToNow(t *testing.T) {
	fixedNow := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	store := new(MockExternalReviewStore)
	store.On("ReviewExists", mock.Anything, "gp_late_reviewer_1717243200_5").Return(true, nil)

	uc := NewIngestReviewsUseCase(store, logger.NewNop())
	uc.now = func() time.Time { return fixedNow }

	_, err := uc.Execute(context.Background(), IngestReviewsInput{
		TotalReviews: 1,
		Reviews: []WebhookReview{{
			AuthorName: "Late Reviewer",
			Rating:     intPtr(5),
			ReviewTime: "three weeks ago",
		}},
	})

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestIngestIsolatesPerRecordFailures(t *testing.T) {
	store := new(MockExternalReviewStore)
	store.On("ReviewExists", mock.Anything, mock.Anything).Return(false, nil)
	store.On("InsertReview", mock.Anything, mock.MatchedBy(func(r *entity.ExternalReview) bool {
		return strings.HasPrefix(r.ReviewID, "gp_bad_")
	})).Return(errors.New("insert rejected"))
	store.On("InsertReview", mock.Anything, mock.Anything).Return(nil)

	uc := NewIngestReviewsUseCase(store, logger.NewNop())

	result, err := uc.Execute(context.Background(), IngestReviewsInput{
		TotalReviews: 2,
		Reviews: []WebhookReview{
			{AuthorName: "Bad Row", Rating: intPtr(3), ReviewTime: "2024-01-01T00:00:00Z"},
			{AuthorName: "Good Row", Rating: intPtr(4), ReviewTime: "2024-01-02T00:00:00Z"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.ReviewsSaved)
	assert.Equal(t, 1, result.ReviewsErrors)
	assert.True(t, result.Success)
}

func TestIngestWithoutPrimaryStoreAcceptsQuietly(t *testing.T) {
	uc := NewIngestReviewsUseCase(nil, logger.NewNop())

	result, err := uc.Execute(context.Background(), IngestReviewsInput{
		BusinessName:  "Santos Cleaning Solutions",
		TotalReviews:  3,
		AverageRating: 4.8,
		Reviews:       []WebhookReview{{AuthorName: "Someone"}},
	})

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.ReviewsSaved)
	assert.Equal(t, 3, result.TotalReceived)
	assert.Equal(t, 4.8, result.AverageRating)
}
