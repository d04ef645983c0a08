package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/santoscleaning/website-api/internal/entity"
	"github.com/santoscleaning/website-api/pkg/logger"
)

func TestReviewFeedServesSamplesWhenUnconfigured(t *testing.T) {
	feed := NewReviewFeedUseCase(nil, staticSamples{}, logger.NewNop())

	reviews := feed.List(context.Background())
	assert.NotEmpty(t, reviews)
	assert.Equal(t, "Sample Customer", reviews[0].AuthorName)
}

func TestReviewFeedServesSamplesOnStoreError(t *testing.T) {
	store := new(MockExternalReviewStore)
	store.On("ListReviews", mock.Anything, 50).Return(nil, errors.New("connection refused"))

	feed := NewReviewFeedUseCase(store, staticSamples{}, logger.NewNop())

	reviews := feed.List(context.Background())
	assert.NotEmpty(t, reviews)
	assert.Equal(t, "Sample Customer", reviews[0].AuthorName)
}

func TestReviewFeedServesSamplesWhenEmpty(t *testing.T) {
	store := new(MockExternalReviewStore)
	store.On("ListReviews", mock.Anything, 50).Return([]entity.ExternalReview{}, nil)

	feed := NewReviewFeedUseCase(store, staticSamples{}, logger.NewNop())

	reviews := feed.List(context.Background())
	assert.NotEmpty(t, reviews)
	assert.Equal(t, "Sample Customer", reviews[0].AuthorName)
}

func TestReviewFeedFormatsStoredReviews(t *testing.T) {
	store := new(MockExternalReviewStore)
	store.On("ListReviews", mock.Anything, 50).Return([]entity.ExternalReview{
		{AuthorName: "Maria Rodriguez", Rating: 5, Text: "Spotless!", RelativeTime: "2 weeks ago"},
		{Text: "No name given"},
	}, nil)

	feed := NewReviewFeedUseCase(store, staticSamples{}, logger.NewNop())

	reviews := feed.List(context.Background())
	assert.Len(t, reviews, 2)

	assert.Equal(t, "Maria Rodriguez", reviews[0].AuthorName)
	assert.Contains(t, reviews[0].ProfilePhotoURL, "Maria+Rodriguez")

	// Missing fields get defaults.
	assert.Equal(t, "Anonymous", reviews[1].AuthorName)
	assert.Equal(t, 5, reviews[1].Rating)
	assert.Equal(t, "Recently", reviews[1].RelativeTime)
}
