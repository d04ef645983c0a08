package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/santoscleaning/website-api/internal/entity"
	"github.com/santoscleaning/website-api/pkg/logger"
)

const reviewFeedLimit = 50

// ReviewFeedUseCase serves the public review list. It never fails: when
// the primary store is unconfigured, unreachable or empty it answers
// with the sample set instead.
type ReviewFeedUseCase struct {
	Primary ExternalReviewStore // nil when unconfigured
	Samples SampleReviewSource
	Log     logger.Logger
}

func NewReviewFeedUseCase(primary ExternalReviewStore, samples SampleReviewSource, log logger.Logger) *ReviewFeedUseCase {
	return &ReviewFeedUseCase{Primary: primary, Samples: samples, Log: log}
}

func (uc *ReviewFeedUseCase) List(ctx context.Context) []ReviewView {
	if uc.Primary == nil {
		return uc.Samples.Samples()
	}

	reviews, err := uc.Primary.ListReviews(ctx, reviewFeedLimit)
	if err != nil {
		uc.Log.Warn("review feed unavailable, serving samples", "error", err)
		return uc.Samples.Samples()
	}
	if len(reviews) == 0 {
		return uc.Samples.Samples()
	}

	views := make([]ReviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, formatReview(review))
	}
	return views
}

func formatReview(review entity.ExternalReview) ReviewView {
	view := ReviewView{
		AuthorName:      review.AuthorName,
		Rating:          review.Rating,
		Text:            review.Text,
		RelativeTime:    review.RelativeTime,
		ProfilePhotoURL: review.ProfilePhotoURL,
	}
	if view.AuthorName == "" {
		view.AuthorName = "Anonymous"
	}
	if view.Rating == 0 {
		view.Rating = 5
	}
	if view.RelativeTime == "" {
		view.RelativeTime = "Recently"
	}
	if view.ProfilePhotoURL == "" {
		view.ProfilePhotoURL = AvatarURL(view.AuthorName)
	}
	return view
}

// AvatarURL builds a generated avatar for reviewers without a stored
// profile photo.
func AvatarURL(name string) string {
	return fmt.Sprintf(
		"https://ui-avatars.com/api/?name=%s&background=4285F4&color=fff&size=128&font-size=0.6&bold=true",
		strings.ReplaceAll(name, " ", "+"),
	)
}
