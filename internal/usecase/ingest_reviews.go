package usecase

import (
	"context"
	"time"

	"github.com/santoscleaning/website-api/internal/entity"
	"github.com/santoscleaning/website-api/pkg/logger"
	"github.com/santoscleaning/website-api/pkg/metrics"
)

// Field caps applied before storage.
const (
	maxAuthorLen       = 255
	maxLanguageLen     = 10
	maxRelativeTimeLen = 100
	maxTextLen         = 5000
)

// IngestReviewsUseCase processes an inbound review batch from the
// automation tool. Records are deduplicated by a derived identifier;
// per-record failures are counted, never fatal for the batch.
type IngestReviewsUseCase struct {
	Store ExternalReviewStore // nil when the primary store is unconfigured
	Log   logger.Logger
	now   func() time.Time
}

func NewIngestReviewsUseCase(store ExternalReviewStore, log logger.Logger) *IngestReviewsUseCase {
	return &IngestReviewsUseCase{Store: store, Log: log, now: time.Now}
}

func (uc *IngestReviewsUseCase) Execute(ctx context.Context, input IngestReviewsInput) (*IngestReviewsOutput, error) {
	uc.Log.Info("review webhook received",
		"business", input.BusinessName,
		"total_reviews", input.TotalReviews,
		"average_rating", input.AverageRating,
	)

	result := &IngestReviewsOutput{
		Success:          true,
		TotalReceived:    input.TotalReviews,
		BusinessName:     input.BusinessName,
		AverageRating:    input.AverageRating,
		UserRatingsTotal: input.UserRatingsTotal,
		Timestamp:        input.Timestamp,
	}

	if uc.Store == nil {
		result.Message = "Reviews received (primary store not configured)"
		return result, nil
	}

	for _, review := range input.Reviews {
		outcome := uc.ingestOne(ctx, review, input.Timestamp)
		switch outcome {
		case "saved":
			result.ReviewsSaved++
		case "skipped":
			result.ReviewsSkipped++
		default:
			result.ReviewsErrors++
		}
		metrics.RecordReviewIngested(outcome)
	}

	result.Message = "Webhook processed successfully"
	uc.Log.Info("review webhook processed",
		"saved", result.ReviewsSaved,
		"skipped", result.ReviewsSkipped,
		"errors", result.ReviewsErrors,
	)
	return result, nil
}

func (uc *IngestReviewsUseCase) ingestOne(ctx context.Context, review WebhookReview, batchTimestamp string) string {
	author := review.AuthorName
	if author == "" {
		author = "anonymous"
	}

	rating := 5
	if review.Rating != nil {
		rating = *review.Rating
	}

	reviewTime := review.ReviewTime
	if reviewTime == "" {
		reviewTime = batchTimestamp
	}
	epochSeconds := uc.parseEpochSeconds(reviewTime)

	// The raw rating feeds the identifier so replays of an out-of-range
	// payload still dedupe against the stored row.
	reviewID := entity.ExternalReviewID(author, epochSeconds, rating)

	exists, err := uc.Store.ReviewExists(ctx, reviewID)
	if err != nil {
		uc.Log.Error("review lookup failed", "review_id", reviewID, "error", err)
		return "error"
	}
	if exists {
		uc.Log.Debug("review already ingested", "review_id", reviewID)
		return "skipped"
	}

	storedAuthor := review.AuthorName
	if storedAuthor == "" {
		storedAuthor = "Anonymous Customer"
	}
	language := review.Language
	if language == "" {
		language = "pt"
	}
	relativeTime := review.RelativeTime
	if relativeTime == "" {
		relativeTime = "Recently"
	}
	originalLang := review.OriginalLang
	if originalLang == "" {
		originalLang = language
	}
	photoURL := review.ProfilePhotoURL
	if photoURL == "" {
		photoURL = AvatarURL(storedAuthor)
	}

	row := &entity.ExternalReview{
		ReviewID:        reviewID,
		AuthorName:      truncate(storedAuthor, maxAuthorLen),
		AuthorURL:       review.AuthorURL,
		Language:        truncate(language, maxLanguageLen),
		ProfilePhotoURL: photoURL,
		Rating:          clampRating(rating),
		RelativeTime:    truncate(relativeTime, maxRelativeTimeLen),
		Text:            truncate(review.Text, maxTextLen),
		ReviewTime:      review.ReviewTime,
		ReviewTimestamp: epochSeconds,
		Translated:      review.Translated,
		OriginalLang:    truncate(originalLang, maxLanguageLen),
		OriginalText:    truncate(review.Text, maxTextLen),
		IsActive:        true,
		IsFeatured:      rating >= 4,
		HelpfulCount:    0,
	}

	if err := uc.Store.InsertReview(ctx, row); err != nil {
		uc.Log.Error("review insert failed", "review_id", reviewID, "error", err)
		return "error"
	}

	uc.Log.Info("review saved", "author", row.AuthorName, "rating", row.Rating)
	return "saved"
}

// parseEpochSeconds converts the record timestamp to epoch seconds,
// falling back to the current time when it does not parse.
func (uc *IngestReviewsUseCase) parseEpochSeconds(value string) int64 {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Unix()
		}
	}
	return uc.now().Unix()
}

func clampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
