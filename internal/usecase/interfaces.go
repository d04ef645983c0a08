package usecase

import (
	"context"

	"github.com/santoscleaning/website-api/internal/entity"
	"github.com/santoscleaning/website-api/internal/infra/queue"
)

// ExternalReviewStore is the primary-store surface for ingested reviews.
type ExternalReviewStore interface {
	ListReviews(ctx context.Context, limit int) ([]entity.ExternalReview, error)
	ReviewExists(ctx context.Context, reviewID string) (bool, error)
	InsertReview(ctx context.Context, review *entity.ExternalReview) error
}

// SampleReviewSource supplies the synthetic reviews served when the
// primary store cannot. Keeping it behind an interface keeps demo
// content out of the production read path.
type SampleReviewSource interface {
	Samples() []ReviewView
}

type QueueProducerInterface interface {
	PublishNotification(ctx context.Context, payload queue.NotificationPayload) error
}
