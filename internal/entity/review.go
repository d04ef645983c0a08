package entity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Review is a visitor-submitted review. It is held back until someone
// approves it; nothing public ever reads unapproved rows.
type Review struct {
	ID          string    `json:"id" bson:"id"`
	AuthorName  string    `json:"author_name" bson:"author_name"`
	Rating      int       `json:"rating" bson:"rating"`
	Text        string    `json:"text" bson:"text"`
	ServiceType string    `json:"service_type,omitempty" bson:"service_type,omitempty"`
	Verified    bool      `json:"verified" bson:"verified"`
	Approved    bool      `json:"approved" bson:"approved"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

func NewReview(authorName string, rating int, text, serviceType string, verified bool) (*Review, error) {
	review := &Review{
		ID:          uuid.New().String(),
		AuthorName:  authorName,
		Rating:      rating,
		Text:        text,
		ServiceType: serviceType,
		Verified:    verified,
		Approved:    false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	return review, nil
}

func (r *Review) Validate() error {
	if r.AuthorName == "" {
		return errors.New("author_name is required")
	}
	if r.Text == "" {
		return errors.New("text is required")
	}
	return nil
}

// ExternalReview is a review row ingested from the reviews automation
// webhook, stored in the primary store's google_reviews table.
type ExternalReview struct {
	ReviewID        string `json:"review_id"`
	AuthorName      string `json:"author_name"`
	AuthorURL       string `json:"author_url,omitempty"`
	Language        string `json:"language"`
	ProfilePhotoURL string `json:"profile_photo_url"`
	Rating          int    `json:"rating"`
	RelativeTime    string `json:"relative_time_description"`
	Text            string `json:"text"`
	ReviewTime      string `json:"review_time,omitempty"`
	ReviewTimestamp int64  `json:"review_timestamp"`
	Translated      bool   `json:"translated"`
	OriginalLang    string `json:"original_language"`
	OriginalText    string `json:"original_text"`
	IsActive        bool   `json:"is_active"`
	IsFeatured      bool   `json:"is_featured"`
	HelpfulCount    int    `json:"helpful_count"`
}

// ExternalReviewID derives the stable dedupe key for an ingested review:
// gp_<normalized author>_<epoch seconds>_<rating>. The rating goes in as
// received, before any clamping, so replays of the same payload always
// derive the same key.
func ExternalReviewID(authorName string, epochSeconds int64, rating int) string {
	author := strings.ToLower(authorName)
	author = strings.ReplaceAll(author, " ", "_")
	author = strings.ReplaceAll(author, "-", "_")
	return fmt.Sprintf("gp_%s_%d_%d", author, epochSeconds, rating)
}

type ReviewRepositoryInterface interface {
	Insert(ctx context.Context, review *Review) (string, error)
}
