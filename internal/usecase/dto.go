package usecase

// CaptureLeadInput is the already-validated contact submission.
type CaptureLeadInput struct {
	Name       string
	Phone      string
	Email      string
	Message    string
	SMSConsent bool
	Language   string
	Source     string
}

type CaptureLeadOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ReviewView is the shape the public site renders.
type ReviewView struct {
	AuthorName      string `json:"author_name"`
	Rating          int    `json:"rating"`
	Text            string `json:"text"`
	RelativeTime    string `json:"relative_time_description"`
	ProfilePhotoURL string `json:"profile_photo_url"`
}

// WebhookReview is one record of the inbound batch. Every field is
// optional on the wire; defaults are applied during ingestion.
type WebhookReview struct {
	AuthorName      string `json:"author_name"`
	AuthorURL       string `json:"author_url"`
	Language        string `json:"language"`
	ProfilePhotoURL string `json:"profile_photo_url"`
	Rating          *int   `json:"rating"`
	RelativeTime    string `json:"relative_time_description"`
	Text            string `json:"text"`
	ReviewTime      string `json:"review_time"`
	Translated      bool   `json:"translated"`
	OriginalLang    string `json:"original_language"`
}

// IngestReviewsInput is the webhook batch plus its business metadata.
type IngestReviewsInput struct {
	Action           string          `json:"action"`
	Timestamp        string          `json:"timestamp"`
	BusinessName     string          `json:"business_name"`
	TotalReviews     int             `json:"total_reviews"`
	AverageRating    float64         `json:"average_rating"`
	UserRatingsTotal int             `json:"user_ratings_total"`
	Reviews          []WebhookReview `json:"reviews"`
}

// IngestReviewsOutput reports per-batch counts. Partial success is the
// normal case, not an error.
type IngestReviewsOutput struct {
	Success          bool    `json:"success"`
	Message          string  `json:"message"`
	TotalReceived    int     `json:"total_received"`
	ReviewsSaved     int     `json:"reviews_saved"`
	ReviewsSkipped   int     `json:"reviews_skipped"`
	ReviewsErrors    int     `json:"reviews_errors"`
	BusinessName     string  `json:"business_name"`
	AverageRating    float64 `json:"average_rating"`
	UserRatingsTotal int     `json:"user_ratings_total"`
	Timestamp        string  `json:"timestamp"`
}
