package supabase

import (
	"time"

	"github.com/santoscleaning/website-api/internal/entity"
)

// leadRow mirrors the leads table. Timestamps are ISO strings on the
// wire; created_at is filled by the table default on insert.
type leadRow struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	SMSConsent  bool   `json:"sms_consent"`
	Language    string `json:"language"`
	Source      string `json:"source"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
	AssignedTo  string `json:"assigned_to,omitempty"`
	ContactedAt string `json:"contacted_at,omitempty"`
	ConvertedAt string `json:"converted_at,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

func (r leadRow) toEntity() entity.Lead {
	lead := entity.Lead{
		ID:         r.ID,
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		Message:    r.Message,
		SMSConsent: r.SMSConsent,
		Language:   r.Language,
		Source:     r.Source,
		Status:     r.Status,
		Notes:      r.Notes,
		AssignedTo: r.AssignedTo,
	}
	lead.CreatedAt = parseTime(r.CreatedAt)
	if t := r.ContactedAt; t != "" {
		parsed := parseTime(t)
		lead.ContactedAt = &parsed
	}
	if t := r.ConvertedAt; t != "" {
		parsed := parseTime(t)
		lead.ConvertedAt = &parsed
	}
	return lead
}

type reviewRow struct {
	AuthorName      string `json:"author_name"`
	Rating          int    `json:"rating"`
	Text            string `json:"text"`
	RelativeTime    string `json:"relative_time_description"`
	ProfilePhotoURL string `json:"profile_photo_url"`
	ReviewTime      string `json:"review_time"`
}

func (r reviewRow) toEntity() entity.ExternalReview {
	return entity.ExternalReview{
		AuthorName:      r.AuthorName,
		Rating:          r.Rating,
		Text:            r.Text,
		RelativeTime:    r.RelativeTime,
		ProfilePhotoURL: r.ProfilePhotoURL,
		ReviewTime:      r.ReviewTime,
	}
}

func parseTime(value string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
