package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Lead status values. Free-text in storage; these are the ones the
// dashboard actually sets.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusConverted = "converted"
)

type Lead struct {
	ID          string     `json:"id" bson:"id"`
	Name        string     `json:"name" bson:"name"`
	Phone       string     `json:"phone" bson:"phone"`
	Email       string     `json:"email" bson:"email"`
	Message     string     `json:"message" bson:"message"`
	SMSConsent  bool       `json:"sms_consent" bson:"sms_consent"`
	Language    string     `json:"language" bson:"language"`
	Source      string     `json:"source" bson:"source"`
	Status      string     `json:"status" bson:"status"`
	Notes       string     `json:"notes,omitempty" bson:"notes,omitempty"`
	AssignedTo  string     `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	ContactedAt *time.Time `json:"contacted_at,omitempty" bson:"contacted_at,omitempty"`
	ConvertedAt *time.Time `json:"converted_at,omitempty" bson:"converted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
}

// Factory
func NewLead(name, phone, email, message string, smsConsent bool, language, source string) (*Lead, error) {
	if language == "" {
		language = "en"
	}
	if source == "" {
		source = "website"
	}

	lead := &Lead{
		ID:         uuid.New().String(),
		Name:       name,
		Phone:      phone,
		Email:      email,
		Message:    message,
		SMSConsent: smsConsent,
		Language:   language,
		Source:     source,
		Status:     LeadStatusNew,
		CreatedAt:  time.Now().UTC(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Phone == "" {
		return errors.New("phone is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

// LeadUpdate carries the mutable lead fields. Zero-value fields are left
// untouched by the stores.
type LeadUpdate struct {
	Status      string     `json:"status,omitempty" bson:"status,omitempty"`
	Notes       string     `json:"notes,omitempty" bson:"notes,omitempty"`
	AssignedTo  string     `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	ContactedAt *time.Time `json:"contacted_at,omitempty" bson:"contacted_at,omitempty"`
	ConvertedAt *time.Time `json:"converted_at,omitempty" bson:"converted_at,omitempty"`
}

func (u LeadUpdate) IsEmpty() bool {
	return u.Status == "" && u.Notes == "" && u.AssignedTo == ""
}

// LeadFilter narrows lead listings.
type LeadFilter struct {
	Status string
	Offset int
	Limit  int
}

// DemoLeadMatcher identifies seeded demo/test leads for bulk cleanup.
type DemoLeadMatcher struct {
	Names   []string
	Emails  []string
	Sources []string
}

type LeadRepositoryInterface interface {
	Insert(ctx context.Context, lead *Lead) (string, error)
	List(ctx context.Context, filter LeadFilter) ([]Lead, int, error)
	Update(ctx context.Context, id string, update LeadUpdate) error
	Delete(ctx context.Context, id string) error
	DeleteDemo(ctx context.Context, matcher DemoLeadMatcher) (int, error)
}
