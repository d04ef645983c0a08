package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ServiceOffering is a catalog entry. Offerings are seeded once at
// startup and have no create/update endpoint in the running system.
type ServiceOffering struct {
	ID            string    `json:"id" bson:"id"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description" bson:"description"`
	BasePrice     float64   `json:"base_price" bson:"base_price"`
	DurationHours int       `json:"duration_hours" bson:"duration_hours"`
	Includes      []string  `json:"includes" bson:"includes"`
	Active        bool      `json:"active" bson:"active"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

func NewServiceOffering(name, description string, basePrice float64, durationHours int, includes []string) *ServiceOffering {
	return &ServiceOffering{
		ID:            uuid.New().String(),
		Name:          name,
		Description:   description,
		BasePrice:     basePrice,
		DurationHours: durationHours,
		Includes:      includes,
		Active:        true,
		CreatedAt:     time.Now().UTC(),
	}
}

type ServiceRepositoryInterface interface {
	ListActive(ctx context.Context) ([]ServiceOffering, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, offerings []*ServiceOffering) error
}
