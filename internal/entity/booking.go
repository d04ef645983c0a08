package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const BookingStatusPending = "pending"

type Booking struct {
	ID                  string    `json:"id" bson:"id"`
	CustomerName        string    `json:"customer_name" bson:"customer_name"`
	Email               string    `json:"email" bson:"email"`
	Phone               string    `json:"phone" bson:"phone"`
	ServiceType         string    `json:"service_type" bson:"service_type"`
	PreferredDate       string    `json:"preferred_date" bson:"preferred_date"`
	PreferredTime       string    `json:"preferred_time" bson:"preferred_time"`
	Address             string    `json:"address" bson:"address"`
	SpecialInstructions string    `json:"special_instructions" bson:"special_instructions"`
	EstimatedPrice      *float64  `json:"estimated_price,omitempty" bson:"estimated_price,omitempty"`
	Status              string    `json:"status" bson:"status"`
	ConfirmationSent    bool      `json:"confirmation_sent" bson:"confirmation_sent"`
	CreatedAt           time.Time `json:"created_at" bson:"created_at"`
}

// NewBooking builds a pending booking. The estimated price, when present,
// is stored as given; no price computation happens here.
func NewBooking(customerName, email, phone, serviceType, date, timeSlot, address, instructions string, estimatedPrice *float64) (*Booking, error) {
	booking := &Booking{
		ID:                  uuid.New().String(),
		CustomerName:        customerName,
		Email:               email,
		Phone:               phone,
		ServiceType:         serviceType,
		PreferredDate:       date,
		PreferredTime:       timeSlot,
		Address:             address,
		SpecialInstructions: instructions,
		EstimatedPrice:      estimatedPrice,
		Status:              BookingStatusPending,
		ConfirmationSent:    false,
		CreatedAt:           time.Now().UTC(),
	}

	if err := booking.Validate(); err != nil {
		return nil, err
	}

	return booking, nil
}

func (b *Booking) Validate() error {
	if b.CustomerName == "" {
		return errors.New("customer_name is required")
	}
	if b.Email == "" {
		return errors.New("email is required")
	}
	if b.Phone == "" {
		return errors.New("phone is required")
	}
	if b.ServiceType == "" {
		return errors.New("service_type is required")
	}
	if b.Address == "" {
		return errors.New("address is required")
	}
	return nil
}

type BookingRepositoryInterface interface {
	Insert(ctx context.Context, booking *Booking) (string, error)
}
