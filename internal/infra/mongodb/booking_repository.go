package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/santoscleaning/website-api/internal/entity"
)

type BookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{collection: db.Collection("bookings")}
}

func (r *BookingRepository) Insert(ctx context.Context, booking *entity.Booking) (string, error) {
	if _, err := r.collection.InsertOne(ctx, booking); err != nil {
		return "", err
	}
	return booking.ID, nil
}
