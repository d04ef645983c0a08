package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/santoscleaning/website-api/internal/entity"
)

// ReviewRepository holds visitor-submitted reviews awaiting approval.
type ReviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{collection: db.Collection("reviews")}
}

func (r *ReviewRepository) Insert(ctx context.Context, review *entity.Review) (string, error) {
	if _, err := r.collection.InsertOne(ctx, review); err != nil {
		return "", err
	}
	return review.ID, nil
}
