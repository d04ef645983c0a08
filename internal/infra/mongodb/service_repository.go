package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/santoscleaning/website-api/internal/entity"
)

type ServiceRepository struct {
	collection *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{collection: db.Collection("service_types")}
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]entity.ServiceOffering, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	offerings := make([]entity.ServiceOffering, 0)
	if err := cursor.All(ctx, &offerings); err != nil {
		return nil, err
	}
	return offerings, nil
}

func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *ServiceRepository) InsertMany(ctx context.Context, offerings []*entity.ServiceOffering) error {
	docs := make([]interface{}, 0, len(offerings))
	for _, offering := range offerings {
		docs = append(docs, offering)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
