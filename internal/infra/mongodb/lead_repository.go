package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/santoscleaning/website-api/internal/entity"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LeadRepository stores leads in the contacts collection, matching the
// layout the primary store uses so either store can answer reads.
type LeadRepository struct {
	collection *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{collection: db.Collection("contacts")}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) (string, error) {
	if _, err := r.collection.InsertOne(ctx, lead); err != nil {
		return "", err
	}
	return lead.ID, nil
}

func (r *LeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, int, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64(filter.Offset)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	leads := make([]entity.Lead, 0)
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	return leads, int(total), nil
}

func (r *LeadRepository) Update(ctx context.Context, id string, update entity.LeadUpdate) error {
	set := bson.M{}
	if update.Status != "" {
		set["status"] = update.Status
	}
	if update.Notes != "" {
		set["notes"] = update.Notes
	}
	if update.AssignedTo != "" {
		set["assigned_to"] = update.AssignedTo
	}
	if update.ContactedAt != nil {
		set["contacted_at"] = *update.ContactedAt
	}
	if update.ConvertedAt != nil {
		set["converted_at"] = *update.ConvertedAt
	}
	set["updated_at"] = time.Now().UTC()

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *LeadRepository) DeleteDemo(ctx context.Context, matcher entity.DemoLeadMatcher) (int, error) {
	query := bson.M{"$or": []bson.M{
		{"name": bson.M{"$in": matcher.Names}},
		{"email": bson.M{"$in": matcher.Emails}},
		{"source": bson.M{"$in": matcher.Sources}},
	}}

	result, err := r.collection.DeleteMany(ctx, query)
	if err != nil {
		return 0, err
	}
	return int(result.DeletedCount), nil
}
