package tourRepo

import (
	"context"
	"errors"
	"time"

	"motorover/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrTourNotFound is returned when no tour matches the requested ID.
var ErrTourNotFound = errors.New("tour not found")

// GetByID returns a tour by its ID.
func (r *mongoTourRepo) GetByID(ctx context.Context, id string) (*models.Tour, error) {
	var tour models.Tour
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tour)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	return &tour, nil
}

// List fetches tours matching the given filter. Empty filter fields are ignored.
func (r *mongoTourRepo) List(ctx context.Context, filter models.TourFilter) ([]models.Tour, error) {
	query := bson.M{}
	if filter.Region != "" {
		query["region"] = filter.Region
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

// UpdateStatus applies a partial status/date update to a tour.
func (r *mongoTourRepo) UpdateStatus(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrTourNotFound
	}
	return nil
}
