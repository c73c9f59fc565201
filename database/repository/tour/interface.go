package tourRepo

import (
	"context"

	"motorover/database"
	"motorover/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TourRepository interface {
	GetByID(ctx context.Context, id string) (*models.Tour, error)
	List(ctx context.Context, filter models.TourFilter) ([]models.Tour, error)
	UpdateStatus(ctx context.Context, id string, updates map[string]interface{}) error
}

type mongoTourRepo struct {
	coll *mongo.Collection
}

// NewMongoTourRepo returns a new TourRepository instance using MongoDB.
func NewMongoTourRepo() TourRepository {
	return &mongoTourRepo{
		coll: database.Collection("tours"),
	}
}
