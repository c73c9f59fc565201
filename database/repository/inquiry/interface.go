package inquiryRepo

import (
	"context"

	"motorover/database"
	"motorover/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry models.Inquiry) (string, error)
	GetByID(ctx context.Context, id string) (*models.Inquiry, error)
	GetByEmail(ctx context.Context, email string) ([]models.Inquiry, error)
}

type mongoInquiryRepo struct {
	coll *mongo.Collection
}

// NewMongoInquiryRepo returns a new InquiryRepository instance using MongoDB.
func NewMongoInquiryRepo() InquiryRepository {
	return &mongoInquiryRepo{
		coll: database.Collection("inquiries"),
	}
}
