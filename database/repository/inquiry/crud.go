package inquiryRepo

import (
	"context"
	"time"

	"motorover/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new inquiry and returns its assigned ID.
func (r *mongoInquiryRepo) Create(ctx context.Context, inquiry models.Inquiry) (string, error) {
	if inquiry.ID == "" {
		inquiry.ID = uuid.New().String()
	}
	inquiry.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, inquiry)
	if err != nil {
		return "", err
	}
	return inquiry.ID, nil
}

// GetByID returns an inquiry by its ID.
func (r *mongoInquiryRepo) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inquiry)
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// GetByEmail fetches all inquiries submitted from a given email address.
func (r *mongoInquiryRepo) GetByEmail(ctx context.Context, email string) ([]models.Inquiry, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inquiries []models.Inquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}
