package models

import "time"

// Tour statuses as maintained by the daily status refresh.
const (
	TourStatusUpcoming  = "upcoming"
	TourStatusActive    = "active"
	TourStatusCompleted = "completed"
)

// DateTBA replaces a tour's dates once its season has passed.
const DateTBA = "TBA"

// Tour represents a published tour offering.
type Tour struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Region       string    `bson:"region" json:"region"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	BasePrice    float64   `bson:"base_price" json:"basePrice"`
	DurationDays int       `bson:"duration_days" json:"durationDays"`
	StartDate    string    `bson:"start_date" json:"startDate"` // "YYYY-MM-DD" or "TBA"
	EndDate      string    `bson:"end_date" json:"endDate"`     // "YYYY-MM-DD" or "TBA"
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// TourFilter narrows tour catalog queries.
type TourFilter struct {
	Region string
	Status string
}
