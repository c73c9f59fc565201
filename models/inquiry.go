package models

import "time"

// UTMParams carries campaign attribution from the landing page through to the CRM lead.
type UTMParams struct {
	Source   string `bson:"source,omitempty" json:"source,omitempty"`
	Medium   string `bson:"medium,omitempty" json:"medium,omitempty"`
	Campaign string `bson:"campaign,omitempty" json:"campaign,omitempty"`
	Term     string `bson:"term,omitempty" json:"term,omitempty"`
	Content  string `bson:"content,omitempty" json:"content,omitempty"`
}

// Inquiry represents a prospective customer's request for information about a tour.
// Immutable once persisted; the repository assigns the ID.
type Inquiry struct {
	ID          string    `bson:"id" json:"id"`
	Tour        string    `bson:"tour" json:"tour"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone" json:"phone"`
	Message     string    `bson:"message,omitempty" json:"message,omitempty"`
	TravelDates string    `bson:"travel_dates,omitempty" json:"travelDates,omitempty"`
	Travelers   int       `bson:"travelers,omitempty" json:"travelers,omitempty"`
	Source      string    `bson:"source,omitempty" json:"source,omitempty"`
	UTMParams   UTMParams `bson:"utm_params,omitempty" json:"utmParams,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
