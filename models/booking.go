package models

import "time"

// DateRange holds the travel window picked in the wizard. Both bounds are
// "YYYY-MM-DD" strings; empty until the dates step completes.
type DateRange struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// Traveler is one entry in the wizard's traveler list.
type Traveler struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Age   int    `bson:"age,omitempty" json:"age,omitempty"`
}

// Addon is an optional paid extra attached to a booking.
type Addon struct {
	ID    string  `bson:"id" json:"id"`
	Label string  `bson:"label" json:"label"`
	Price float64 `bson:"price" json:"price"`
}

// BookingDraft is the mutable, wizard-scoped booking under construction.
// TotalPrice is derived and recomputed on every mutation, never cached stale.
type BookingDraft struct {
	Tour       *Tour      `json:"tour,omitempty"`
	Dates      DateRange  `json:"dates"`
	Travelers  []Traveler `json:"travelers"`
	Addons     []Addon    `json:"addons"`
	TotalPrice float64    `json:"totalPrice"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
}

// Booking is the finalized, persisted form of a draft. Created only after the
// payment succeeded; immutable thereafter.
type Booking struct {
	ID            string     `bson:"id" json:"id"`
	TourID        string     `bson:"tour_id" json:"tourId"`
	TourName      string     `bson:"tour_name" json:"tourName"`
	Dates         DateRange  `bson:"dates" json:"dates"`
	Travelers     []Traveler `bson:"travelers" json:"travelers"`
	Addons        []Addon    `bson:"addons,omitempty" json:"addons,omitempty"`
	TotalPrice    float64    `bson:"total_price" json:"totalPrice"`
	Email         string     `bson:"email" json:"email"`
	Phone         string     `bson:"phone,omitempty" json:"phone,omitempty"`
	PaymentMethod string     `bson:"payment_method" json:"paymentMethod"`
	PaymentID     string     `bson:"payment_id" json:"paymentId"`
	TransactionID string     `bson:"transaction_id" json:"transactionId"`
	CreatedAt     time.Time  `bson:"created_at" json:"createdAt"`
}
