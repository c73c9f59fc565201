package models

import "time"

// Lead is the CRM-side contact record created from an inquiry.
type Lead struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Tour      string    `json:"tour"`
	Source    string    `json:"source,omitempty"`
	UTMParams UTMParams `json:"utmParams,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
