package models

// PaymentRequest is handed to the payment adapter by the submission pipeline.
type PaymentRequest struct {
	Amount   float64
	Currency string
	Method   string // "stripe", "razorpay" or "upi"
	Booking  *BookingDraft
}

// PaymentResult is the normalized outcome of a payment attempt.
// Exactly one of the two shapes holds: success with the gateway identifiers,
// or a failure with Reason set.
type PaymentResult struct {
	Success       bool   `json:"success"`
	PaymentID     string `json:"paymentId,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
	Reason        string `json:"reason,omitempty"`
}
