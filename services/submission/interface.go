package submission

import (
	"context"

	"motorover/models"
)

// PaymentAdapter is the slice of the payment package the pipeline needs.
type PaymentAdapter interface {
	Pay(ctx context.Context, req models.PaymentRequest) models.PaymentResult
}

// SubmissionService runs the validate → pay → persist → notify pipeline for
// inquiries and bookings. Exactly one persistence write and (for bookings)
// one payment attempt happen per call.
type SubmissionService interface {
	SubmitInquiry(ctx context.Context, inquiry models.Inquiry) (*models.Inquiry, error)
	SubmitBooking(ctx context.Context, draft models.BookingDraft, paymentMethod string) (*models.Booking, error)
}
