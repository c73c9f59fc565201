package submission

import (
	"context"
	"strconv"
	"time"

	bookingRepo "motorover/database/repository/booking"
	inquiryRepo "motorover/database/repository/inquiry"
	"motorover/models"
	"motorover/services/notify"
	"motorover/services/pricing"
	"motorover/services/validation"

	"go.uber.org/zap"
)

// persistTimeout bounds each datastore write.
const persistTimeout = 15 * time.Second

// notifyTimeout bounds the fire-and-forget fan-out after a submission is
// already accepted.
const notifyTimeout = 30 * time.Second

// DefaultSubmissionService is the production pipeline implementation.
type DefaultSubmissionService struct {
	Inquiries inquiryRepo.InquiryRepository
	Bookings  bookingRepo.BookingRepository
	Payments  PaymentAdapter
	Notifier  notify.NotificationService
	Currency  string
	Logger    *zap.Logger
}

// SubmitInquiry validates the inquiry, persists it, then fans out
// notifications. Notification failures never change the returned outcome.
func (s *DefaultSubmissionService) SubmitInquiry(ctx context.Context, inquiry models.Inquiry) (*models.Inquiry, error) {
	result := validation.ValidateFields(inquiryFields(inquiry))
	if !result.IsValid {
		return nil, &ValidationError{FieldErrors: result.Errors}
	}

	persistCtx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	id, err := s.Inquiries.Create(persistCtx, inquiry)
	if err != nil {
		s.Logger.Error("submission: inquiry persistence failed",
			zap.String("email", inquiry.Email), zap.Error(err))
		return nil, &PersistenceError{Err: err}
	}
	inquiry.ID = id

	go func(saved models.Inquiry) {
		notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		s.Notifier.NotifyInquiry(notifyCtx, saved)
	}(inquiry)

	s.Logger.Info("submission: inquiry accepted",
		zap.String("inquiryId", id), zap.String("tour", inquiry.Tour))
	return &inquiry, nil
}

// SubmitBooking validates the draft, charges the payment, persists the
// booking, then fans out the confirmation. A payment failure returns before
// any persistence write.
func (s *DefaultSubmissionService) SubmitBooking(ctx context.Context, draft models.BookingDraft, paymentMethod string) (*models.Booking, error) {
	result := validation.ValidateFields(bookingFields(draft, paymentMethod))
	if !result.IsValid {
		return nil, &ValidationError{FieldErrors: result.Errors}
	}
	if !validation.ValidateDateRange(draft.Dates.Start, draft.Dates.End) {
		return nil, &ValidationError{FieldErrors: map[string][]string{
			"dates": {"Start date must be on or before the end date"},
		}}
	}

	// The caller's running total is advisory only.
	total := pricing.DraftTotal(draft)
	draft.TotalPrice = total

	paymentResult := s.Payments.Pay(ctx, models.PaymentRequest{
		Amount:   total,
		Currency: s.Currency,
		Method:   paymentMethod,
		Booking:  &draft,
	})
	if !paymentResult.Success {
		return nil, &PaymentError{Reason: paymentResult.Reason}
	}

	booking := models.Booking{
		TourID:        draft.Tour.ID,
		TourName:      draft.Tour.Name,
		Dates:         draft.Dates,
		Travelers:     draft.Travelers,
		Addons:        draft.Addons,
		TotalPrice:    total,
		Email:         draft.Email,
		Phone:         draft.Phone,
		PaymentMethod: paymentMethod,
		PaymentID:     paymentResult.PaymentID,
		TransactionID: paymentResult.TransactionID,
	}

	persistCtx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	id, err := s.Bookings.Create(persistCtx, booking)
	if err != nil {
		s.Logger.Error("submission: booking persistence failed",
			zap.String("paymentId", paymentResult.PaymentID), zap.Error(err))
		return nil, &PersistenceError{Err: err}
	}
	booking.ID = id

	go func(saved models.Booking) {
		notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		s.Notifier.NotifyBooking(notifyCtx, saved)
	}(booking)

	s.Logger.Info("submission: booking accepted",
		zap.String("bookingId", id),
		zap.String("tour", booking.TourID),
		zap.Float64("total", total))
	return &booking, nil
}

func inquiryFields(inquiry models.Inquiry) []validation.Field {
	return []validation.Field{
		{Name: "name", Label: "Name", Value: inquiry.Name, Required: true},
		{Name: "email", Label: "Email", Value: inquiry.Email, Type: "email", Required: true},
		{Name: "phone", Label: "Phone", Value: inquiry.Phone, Type: "tel", Required: true},
		{Name: "tour", Label: "Tour", Value: inquiry.Tour, Required: true},
		{Name: "message", Label: "Message", Value: inquiry.Message, MaxLength: 2000},
	}
}

func bookingFields(draft models.BookingDraft, paymentMethod string) []validation.Field {
	var tourID string
	if draft.Tour != nil {
		tourID = draft.Tour.ID
	}
	return []validation.Field{
		{Name: "tour", Label: "Tour", Value: tourID, Required: true},
		{Name: "startDate", Label: "Start Date", Value: draft.Dates.Start, Type: "date", Required: true},
		{Name: "endDate", Label: "End Date", Value: draft.Dates.End, Type: "date", Required: true},
		{Name: "travelers", Label: "Travelers", Value: travelersValue(draft.Travelers), Required: true},
		{Name: "email", Label: "Email", Value: draft.Email, Type: "email", Required: true},
		{Name: "paymentMethod", Label: "Payment Method", Value: paymentMethod, Required: true},
	}
}

func travelersValue(travelers []models.Traveler) string {
	if len(travelers) == 0 {
		return ""
	}
	return strconv.Itoa(len(travelers))
}
