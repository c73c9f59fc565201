package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"motorover/models"

	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Mailer       Mailer
	CRM          CRMClient
	SupportEmail string
	Logger       *zap.Logger
}

func NewDefaultNotificationService(mailer Mailer, crm CRMClient, supportEmail string, logger *zap.Logger) (*DefaultNotificationService, error) {
	if mailer == nil || crm == nil {
		return nil, fmt.Errorf("notification service initialization error: mailer or CRM client is nil")
	}
	return &DefaultNotificationService{
		Mailer:       mailer,
		CRM:          crm,
		SupportEmail: supportEmail,
		Logger:       logger,
	}, nil
}

// NotifyInquiry dispatches the submitter confirmation, the operations
// notification and the CRM lead. The three run independently; one failing
// must not block the others, and no ordering is guaranteed.
func (s *DefaultNotificationService) NotifyInquiry(ctx context.Context, inquiry models.Inquiry) {
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		subject := "Thank you for your inquiry - MotoRover"
		body := inquiryConfirmationBody(inquiry)
		if err := s.Mailer.Send(ctx, inquiry.Email, subject, body); err != nil {
			s.Logger.Warn("notify: inquiry confirmation email failed",
				zap.String("inquiryId", inquiry.ID), zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		subject := fmt.Sprintf("New Inquiry: %s", inquiry.Tour)
		body := inquiryNotificationBody(inquiry)
		if err := s.Mailer.Send(ctx, s.SupportEmail, subject, body); err != nil {
			s.Logger.Warn("notify: operations notification email failed",
				zap.String("inquiryId", inquiry.ID), zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		lead := models.Lead{
			Name:      inquiry.Name,
			Email:     inquiry.Email,
			Phone:     inquiry.Phone,
			Tour:      inquiry.Tour,
			Source:    inquiry.Source,
			UTMParams: inquiry.UTMParams,
			CreatedAt: time.Now(),
		}
		if err := s.CRM.CreateLead(ctx, lead); err != nil {
			s.Logger.Warn("notify: CRM lead creation failed",
				zap.String("inquiryId", inquiry.ID), zap.Error(err))
		}
	}()

	wg.Wait()
}

// NotifyBooking sends a single confirmation to the traveler.
func (s *DefaultNotificationService) NotifyBooking(ctx context.Context, booking models.Booking) {
	subject := "Booking Confirmation - MotoRover"
	body := bookingConfirmationBody(booking)
	if err := s.Mailer.Send(ctx, booking.Email, subject, body); err != nil {
		s.Logger.Warn("notify: booking confirmation email failed",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}

func inquiryConfirmationBody(inquiry models.Inquiry) string {
	return fmt.Sprintf(
		"Hi %s,\n\nThanks for your interest in %s. Our team will get back to you within one business day.\n\nRide safe,\nMotoRover",
		inquiry.Name, inquiry.Tour,
	)
}

func inquiryNotificationBody(inquiry models.Inquiry) string {
	return fmt.Sprintf(
		"Tour: %s\nName: %s\nEmail: %s\nPhone: %s\nTravel dates: %s\nTravelers: %d\nSource: %s\n\n%s",
		inquiry.Tour, inquiry.Name, inquiry.Email, inquiry.Phone,
		inquiry.TravelDates, inquiry.Travelers, inquiry.Source, inquiry.Message,
	)
}

func bookingConfirmationBody(booking models.Booking) string {
	return fmt.Sprintf(
		"Your booking for %s (%s to %s) is confirmed.\nTravelers: %d\nTotal: %.2f\nPayment reference: %s\n\nSee you on the road,\nMotoRover",
		booking.TourName, booking.Dates.Start, booking.Dates.End,
		len(booking.Travelers), booking.TotalPrice, booking.PaymentID,
	)
}
