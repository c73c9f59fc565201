package notify

import (
	"context"

	"motorover/models"
)

// Mailer sends one email. Implementations decide transport.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// CRMClient creates leads in the external CRM.
type CRMClient interface {
	CreateLead(ctx context.Context, lead models.Lead) error
}

// NotificationService fans out best-effort notifications after a submission
// has been accepted. Failures are logged and never propagated: the record is
// already persisted by the time these run.
type NotificationService interface {
	NotifyInquiry(ctx context.Context, inquiry models.Inquiry)
	NotifyBooking(ctx context.Context, booking models.Booking)
}
