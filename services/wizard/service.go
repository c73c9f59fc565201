package wizard

import (
	"context"
	"fmt"
	"time"

	"motorover/models"
	"motorover/services/submission"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Wizard actions accepted by UpdateSession.
const (
	ActionNext         = "next"
	ActionPrev         = "prev"
	ActionSetTour      = "set_tour"
	ActionSetDates     = "set_dates"
	ActionSetTravelers = "set_travelers"
	ActionSetAddons    = "set_addons"
	ActionToggleAddon  = "toggle_addon"
	ActionSetContact   = "set_contact"
)

// UnknownActionError is returned for action tags outside the dispatch table.
type UnknownActionError struct {
	Action string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown wizard action: %q", e.Action)
}

// UpdateRequest is one mutation applied to a wizard session. Action selects
// the handler; the remaining fields carry that action's payload.
type UpdateRequest struct {
	Action    string            `json:"action" binding:"required"`
	Tour      *models.Tour      `json:"tour,omitempty"`
	Dates     *models.DateRange `json:"dates,omitempty"`
	Travelers []models.Traveler `json:"travelers,omitempty"`
	Addons    []models.Addon    `json:"addons,omitempty"`
	Addon     *models.Addon     `json:"addon,omitempty"`
	Email     string            `json:"email,omitempty"`
	Phone     string            `json:"phone,omitempty"`
}

// WizardService manages booking wizard sessions end to end.
type WizardService interface {
	StartSession(ctx context.Context) (*Session, error)
	GetSession(ctx context.Context, sessionID string) (*Session, error)
	UpdateSession(ctx context.Context, sessionID string, update UpdateRequest) (*Session, error)
	ConfirmBooking(ctx context.Context, sessionID, paymentMethod string) (*models.Booking, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultWizardService implements WizardService on top of a SessionStore.
type DefaultWizardService struct {
	Store     SessionStore
	Submitter submission.SubmissionService
	Logger    *zap.Logger
}

// actionHandler applies one UpdateRequest to a session.
type actionHandler func(session *Session, update UpdateRequest) error

// actionTable maps action tags to handlers. Unknown tags get a typed error
// instead of a panic or silent no-op.
var actionTable = map[string]actionHandler{
	ActionNext: func(s *Session, _ UpdateRequest) error {
		s.Next()
		return nil
	},
	ActionPrev: func(s *Session, _ UpdateRequest) error {
		s.Prev()
		return nil
	},
	ActionSetTour: func(s *Session, u UpdateRequest) error {
		if u.Tour == nil {
			return fmt.Errorf("set_tour requires a tour payload")
		}
		s.SetTour(*u.Tour)
		return nil
	},
	ActionSetDates: func(s *Session, u UpdateRequest) error {
		if u.Dates == nil {
			return fmt.Errorf("set_dates requires a dates payload")
		}
		s.SetDates(u.Dates.Start, u.Dates.End)
		return nil
	},
	ActionSetTravelers: func(s *Session, u UpdateRequest) error {
		s.SetTravelers(u.Travelers)
		return nil
	},
	ActionSetAddons: func(s *Session, u UpdateRequest) error {
		s.SetAddons(u.Addons)
		return nil
	},
	ActionToggleAddon: func(s *Session, u UpdateRequest) error {
		if u.Addon == nil {
			return fmt.Errorf("toggle_addon requires an addon payload")
		}
		s.ToggleAddon(*u.Addon)
		return nil
	},
	ActionSetContact: func(s *Session, u UpdateRequest) error {
		s.SetContact(u.Email, u.Phone)
		return nil
	},
}

// StartSession creates a fresh wizard session with an empty draft.
func (s *DefaultWizardService) StartSession(ctx context.Context) (*Session, error) {
	now := time.Now()
	session := &Session{
		ID:        uuid.New().String(),
		Step:      StepTourSelection,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Debug("wizard: session started", zap.String("sessionId", session.ID))
	return session, nil
}

// GetSession loads an active session.
func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	return s.Store.Get(ctx, sessionID)
}

// UpdateSession applies one action to the session and saves it back.
func (s *DefaultWizardService) UpdateSession(ctx context.Context, sessionID string, update UpdateRequest) (*Session, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	handler, ok := actionTable[update.Action]
	if !ok {
		return nil, &UnknownActionError{Action: update.Action}
	}
	if err := handler(session, update); err != nil {
		return nil, err
	}

	session.UpdatedAt = time.Now()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmBooking hands the accumulated draft to the submission pipeline. Only
// a session at the review step can confirm. On success the session is
// finalized and removed; on payment or validation failure it is kept so the
// user can correct and retry.
func (s *DefaultWizardService) ConfirmBooking(ctx context.Context, sessionID, paymentMethod string) (*models.Booking, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepReview {
		return nil, fmt.Errorf("booking can only be confirmed from the review step")
	}

	booking, err := s.Submitter.SubmitBooking(ctx, session.Draft, paymentMethod)
	if err != nil {
		return nil, err
	}

	if err := s.Store.Delete(ctx, sessionID); err != nil {
		// The booking is already accepted; a leftover session only wastes TTL.
		s.Logger.Warn("wizard: failed to delete submitted session",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	s.Logger.Info("wizard: booking confirmed",
		zap.String("sessionId", sessionID), zap.String("bookingId", booking.ID))
	return booking, nil
}

// CancelSession abandons the wizard and discards the draft.
func (s *DefaultWizardService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.Logger.Debug("wizard: session cancelled", zap.String("sessionId", sessionID))
	return nil
}
