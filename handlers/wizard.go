package handlers

import (
	"errors"
	"net/http"

	"motorover/services/wizard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler serves the multi-step booking wizard session endpoints.
type WizardHandler struct {
	wizardSvc wizard.WizardService
	logger    *zap.Logger
}

func NewWizardHandler(wizardSvc wizard.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{wizardSvc: wizardSvc, logger: logger}
}

// sessionView shapes a wizard session for clients.
func sessionView(session *wizard.Session) gin.H {
	return gin.H{
		"sessionId": session.ID,
		"step":      session.Step,
		"stepTitle": session.Step.Title(),
		"status":    session.Status,
		"draft":     session.Draft,
	}
}

// StartWizardSession creates a new wizard session with an empty draft.
func (h *WizardHandler) StartWizardSession(c *gin.Context) {
	session, err := h.wizardSvc.StartSession(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to start wizard session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session"})
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

// GetWizardSession returns the current state of a session.
func (h *WizardHandler) GetWizardSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.wizardSvc.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
			return
		}
		h.logger.Error("failed to load wizard session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load booking session"})
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

// UpdateWizardSession applies one wizard action (step navigation or a draft
// mutation) to the session.
func (h *WizardHandler) UpdateWizardSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var update wizard.UpdateRequest
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.wizardSvc.UpdateSession(c.Request.Context(), sessionID, update)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
			return
		}
		var unknownErr *wizard.UnknownActionError
		if errors.As(err, &unknownErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": unknownErr.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

type confirmRequest struct {
	SessionID     string `json:"sessionID" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// ConfirmWizard finalizes the wizard: the accumulated draft goes through the
// submission pipeline (payment included) and the session is discarded on
// success.
func (h *WizardHandler) ConfirmWizard(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	booking, err := h.wizardSvc.ConfirmBooking(c.Request.Context(), req.SessionID, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking session not found or expired"})
			return
		}
		respondBookingError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// CancelWizardSession abandons the wizard and discards its draft.
func (h *WizardHandler) CancelWizardSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.wizardSvc.CancelSession(c.Request.Context(), sessionID); err != nil {
		h.logger.Error("failed to cancel wizard session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
