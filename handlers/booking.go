package handlers

import (
	"errors"
	"net/http"

	"motorover/models"
	"motorover/services/submission"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the direct booking endpoint (wizardless clients post
// a complete draft in one call).
type BookingHandler struct {
	submitter submission.SubmissionService
	logger    *zap.Logger
}

func NewBookingHandler(submitter submission.SubmissionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{submitter: submitter, logger: logger}
}

type bookingRequest struct {
	Tour          *models.Tour      `json:"tour"`
	Dates         models.DateRange  `json:"dates"`
	Travelers     []models.Traveler `json:"travelers"`
	Addons        []models.Addon    `json:"addons"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	PaymentMethod string            `json:"paymentMethod"`
}

// CreateBookingHandler validates, charges and persists a booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	draft := models.BookingDraft{
		Tour:      req.Tour,
		Dates:     req.Dates,
		Travelers: req.Travelers,
		Addons:    req.Addons,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	booking, err := h.submitter.SubmitBooking(c.Request.Context(), draft, req.PaymentMethod)
	if err != nil {
		respondBookingError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// respondBookingError maps pipeline error kinds onto the booking endpoints'
// response contract. Shared with the wizard confirm handler.
func respondBookingError(c *gin.Context, logger *zap.Logger, err error) {
	var validationErr *submission.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  validationErr.FieldErrors,
		})
		return
	}

	var paymentErr *submission.PaymentError
	if errors.As(err, &paymentErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Payment failed",
			"error":   paymentErr.Reason,
		})
		return
	}

	logger.Error("booking creation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Failed to create booking",
		"error":   "Please try again later.",
	})
}
