package handlers

import (
	"errors"
	"net/http"

	"motorover/models"
	"motorover/services/submission"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InquiryHandler serves the inquiry intake endpoint.
type InquiryHandler struct {
	submitter submission.SubmissionService
	logger    *zap.Logger
}

func NewInquiryHandler(submitter submission.SubmissionService, logger *zap.Logger) *InquiryHandler {
	return &InquiryHandler{submitter: submitter, logger: logger}
}

type inquiryRequest struct {
	Tour        string           `json:"tour"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Message     string           `json:"message"`
	TravelDates string           `json:"travelDates"`
	Travelers   int              `json:"travelers"`
	Source      string           `json:"source"`
	UTMParams   models.UTMParams `json:"utmParams"`
}

// SubmitInquiryHandler accepts a tour inquiry and runs the submission
// pipeline.
func (h *InquiryHandler) SubmitInquiryHandler(c *gin.Context) {
	var req inquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	inquiry := models.Inquiry{
		Tour:        req.Tour,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		TravelDates: req.TravelDates,
		Travelers:   req.Travelers,
		Source:      req.Source,
		UTMParams:   req.UTMParams,
	}

	saved, err := h.submitter.SubmitInquiry(c.Request.Context(), inquiry)
	if err != nil {
		var validationErr *submission.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Validation failed",
				"errors":  validationErr.FieldErrors,
			})
			return
		}
		h.logger.Error("inquiry submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to submit inquiry",
			"error":   "Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Inquiry submitted successfully",
		"id":      saved.ID,
	})
}
