package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handlers wired in main so route registration
// takes a single value.
type HandlerBundle struct {
	// Inquiry endpoints.
	SubmitInquiryHandler gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler gin.HandlerFunc

	// Booking wizard endpoints.
	StartWizardSession  gin.HandlerFunc
	GetWizardSession    gin.HandlerFunc
	UpdateWizardSession gin.HandlerFunc
	ConfirmWizard       gin.HandlerFunc
	CancelWizardSession gin.HandlerFunc

	// Tour catalog endpoints.
	ListToursHandler gin.HandlerFunc
	GetTourHandler   gin.HandlerFunc
}
