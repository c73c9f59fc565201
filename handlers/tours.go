package handlers

import (
	"errors"
	"net/http"

	tourRepo "motorover/database/repository/tour"
	"motorover/models"
	"motorover/services/tour"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TourHandler serves the public tour catalog.
type TourHandler struct {
	tourSvc tour.TourService
	logger  *zap.Logger
}

func NewTourHandler(tourSvc tour.TourService, logger *zap.Logger) *TourHandler {
	return &TourHandler{tourSvc: tourSvc, logger: logger}
}

// ListToursHandler returns tours matching optional region/status filters.
func (h *TourHandler) ListToursHandler(c *gin.Context) {
	filter := models.TourFilter{
		Region: c.Query("region"),
		Status: c.Query("status"),
	}

	tours, err := h.tourSvc.ListTours(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list tours", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tours"})
		return
	}
	if tours == nil {
		tours = []models.Tour{}
	}
	c.JSON(http.StatusOK, tours)
}

// GetTourHandler returns one tour by ID.
func (h *TourHandler) GetTourHandler(c *gin.Context) {
	id := c.Param("id")

	t, err := h.tourSvc.GetTour(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tour not found"})
			return
		}
		h.logger.Error("failed to load tour", zap.String("tourId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tour"})
		return
	}
	c.JSON(http.StatusOK, t)
}
