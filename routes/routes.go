package routes

import (
	"net/http"
	"time"

	"motorover/config"
	"motorover/handlers"
	"motorover/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterInquiryRoutes registers the inquiry intake endpoint.
func RegisterInquiryRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.POST("/inquiries", hb.SubmitInquiryHandler)
}

// RegisterBookingRoutes registers the direct booking endpoint and the wizard
// session endpoints.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.POST("/bookings", hb.CreateBookingHandler)

	wizardGroup := api.Group("/booking")
	{
		wizardGroup.POST("/session", hb.StartWizardSession)
		wizardGroup.GET("/session/:sessionID", hb.GetWizardSession)
		wizardGroup.PUT("/session/:sessionID", hb.UpdateWizardSession)
		wizardGroup.POST("/confirm", hb.ConfirmWizard)
		wizardGroup.DELETE("/session/:sessionID", hb.CancelWizardSession)
	}
}

// RegisterTourRoutes registers the public tour catalog endpoints.
func RegisterTourRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/tours", hb.ListToursHandler)
	api.GET("/tours/:id", hb.GetTourHandler)
}

// RegisterHealthRoutes registers the health-check endpoints.
func RegisterHealthRoutes(api *gin.RouterGroup) {
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.GET("/health/services", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	basePath := config.AppConfig.APIBasePath
	if basePath == "" {
		basePath = "/api"
	}
	api := r.Group(basePath)

	RegisterInquiryRoutes(api, hb)
	RegisterBookingRoutes(api, hb)
	RegisterTourRoutes(api, hb)
	RegisterHealthRoutes(api)
}
