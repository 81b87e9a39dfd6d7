// Package routes wires the HTTP surface: one group per caller role plus
// the public search endpoints.
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fieldserve/handlers"
	"fieldserve/middleware"
	"fieldserve/models"
)

// HandlerBundle groups the role handlers for route registration.
type HandlerBundle struct {
	Client   *handlers.ClientHandler
	Agent    *handlers.AgentHandler
	Provider *handlers.ProviderHandler
	Search   *handlers.SearchHandler
	Storage  *handlers.StorageHandler
}

// Register installs every route group on the engine.
func Register(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	registerHealthRoute(r)
	registerSearchRoutes(r, hb)
	registerClientRoutes(r, hb)
	registerAgentRoutes(r, hb)
	registerProviderRoutes(r, hb)
	registerStorageRoutes(r, hb)
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerSearchRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/search")
	{
		api.GET("", hb.Search.Search)
		api.GET("/categories", hb.Search.Categories)
	}
}

func registerClientRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/client")
	{
		api.POST("/register", hb.Client.Register)
		api.POST("/login", hb.Client.SignIn)

		// Public review listing.
		api.GET("/reviews/organization/:orgID", hb.Client.ListOrganizationReviews)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleClient))
		protected.POST("/bookings", hb.Client.Checkout)
		protected.GET("/bookings", hb.Client.ListBookings)
		protected.PUT("/bookings/:bookingID/cancel", hb.Client.CancelBooking)
		protected.POST("/reviews", hb.Client.CreateReview)
		protected.PATCH("/reviews/:reviewID", hb.Client.UpdateReview)
		protected.DELETE("/reviews/:reviewID", hb.Client.DeleteReview)
	}
}

func registerAgentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/agent")
	{
		api.POST("/login", hb.Agent.SignIn)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAgent))
		protected.GET("/dashboard", hb.Agent.Dashboard)
		protected.PUT("/availability", hb.Agent.SetAvailability)
		protected.GET("/bookings/:bookingID", hb.Agent.GetBooking)
		protected.PUT("/bookings/:bookingID/status", hb.Agent.UpdateStatus)
		protected.POST("/bookings/:bookingID/tasks", hb.Agent.AddExtraTask)
		protected.PATCH("/bookings/:bookingID/tasks/:taskID", hb.Agent.UpdateExtraTask)
		protected.DELETE("/bookings/:bookingID/tasks/:taskID", hb.Agent.DeleteExtraTask)
		protected.POST("/bookings/:bookingID/payment", hb.Agent.ProcessPayment)
	}
}

func registerProviderRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/provider")
	{
		api.POST("/register", hb.Provider.Register)
		api.POST("/login", hb.Provider.SignIn)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleProvider))
		protected.GET("/profile", hb.Provider.GetProfile)
		protected.PATCH("/profile", hb.Provider.UpdateProfile)
		protected.POST("/assign", hb.Provider.AssignAgent)
		protected.GET("/bookings", hb.Provider.ListBookings)
		protected.GET("/bookings/:bookingID", hb.Provider.GetBooking)
		protected.GET("/agents", hb.Provider.ListAgents)
		protected.GET("/agents/available", hb.Provider.ListAvailableAgents)
		protected.POST("/agents", hb.Provider.CreateAgent)
		protected.DELETE("/agents/:agentID", hb.Provider.DeleteAgent)
		protected.GET("/services", hb.Provider.ListServices)
		protected.POST("/services", hb.Provider.CreateService)
		protected.PATCH("/services/:serviceID", hb.Provider.UpdateService)
		protected.DELETE("/services/:serviceID", hb.Provider.DeleteService)
	}
}

func registerStorageRoutes(r *gin.Engine, hb *HandlerBundle) {
	if hb.Storage == nil {
		return
	}
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/upload", hb.Storage.Upload)
		api.DELETE("/:publicID", hb.Storage.Delete)
	}
}
