package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/courtbook/server/internal/config"
	"github.com/courtbook/server/internal/container"
	"github.com/courtbook/server/internal/handlers"
	"github.com/courtbook/server/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container, cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "courtbook-api",
			})
		})

		// public routes
		v1.POST("/auth/register", handlers.Register(c.UserService))
		v1.POST("/auth/login", handlers.Login(c.UserService))
		v1.GET("/courts", handlers.ListCourts(c.CourtService))
		v1.GET("/courts/:id", handlers.GetCourt(c.CourtService))
		v1.GET("/courts/:id/slots", handlers.ListSlots(c.SlotService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(c.Tokens, c.Logger))

	courtRoutes := protected.Group("/courts")
	{
		courtRoutes.POST("", handlers.CreateCourt(c.CourtService))
		courtRoutes.GET("/my", handlers.ListMyCourts(c.CourtService))
		courtRoutes.PUT("/:id", handlers.UpdateCourt(c.CourtService))
		courtRoutes.GET("/:id/bookings", handlers.ListCourtBookings(c.BookingService))
		courtRoutes.POST("/:id/slots", handlers.GenerateSlots(c.SlotService))
		courtRoutes.POST("/:id/slots/custom", handlers.CreateCustomSlot(c.SlotService))
		courtRoutes.DELETE("/:id/slots", handlers.DeleteSlot(c.SlotService))
	}

	bookingRoutes := protected.Group("/bookings")
	{
		bookingRoutes.POST("", handlers.CreateBooking(c.BookingService))
		bookingRoutes.GET("/my", handlers.ListMyBookings(c.BookingService))
		bookingRoutes.POST("/:id/cancel", handlers.CancelBooking(c.BookingService))
	}

	return r
}
