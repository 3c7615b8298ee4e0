// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"eventuraa/internal/bookings"
	"eventuraa/internal/events"
	"eventuraa/internal/notifications"
	"eventuraa/internal/shared/config"
	"eventuraa/internal/shared/database"
	"eventuraa/internal/tickets"
	"eventuraa/internal/venues"
	"eventuraa/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	notifier *notifications.Adapter

	cacheService cache.Service
	venueService venues.Service
	eventRepo    events.Repository
}

// NewRouter creates a new router instance. notifier may be nil when the
// Kafka sink is disabled.
func NewRouter(cfg *config.Config, db *database.DB, notifier *notifications.Adapter) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		notifier: notifier,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	bookings.RegisterValidators()

	r.setupHealthRoutes(engine)

	if r.db.Redis != nil {
		r.cacheService = cache.NewService(r.db.GetRedisClient())
	}

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Venue routes come first; bookings take the venue service as
		// their inventory source
		r.setupVenueRoutes(api)
		r.setupBookingRoutes(api)

		// Event routes before tickets for the same reason
		r.setupEventRoutes(api)
		r.setupTicketRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "eventuraa-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "eventuraa-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupVenueRoutes configures venue inventory routes
func (r *Router) setupVenueRoutes(rg *gin.RouterGroup) {
	venueRepo := venues.NewRepository(r.db.GetPostgreSQL())
	venueService := venues.NewService(venueRepo, r.cacheService)
	venueController := venues.NewController(venueService)

	// Kept for the booking module's inventory lookups
	r.venueService = venueService

	venues.SetupVenueRoutes(rg, venueController)
}

// setupBookingRoutes configures booking lifecycle routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())

	var notifier bookings.Notifier
	if r.notifier != nil {
		notifier = r.notifier
	}

	bookingService := bookings.NewService(bookingRepo, r.venueService, notifier)
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
}

// setupEventRoutes configures event catalog routes
func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	eventRepo := events.NewRepository(r.db.GetPostgreSQL())
	eventService := events.NewService(eventRepo, r.cacheService)
	eventController := events.NewController(eventService)

	r.eventRepo = eventRepo

	events.SetupEventRoutes(rg, eventController)
}

// setupTicketRoutes configures ticket purchase routes
func (r *Router) setupTicketRoutes(rg *gin.RouterGroup) {
	ticketRepo := tickets.NewRepository(r.db.GetPostgreSQL())

	var notifier tickets.Notifier
	if r.notifier != nil {
		notifier = r.notifier
	}

	ticketService := tickets.NewService(ticketRepo, r.eventRepo, notifier)
	ticketController := tickets.NewController(ticketService)

	tickets.SetupTicketRoutes(rg, ticketController)
}
