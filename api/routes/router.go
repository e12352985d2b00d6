package routes

import (
	"net/http"
	"time"

	"seatwise/internal/accessrequests"
	"seatwise/internal/auth"
	"seatwise/internal/bookings"
	"seatwise/internal/notifications"
	"seatwise/internal/payments"
	"seatwise/internal/seatpool"
	"seatwise/internal/sessions"
	"seatwise/internal/shared/config"
	"seatwise/internal/shared/database"
	"seatwise/internal/shared/middleware"
	"seatwise/internal/users"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	notifier notifications.Producer
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, notifier notifications.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		notifier: notifier,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	// The root path stands in for the login page; API clients post straight
	// to /login.
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":     "seatwise-backend",
			"api_version": r.config.APIVersion,
			"login":       r.config.GetAPIBasePath() + "/login",
		})
	})

	sessionStore := sessions.NewRedisStore(r.db.GetRedisClient(), r.config.Session.TTL)
	sessionAuth := middleware.SessionAuth(sessionStore, r.config)
	requireAdmin := middleware.RequireAdmin()

	userRepo := users.NewRepository(r.db.GetPostgreSQL())
	poolRepo := seatpool.NewRepository(r.db.GetPostgreSQL())
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	paymentRepo := payments.NewRepository(r.db.GetPostgreSQL())
	requestRepo := accessrequests.NewRepository(r.db.GetPostgreSQL())

	poolService := seatpool.NewService(poolRepo)
	bookingService := bookings.NewService(bookingRepo, poolRepo, r.notifier)
	userService := users.NewService(userRepo)
	authService := auth.NewService(userRepo, sessionStore)
	paymentService := payments.NewService(paymentRepo, bookingService, payments.NewMockProcessor())
	requestService := accessrequests.NewService(
		requestRepo,
		accessrequests.PolicyFromName(r.config.ReplyPolicy),
		r.notifier,
	)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		auth.SetupAuthRoutes(api, auth.NewController(authService, r.config))
		bookings.SetupBookingRoutes(api, bookings.NewController(bookingService), sessionAuth)
		payments.SetupPaymentRoutes(api, payments.NewController(paymentService), sessionAuth)
		accessrequests.SetupAccessRequestRoutes(api, accessrequests.NewController(requestService), sessionAuth)
		seatpool.SetupSeatPoolRoutes(api, seatpool.NewController(poolService), sessionAuth, requireAdmin)
		users.SetupUserRoutes(api, users.NewController(userService), sessionAuth, requireAdmin)
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
				"service":   "seatwise-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "seatwise-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}
