package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/careconnect/appointment-system/docs"
	"github.com/careconnect/appointment-system/internal/api/handler"
	"github.com/careconnect/appointment-system/internal/api/middleware"
	"github.com/careconnect/appointment-system/internal/core/service"
	mongodb "github.com/careconnect/appointment-system/internal/infrastructure/db/mongo"
	redisdb "github.com/careconnect/appointment-system/internal/infrastructure/db/redis"
	healthhandlers "github.com/careconnect/appointment-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("appointments"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)
	directoryCache := redisdb.NewDirectoryCache(rdb)

	authService := service.NewAuthService(userRepo, directoryCache, jwtSecret, tokenTTL, log)
	appointmentService := service.NewAppointmentService(userRepo, appointmentRepo, log)
	directoryService := service.NewDirectoryService(userRepo, directoryCache, log)

	authHandler := handler.NewAuthHandler(authService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	directoryHandler := handler.NewDirectoryHandler(directoryService)

	authMiddleware := middleware.Auth(jwtSecret)
	loginLimiter := middleware.NewRateLimiter(5, 10)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register, loginLimiter.Middleware())
	auth.POST("/login", authHandler.Login, loginLimiter.Middleware())
	auth.GET("/me", authHandler.Me, authMiddleware)

	// --- Directory routes (no auth required) ---
	users := e.Group("/users")
	users.GET("/doctors", directoryHandler.Doctors)
	users.GET("/patients", directoryHandler.Patients)

	// --- Appointment routes ---
	appointments := e.Group("/appointments", authMiddleware)
	appointments.POST("", appointmentHandler.Book)
	appointments.GET("", appointmentHandler.List)
	appointments.DELETE("/:id", appointmentHandler.Cancel)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
