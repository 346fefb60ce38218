package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/harmonyhousing/accommodation-portal/docs"
	"github.com/harmonyhousing/accommodation-portal/internal/api/handler"
	"github.com/harmonyhousing/accommodation-portal/internal/api/middleware"
	"github.com/harmonyhousing/accommodation-portal/internal/core/domain"
	"github.com/harmonyhousing/accommodation-portal/internal/core/service"
	"github.com/harmonyhousing/accommodation-portal/internal/infrastructure/config"
	mongodb "github.com/harmonyhousing/accommodation-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/harmonyhousing/accommodation-portal/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("housing"))

	// --- Dependencies ---
	accommodationRepo := mongodb.NewAccommodationRepository(db)
	applicationRepo := mongodb.NewApplicationRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)

	accommodationService := service.NewAccommodationService(accommodationRepo, log)
	applicationService := service.NewApplicationService(applicationRepo, log)
	authService := service.NewAuthService(userRepo, sessionStore, cfg.JWTSecret, cfg.SessionTTL, log)
	userService := service.NewUserService(userRepo, applicationRepo, accommodationRepo, log)

	accommodationHandler := handler.NewAccommodationHandler(accommodationService)
	applicationHandler := handler.NewApplicationHandler(applicationService, userRepo)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	authRequired := middleware.Auth(cfg.JWTSecret, sessionStore)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/v1/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/logout", authHandler.Logout, authRequired)
	auth.GET("/me", authHandler.Me, authRequired)

	// --- Accommodation routes ---
	accommodations := e.Group("/v1/accommodations", authRequired)
	accommodations.GET("", accommodationHandler.List)
	accommodations.GET("/:id", accommodationHandler.Get)
	accommodations.POST("", accommodationHandler.Create, adminOnly)
	accommodations.PUT("/:id", accommodationHandler.Update, adminOnly)
	accommodations.DELETE("/:id", accommodationHandler.Delete, adminOnly)

	// --- Application routes ---
	applications := e.Group("/v1/applications", authRequired)
	applications.POST("", applicationHandler.Submit)
	applications.GET("/mine", applicationHandler.ListMine)
	applications.GET("", applicationHandler.List, adminOnly)
	applications.GET("/:id", applicationHandler.Get, adminOnly)
	applications.PATCH("/:id/status", applicationHandler.UpdateStatus, adminOnly)

	// --- Admin routes ---
	admin := e.Group("/v1/admin", authRequired, adminOnly)
	admin.GET("/dashboard", userHandler.Dashboard)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.GET("/users/:id", userHandler.Get)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
