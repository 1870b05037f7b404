package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/purplemerit/user-management-system/docs"
	"github.com/purplemerit/user-management-system/internal/api/handler"
	"github.com/purplemerit/user-management-system/internal/api/middleware"
	"github.com/purplemerit/user-management-system/internal/core/domain"
	"github.com/purplemerit/user-management-system/internal/core/service"
	mongodb "github.com/purplemerit/user-management-system/internal/infrastructure/db/mongo"
)

// RouterConfig carries the settings the router needs beyond its dependencies.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("usermgmt"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, log)
	accountService := service.NewAccountService(userRepo, tokenService, log)
	adminService := service.NewAdminService(userRepo, log)

	authHandler := handler.NewAuthHandler(accountService)
	userHandler := handler.NewUserHandler(accountService)
	adminHandler := handler.NewAdminHandler(adminService)
	dashboardHandler := handler.NewDashboardHandler()

	protect := middleware.Auth(tokenService, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, protect)

	// --- Self-service routes ---
	users := e.Group("/api/users", protect)
	users.PUT("/me", userHandler.UpdateProfile)
	users.PUT("/me/password", userHandler.ChangePassword)

	// --- Admin console ---
	admin := e.Group("/api/admin", protect, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id/activate", adminHandler.Activate)
	admin.PATCH("/users/:id/deactivate", adminHandler.Deactivate)

	// --- Dashboards ---
	dashboard := e.Group("/api/dashboard", protect)
	dashboard.GET("/user", dashboardHandler.User)
	dashboard.GET("/admin", dashboardHandler.Admin, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
