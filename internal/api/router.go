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

	_ "github.com/Rudraa01/it-submission/docs"
	"github.com/Rudraa01/it-submission/internal/api/handler"
	"github.com/Rudraa01/it-submission/internal/api/middleware"
	"github.com/Rudraa01/it-submission/internal/core/domain"
	"github.com/Rudraa01/it-submission/internal/core/ports"
	"github.com/Rudraa01/it-submission/internal/core/service"
	mongodb "github.com/Rudraa01/it-submission/internal/infrastructure/db/mongo"
	redisdb "github.com/Rudraa01/it-submission/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, images ports.ImageStore, media handler.MediaPinger, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("itclub"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	revoker := redisdb.NewRevocationStore(rdb)

	authService := service.NewAuthService(userRepo, revoker, jwtSecret, tokenTTL)
	taskService := service.NewTaskService(taskRepo, userRepo, images, log)
	adminService := service.NewAdminService(taskRepo, userRepo, images, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	adminHandler := handler.NewAdminHandler(adminService)

	authRequired := middleware.Auth(jwtSecret, revoker)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authRequired)
	e.GET("/auth/me", authHandler.Me, authRequired)

	// --- Task routes ---
	tasks := e.Group("/tasks")
	tasks.POST("/submit", taskHandler.Submit, authRequired)
	tasks.GET("/gallery", taskHandler.Gallery)
	tasks.GET("/my-tasks", taskHandler.MyTasks, authRequired)
	tasks.GET("/:id", taskHandler.Get)

	// --- Admin routes ---
	admin := e.Group("/admin", authRequired, adminOnly)
	admin.GET("/tasks", adminHandler.ListTasks)
	admin.PATCH("/tasks/:id/status", adminHandler.UpdateTaskStatus)
	admin.DELETE("/tasks/:id", adminHandler.DeleteTask)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id/verify", adminHandler.SetVerification)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb, media)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
