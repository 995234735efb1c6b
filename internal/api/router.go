package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/catatlas/cat-registry/docs"
	"github.com/catatlas/cat-registry/internal/api/handler"
	"github.com/catatlas/cat-registry/internal/api/middleware"
	"github.com/catatlas/cat-registry/internal/core/domain"
	"github.com/catatlas/cat-registry/internal/core/ports"
	"github.com/catatlas/cat-registry/internal/core/service"
	"github.com/catatlas/cat-registry/internal/infrastructure/config"
	mongodb "github.com/catatlas/cat-registry/internal/infrastructure/db/mongo"
	redisdb "github.com/catatlas/cat-registry/internal/infrastructure/db/redis"
	"github.com/catatlas/cat-registry/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, pipeline ports.MediaPipeline, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catregistry"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	catRepo := mongodb.NewCatRepository(db)
	areaCache := redisdb.NewAreaCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, log)
	catService := service.NewCatService(catRepo, userRepo, areaCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	catHandler := handler.NewCatHandler(catService, pipeline)

	auth := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)

	// --- Users ---
	users := e.Group("/v1/users")
	users.GET("", userHandler.List)
	users.POST("", userHandler.Register)
	users.PUT("", userHandler.UpdateSelf, auth)
	users.DELETE("", userHandler.DeleteSelf, auth)
	users.GET("/token", userHandler.Introspect, auth)
	users.GET("/:id", userHandler.Get)

	// --- Cats ---
	// Static segments (/area, /user, /admin) are registered before /:id so
	// the router never swallows them as ids.
	cats := e.Group("/v1/cats")
	cats.GET("", catHandler.List)
	cats.POST("", catHandler.Create, auth)
	cats.GET("/area", catHandler.ListByArea)
	cats.GET("/user", catHandler.ListOwn, auth)
	cats.PUT("/admin/:id", catHandler.AdminUpdate, auth, adminOnly)
	cats.DELETE("/admin/:id", catHandler.AdminDelete, auth, adminOnly)
	cats.GET("/:id", catHandler.Get)
	cats.PUT("/:id", catHandler.Update, auth)
	cats.DELETE("/:id", catHandler.Delete, auth)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
