package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fivam/blog-api/internal/api/handler"
	"github.com/fivam/blog-api/internal/api/middleware"
	"github.com/fivam/blog-api/internal/core/service"
	"github.com/fivam/blog-api/internal/infrastructure/config"
	mongodb "github.com/fivam/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/fivam/blog-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/fivam/blog-api/internal/infrastructure/http/handlers"
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
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	listCache := redisdb.NewListCache(rdb, cfg.Redis.CacheTTL)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	postService := service.NewPostService(postRepo, userRepo, listCache, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	authGate := middleware.Auth(cfg.JWTSecret)

	// --- Root banner ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"service": "blog-api", "status": "ok"})
	})

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Post routes (reads open, mutations behind the auth gate) ---
	posts := e.Group("/posts")
	posts.GET("", postHandler.List)
	posts.GET("/search", postHandler.Search)
	posts.GET("/:id", postHandler.Get)
	posts.POST("", postHandler.Create, authGate)
	posts.PUT("/:id", postHandler.Update, authGate)
	posts.DELETE("/:id", postHandler.Delete, authGate)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
