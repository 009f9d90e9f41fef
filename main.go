package main

import (
	"context"
	"mime"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/top5deutschland/top5_backend/config"
	"github.com/top5deutschland/top5_backend/middleware"
	"github.com/top5deutschland/top5_backend/repositories"
	"github.com/top5deutschland/top5_backend/routes"
	"github.com/top5deutschland/top5_backend/services"
	"github.com/top5deutschland/top5_backend/utils"
	"github.com/top5deutschland/top5_backend/websocket"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env file not found, relying on process environment")
	}

	config.InitLogger()

	// Ensure correct MIME type for SVG files
	_ = mime.AddExtensionType(".svg", "image/svg+xml")

	// Connect to Redis (optional, used for admin session revocation)
	config.ConnectRedis()

	// Pick the persistence backend: MongoDB when configured, otherwise
	// an in-process store for local development.
	var store repositories.Store
	if os.Getenv("MONGO_URI") != "" || os.Getenv("MONGODB_URI") != "" {
		client := config.ConnectDB()
		store = repositories.NewMongoStore(config.Database(client))
	} else {
		logrus.Warn("MONGO_URI not set, catalog data will not survive restarts")
		store = repositories.NewMemoryStore()
	}

	repo := repositories.NewCatalogRepository(store)
	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repo.Init(initCtx); err != nil {
		cancel()
		logrus.WithError(err).Fatal("failed to load catalog")
	}
	cancel()

	// Gemini tip integration is optional
	tips, err := services.NewTipService(context.Background())
	if err != nil {
		logrus.WithError(err).Warn("local tips disabled")
		tips = nil
	}

	// Create WebSocket hub
	wsHub := websocket.NewHub()
	go wsHub.Run()
	go middleware.CleanupBlacklist()

	// Create a new Echo instance
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityConfig{
		AllowedDomains: []string{"*"},
		AllowInlineJS:  true,
		AllowEval:      false,
	}))

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "Top5 Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status": "healthy",
		})
	})

	routes.SetupRoutes(e, repo, wsHub, tips)

	// Ensure uploads directories exist
	if err := utils.InitializeStorage(); err != nil {
		logrus.WithError(err).Fatal("failed to create upload directories")
	}
	e.Static("/uploads", "uploads")

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
