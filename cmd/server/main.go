package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/drink-trail/internal/config"
	"github.com/localnerve/drink-trail/internal/database"
	"github.com/localnerve/drink-trail/internal/handlers"
	"github.com/localnerve/drink-trail/internal/middleware"
	"github.com/localnerve/drink-trail/internal/services"
	"github.com/localnerve/drink-trail/internal/types"
	"github.com/localnerve/drink-trail/internal/utils"

	_ "github.com/localnerve/drink-trail/docs/api" // Swagger docs
)

// @title Drink Trail API
// @version 1.0.0
// @description Record trails, the locations visited on each and the drinks had there
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/drink-trail
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("drinktrail")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Session authentication is optional
	var auth fiber.Handler
	if cfg.AuthEnabled() {
		// The Authorizer client is initialized on the first authenticated request
		auth = middleware.AuthUser(services.NewAuthorizerValidator(cfg))
		log.Printf("Authorizer will be initialized on first authenticated request")
	} else {
		log.Printf("AUTHZ_URL not set, running without authentication")
	}

	handlers.RegisterRoutes(app, db, cfg, auth)

	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var fe *fiber.Error
	var ce *types.CustomError
	switch {
	case errors.As(err, &ce):
		code = ce.Code
		message = ce.Message
		errorType = ce.Type
	case errors.As(err, &fe):
		code = fe.Code
		message = fe.Message
	default:
		// Unexpected faults are logged, never shown
		log.Printf("Unhandled error on %s: %v", c.OriginalURL(), err)
		message = "Internal Server Error"
	}

	return utils.ErrorResponse(c, message, code, errorType)
}
