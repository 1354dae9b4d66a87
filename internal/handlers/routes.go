package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/drink-trail/internal/config"
	"gorm.io/gorm"
)

// RegisterRoutes mounts the health route on app and the data routes under
// /api. Every /api route runs behind auth when it is not nil.
func RegisterRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, auth fiber.Handler) {
	dashboardHandler := &DashboardHandler{DB: db, Config: cfg}
	trailHandler := &TrailHandler{DB: db}
	locationHandler := &LocationHandler{DB: db}

	app.Get("/healthz", dashboardHandler.Health)

	api := app.Group("/api")
	if auth != nil {
		api.Use(auth)
	}

	api.Get("/dashboard", dashboardHandler.GetDashboard)
	api.Get("/vocabulary", dashboardHandler.GetVocabulary)

	// Trails
	api.Get("/trails", trailHandler.GetTrails)
	api.Post("/trails", trailHandler.CreateTrail)
	api.Get("/trails/:trail_id", trailHandler.GetTrail)
	api.Post("/trails/:trail_id", trailHandler.UpdateTrail)
	api.Delete("/trails/:trail_id", trailHandler.DeleteTrail)

	// Locations and drinks
	api.Get("/trails/:trail_id/locations", locationHandler.GetLocations)
	api.Post("/trails/:trail_id/locations", locationHandler.CreateLocation)
	api.Get("/trails/:trail_id/locations/:location_id", locationHandler.GetLocation)
	api.Post("/trails/:trail_id/locations/:location_id/drinks", locationHandler.CreateDrink)
}
