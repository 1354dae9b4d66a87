// dashboard.go
//
// Drink Trail, a dashboard service for recording trails, locations and drinks
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of drink-trail.
// drink-trail is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// drink-trail is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with drink-trail.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/drink-trail/internal/config"
	"github.com/localnerve/drink-trail/internal/middleware"
	"github.com/localnerve/drink-trail/internal/models"
	"github.com/localnerve/drink-trail/internal/services"
	"gorm.io/gorm"
)

// DashboardHandler handles the overview, vocabulary and health routes
type DashboardHandler struct {
	DB     *gorm.DB
	Config *config.Config
}

// CategoryVocabulary describes one drink category and the form field that
// carries its specific type
type CategoryVocabulary struct {
	Value models.DrinkCategory `json:"value"`
	Label string               `json:"label"`
	Field string               `json:"field"`
	Types []string             `json:"types"`
}

// Vocabulary is everything a drink form needs to render its choices
type Vocabulary struct {
	Categories []CategoryVocabulary `json:"categories"`
	Sizes      []models.DrinkSize   `json:"sizes"`
}

// GetDashboard handles GET /api/dashboard
// @Summary Get overview counts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} services.DashboardCounts
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	counts, err := services.FetchDashboardCounts(c.UserContext(), h.DB, middleware.UserID(c))
	if err != nil {
		return queryErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(counts)
}

// GetVocabulary handles GET /api/vocabulary
// @Summary Get the drink vocabulary
// @Tags Dashboard
// @Produce json
// @Success 200 {object} Vocabulary
// @Router /vocabulary [get]
func (h *DashboardHandler) GetVocabulary(c *fiber.Ctx) error {
	vocabulary := Vocabulary{
		Categories: make([]CategoryVocabulary, 0, len(models.DrinkCategories)),
		Sizes:      models.DrinkSizes,
	}
	for _, category := range models.DrinkCategories {
		vocabulary.Categories = append(vocabulary.Categories, CategoryVocabulary{
			Value: category,
			Label: category.Label(),
			Field: category.SourceField(),
			Types: category.Types(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(vocabulary)
}

// Health handles GET /healthz
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /healthz [get]
func (h *DashboardHandler) Health(c *fiber.Ctx) error {
	result := services.HealthCheck(c.UserContext(), h.Config, h.DB)

	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
