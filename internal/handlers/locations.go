// locations.go
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
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/drink-trail/internal/actions"
	"github.com/localnerve/drink-trail/internal/middleware"
	"github.com/localnerve/drink-trail/internal/models"
	"github.com/localnerve/drink-trail/internal/services"
	"github.com/localnerve/drink-trail/internal/utils"
	"gorm.io/gorm"
)

// LocationHandler handles location and drink routes
type LocationHandler struct {
	DB *gorm.DB
}

// Timeline is a trail with its locations and their drinks
type Timeline struct {
	Trail     *models.Trail                 `json:"trail"`
	Locations []services.LocationWithDrinks `json:"locations"`
}

// LocationDrinks is a location with its drinks
type LocationDrinks struct {
	Location *models.Location     `json:"location"`
	Drinks   []services.DrinkView `json:"drinks"`
}

// GetLocations handles GET /api/trails/:trail_id/locations
// @Summary Get a trail timeline
// @Description Get the locations of a trail by name, each with its drinks
// @Tags Locations
// @Produce json
// @Param trail_id path string true "Trail ID"
// @Success 200 {object} Timeline
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /trails/{trail_id}/locations [get]
func (h *LocationHandler) GetLocations(c *fiber.Ctx) error {
	trailID := c.Params("trail_id")

	trail, err := services.FetchTrailByID(c.UserContext(), h.DB, middleware.UserID(c), trailID)
	if err != nil {
		return queryErrorResponse(c, err)
	}
	if trail == nil {
		return utils.NotFoundResponse(c, fmt.Sprintf("Trail '%s' not found", trailID))
	}

	locations, err := services.FetchLocationsWithDrinksByTrailID(c.UserContext(), h.DB, trail.ID)
	if err != nil {
		return queryErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(Timeline{
		Trail:     trail,
		Locations: locations,
	})
}

// GetLocation handles GET /api/trails/:trail_id/locations/:location_id
// @Summary Get a location
// @Description Get a location with the drinks recorded there
// @Tags Locations
// @Produce json
// @Param trail_id path string true "Trail ID"
// @Param location_id path string true "Location ID"
// @Success 200 {object} LocationDrinks
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /trails/{trail_id}/locations/{location_id} [get]
func (h *LocationHandler) GetLocation(c *fiber.Ctx) error {
	trailID := c.Params("trail_id")
	locationID := c.Params("location_id")
	notFound := fmt.Sprintf("Location '%s' not found on trail '%s'", locationID, trailID)

	trail, err := services.FetchTrailByID(c.UserContext(), h.DB, middleware.UserID(c), trailID)
	if err != nil {
		return queryErrorResponse(c, err)
	}
	if trail == nil {
		return utils.NotFoundResponse(c, notFound)
	}

	location, err := services.FetchLocationByID(c.UserContext(), h.DB, locationID)
	if err != nil {
		return queryErrorResponse(c, err)
	}
	if location == nil || location.TrailID != trail.ID {
		return utils.NotFoundResponse(c, notFound)
	}

	drinks, err := services.FetchDrinksByLocationID(c.UserContext(), h.DB, location.ID)
	if err != nil {
		return queryErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(LocationDrinks{
		Location: location,
		Drinks:   drinks,
	})
}

// CreateLocation handles POST /api/trails/:trail_id/locations
// @Summary Add a location to a trail
// @Tags Locations
// @Accept json,x-www-form-urlencoded,mpfd
// @Produce json
// @Param trail_id path string true "Trail ID"
// @Param name formData string true "Location name"
// @Success 201 {object} actions.ActionState
// @Failure 422 {object} actions.ActionState
// @Failure 500 {object} actions.ActionState
// @Router /trails/{trail_id}/locations [post]
func (h *LocationHandler) CreateLocation(c *fiber.Ctx) error {
	form, err := parseForm(c)
	if err != nil {
		return badFormResponse(c, err)
	}
	withDefault(form, "trail_id", c.Params("trail_id"))

	state := actions.CreateLocation(c.UserContext(), h.DB, middleware.UserID(c), form)
	return actionResponse(c, state, fiber.StatusCreated)
}

// CreateDrink handles POST /api/trails/:trail_id/locations/:location_id/drinks
// @Summary Add a drink to a location
// @Description The type field selects which of beerType, cocktailType or softDrinkType is read
// @Tags Drinks
// @Accept json,x-www-form-urlencoded,mpfd
// @Produce json
// @Param trail_id path string true "Trail ID"
// @Param location_id path string true "Location ID"
// @Param type formData string true "Drink category" Enums(beer, cocktail, soft-drink)
// @Param beerType formData string false "Beer name, when type is beer"
// @Param cocktailType formData string false "Cocktail name, when type is cocktail"
// @Param softDrinkType formData string false "Soft drink name, when type is soft-drink"
// @Param size formData string true "Drink size" Enums(0.2L, 0.33L, 0.5L, 1L)
// @Param isAlcoholic formData string false "Checkbox value, on or true"
// @Success 201 {object} actions.ActionState
// @Failure 422 {object} actions.ActionState
// @Failure 500 {object} actions.ActionState
// @Router /trails/{trail_id}/locations/{location_id}/drinks [post]
func (h *LocationHandler) CreateDrink(c *fiber.Ctx) error {
	form, err := parseForm(c)
	if err != nil {
		return badFormResponse(c, err)
	}
	withDefault(form, "trail_id", c.Params("trail_id"))
	withDefault(form, "location_id", c.Params("location_id"))

	state := actions.CreateDrink(c.UserContext(), h.DB, middleware.UserID(c), form)
	return actionResponse(c, state, fiber.StatusCreated)
}
