// trails.go
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
	"github.com/localnerve/drink-trail/internal/services"
	"github.com/localnerve/drink-trail/internal/utils"
	"gorm.io/gorm"
)

// TrailHandler handles trail routes
type TrailHandler struct {
	DB *gorm.DB
}

// TrailsPage is one page of the trail listing
type TrailsPage struct {
	Trails      []services.TrailWithLocationNames `json:"trails"`
	TotalPages  int                               `json:"totalPages"`
	CurrentPage int                               `json:"currentPage"`
}

// GetTrails handles GET /api/trails?query=&page=
// @Summary List trails
// @Description Page through trails matching query on name, description or creation date, most recent first
// @Tags Trails
// @Produce json
// @Param query query string false "Case insensitive search text"
// @Param page query int false "Page number, from 1"
// @Success 200 {object} TrailsPage
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /trails [get]
func (h *TrailHandler) GetTrails(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	query := c.Query("query")
	page := parsePage(c)

	totalPages, err := services.FetchTrailsPages(c.UserContext(), h.DB, userID, query)
	if err != nil {
		return queryErrorResponse(c, err)
	}

	trails, err := services.FetchFilteredTrails(c.UserContext(), h.DB, userID, query, page)
	if err != nil {
		return queryErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(TrailsPage{
		Trails:      trails,
		TotalPages:  totalPages,
		CurrentPage: page,
	})
}

// GetTrail handles GET /api/trails/:trail_id
// @Summary Get a trail
// @Description Get a trail with the distinct names of its locations and drinks
// @Tags Trails
// @Produce json
// @Param trail_id path string true "Trail ID"
// @Success 200 {object} services.TrailWithLocationsAndDrinkNames
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /trails/{trail_id} [get]
func (h *TrailHandler) GetTrail(c *fiber.Ctx) error {
	trailID := c.Params("trail_id")

	trail, err := services.FetchTrailWithLocationsAndDrinkNames(c.UserContext(), h.DB, middleware.UserID(c), trailID)
	if err != nil {
		return queryErrorResponse(c, err)
	}
	if trail == nil {
		return utils.NotFoundResponse(c, fmt.Sprintf("Trail '%s' not found", trailID))
	}

	return c.Status(fiber.StatusOK).JSON(trail)
}

// CreateTrail handles POST /api/trails
// @Summary Create a trail
// @Tags Trails
// @Accept json,x-www-form-urlencoded,mpfd
// @Produce json
// @Param name formData string true "Trail name"
// @Param description formData string true "Trail description"
// @Success 201 {object} actions.ActionState
// @Failure 422 {object} actions.ActionState
// @Failure 500 {object} actions.ActionState
// @Router /trails [post]
func (h *TrailHandler) CreateTrail(c *fiber.Ctx) error {
	form, err := parseForm(c)
	if err != nil {
		return badFormResponse(c, err)
	}

	state := actions.CreateTrail(c.UserContext(), h.DB, middleware.UserID(c), form)
	return actionResponse(c, state, fiber.StatusCreated)
}

// UpdateTrail handles POST /api/trails/:trail_id
// @Summary Update a trail
// @Tags Trails
// @Accept json,x-www-form-urlencoded,mpfd
// @Produce json
// @Param trail_id path string true "Trail ID"
// @Param name formData string true "Trail name"
// @Param description formData string true "Trail description"
// @Success 200 {object} actions.ActionState
// @Failure 422 {object} actions.ActionState
// @Failure 500 {object} actions.ActionState
// @Router /trails/{trail_id} [post]
func (h *TrailHandler) UpdateTrail(c *fiber.Ctx) error {
	form, err := parseForm(c)
	if err != nil {
		return badFormResponse(c, err)
	}

	state := actions.UpdateTrail(c.UserContext(), h.DB, middleware.UserID(c), c.Params("trail_id"), form)
	return actionResponse(c, state, fiber.StatusOK)
}

// DeleteTrail handles DELETE /api/trails/:trail_id
// @Summary Delete a trail
// @Description Delete a trail with all of its locations and drinks
// @Tags Trails
// @Produce json
// @Param trail_id path string true "Trail ID"
// @Success 200 {object} actions.ActionState
// @Failure 422 {object} actions.ActionState
// @Failure 500 {object} actions.ActionState
// @Router /trails/{trail_id} [delete]
func (h *TrailHandler) DeleteTrail(c *fiber.Ctx) error {
	state := actions.DeleteTrail(c.UserContext(), h.DB, middleware.UserID(c), c.Params("trail_id"))
	return actionResponse(c, state, fiber.StatusOK)
}
