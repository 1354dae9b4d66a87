// common.go
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
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/drink-trail/internal/actions"
	"github.com/localnerve/drink-trail/internal/types"
	"github.com/localnerve/drink-trail/internal/utils"
)

// parseForm reads a flat form submission from a JSON, urlencoded or
// multipart body. An empty body is an empty form.
func parseForm(c *fiber.Ctx) (actions.FormData, error) {
	form := actions.FormData{}

	if len(c.Body()) == 0 {
		return form, nil
	}

	switch {
	case c.Is("json"):
		if err := c.BodyParser(&form); err != nil {
			return nil, err
		}

	case strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm):
		multipart, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		for key, values := range multipart.Value {
			if len(values) > 0 {
				form[key] = values[0]
			}
		}

	default:
		c.Request().PostArgs().VisitAll(func(key, value []byte) {
			// First value wins for repeated keys
			if _, ok := form[string(key)]; !ok {
				form[string(key)] = string(value)
			}
		})
	}

	return form, nil
}

// withDefault fills an absent form field, typically from a path parameter
func withDefault(form actions.FormData, key, value string) {
	if form.String(key) == "" && value != "" {
		form[key] = value
	}
}

// parsePage reads the page query parameter, defaulting to 1
func parsePage(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// actionResponse renders a Write Pipeline result. A committed write carries
// the path to re-read in the Location header and is never cached.
func actionResponse(c *fiber.Ctx, state actions.ActionState, successStatus int) error {
	c.Set(fiber.HeaderCacheControl, "no-store")

	switch state.Status {
	case actions.StatusCommitted:
		if state.Redirect != "" {
			c.Location(state.Redirect)
		}
		return c.Status(successStatus).JSON(state)
	case actions.StatusRejected:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(state)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(state)
}

// queryErrorResponse renders a read fault without exposing its cause
func queryErrorResponse(c *fiber.Ctx, err error) error {
	var qe *types.QueryError
	if errors.As(err, &qe) {
		return utils.ErrorResponse(c, qe.Message, fiber.StatusInternalServerError, qe.Op)
	}
	return utils.ErrorResponse(c, "Internal Server Error", fiber.StatusInternalServerError, "server")
}

func badFormResponse(c *fiber.Ctx, err error) error {
	return utils.ErrorResponse(c, "Unreadable form submission: "+err.Error(), fiber.StatusBadRequest, "form")
}
