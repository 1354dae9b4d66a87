// trail.go
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

package actions

import (
	"context"
	"errors"
	"log"

	"github.com/localnerve/drink-trail/internal/services"
	"gorm.io/gorm"
)

type trailForm struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description" validate:"required"`
}

var trailMessages = map[string]string{
	"name":        "Please enter a trail name.",
	"description": "Please enter a trail description.",
}

func parseTrailForm(form FormData) (trailForm, map[string][]string) {
	schema := trailForm{
		Name:        form.String("name"),
		Description: form.String("description"),
	}
	return schema, fieldErrors(schema, trailMessages)
}

// TrailPath is the presentation path of a trail
func TrailPath(trailID string) string {
	return "/api/trails/" + trailID
}

// CreateTrail validates and inserts a trail owned by userID
func CreateTrail(ctx context.Context, db *gorm.DB, userID string, form FormData) ActionState {
	schema, errs := parseTrailForm(form)
	if len(errs) > 0 {
		return rejected(errs, "Missing Fields. Failed to Create Trail.")
	}

	id, err := services.InsertTrail(ctx, db, userID, schema.Name, schema.Description)
	if err != nil {
		log.Printf("createTrail: %v", err)
		return failed("Database Error: Failed to Create Trail.")
	}

	return committed(id, TrailPath(id), "Created Trail.")
}

// UpdateTrail validates and replaces the name and description of trail id
func UpdateTrail(ctx context.Context, db *gorm.DB, userID, id string, form FormData) ActionState {
	schema, errs := parseTrailForm(form)
	if len(errs) > 0 {
		return rejected(errs, "Missing Fields. Failed to Update Trail.")
	}

	err := services.UpdateTrail(ctx, db, userID, id, schema.Name, schema.Description)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rejected(map[string][]string{
				"id": {"Trail not found."},
			}, "Invalid Trail. Failed to Update Trail.")
		}
		log.Printf("updateTrail: %v", err)
		return failed("Database Error: Failed to Update Trail.")
	}

	return committed(id, TrailPath(id), "Updated Trail.")
}

// DeleteTrail removes trail id with its locations and drinks
func DeleteTrail(ctx context.Context, db *gorm.DB, userID, id string) ActionState {
	affected, err := services.DeleteTrail(ctx, db, userID, id)
	if err != nil {
		log.Printf("deleteTrail: %v", err)
		return failed("Database Error: Failed to Delete Trail.")
	}
	if affected == 0 {
		return rejected(map[string][]string{
			"id": {"Trail not found."},
		}, "Invalid Trail. Failed to Delete Trail.")
	}

	return committed(id, "/api/trails", "Deleted Trail.")
}
