// location.go
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
	"log"

	"github.com/localnerve/drink-trail/internal/services"
	"gorm.io/gorm"
)

type locationForm struct {
	TrailID string `form:"trail_id" validate:"required"`
	Name    string `form:"name" validate:"required"`
}

var locationMessages = map[string]string{
	"trail_id": "Please select a trail.",
	"name":     "Please enter a location name.",
}

// LocationsPath is the presentation path of a trail's timeline
func LocationsPath(trailID string) string {
	return TrailPath(trailID) + "/locations"
}

// CreateLocation validates and inserts a location under the submitted
// trail_id, which must exist and belong to userID
func CreateLocation(ctx context.Context, db *gorm.DB, userID string, form FormData) ActionState {
	schema := locationForm{
		TrailID: form.String("trail_id"),
		Name:    form.String("name"),
	}
	if errs := fieldErrors(schema, locationMessages); len(errs) > 0 {
		return rejected(errs, "Missing Fields. Failed to Create Location.")
	}

	trail, err := services.FetchTrailByID(ctx, db, userID, schema.TrailID)
	if err != nil {
		return failed("Database Error: Failed to Create Location.")
	}
	if trail == nil {
		return rejected(map[string][]string{
			"trail_id": {"Trail not found."},
		}, "Invalid Trail. Failed to Create Location.")
	}

	id, err := services.InsertLocation(ctx, db, trail.ID, schema.Name)
	if err != nil {
		log.Printf("createLocation: %v", err)
		return failed("Database Error: Failed to Create Location.")
	}

	return committed(id, LocationsPath(trail.ID), "Created Location.")
}
