// drink.go
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
	"strings"

	"github.com/localnerve/drink-trail/internal/models"
	"github.com/localnerve/drink-trail/internal/services"
	"github.com/localnerve/drink-trail/internal/types"
	"gorm.io/gorm"
)

type drinkForm struct {
	LocationID string `form:"location_id" validate:"required"`
	Category   string `form:"type" validate:"required,drink_category"`
	Size       string `form:"size" validate:"required,drink_size"`
}

var drinkMessages = map[string]string{
	"location_id": "Please select a location.",
	"type":        "Please select a drink type.",
	"size":        "Please select a drink size.",
}

// LocationPath is the presentation path of one location and its drinks
func LocationPath(trailID, locationID string) string {
	return LocationsPath(trailID) + "/" + locationID
}

// specificType reads the specific type from the one form field the category
// selects. Fields of the other categories are never read or reported.
func specificType(category models.DrinkCategory, form FormData) (string, string, []string) {
	field := category.SourceField()
	value := form.String(field)
	kind := strings.ToLower(category.Label())

	if err := validate.Var(value, "required"); err != nil {
		return field, value, []string{"Please select a " + kind + " type."}
	}
	if !category.HasType(value) {
		return field, value, []string{"Please select a valid " + kind + " type."}
	}
	return field, value, nil
}

// CreateDrink validates and inserts a drink. The type field selects which of
// beerType, cocktailType or softDrinkType carries the specific type.
func CreateDrink(ctx context.Context, db *gorm.DB, userID string, form FormData) ActionState {
	schema := drinkForm{
		LocationID: form.String("location_id"),
		Category:   form.String("type"),
		Size:       form.String("size"),
	}
	errs := fieldErrors(schema, drinkMessages)

	category := models.DrinkCategory(schema.Category)
	var specific string
	if _, invalid := errs["type"]; !invalid {
		var field string
		var messages []string
		field, specific, messages = specificType(category, form)
		if len(messages) > 0 {
			errs[field] = messages
		}
	}

	if len(errs) > 0 {
		return rejected(errs, "Missing Fields. Failed to Create Drink.")
	}

	location, err := services.FetchLocationByID(ctx, db, schema.LocationID)
	if err != nil {
		return failed("Database Error: Failed to Create Drink.")
	}
	if location == nil {
		return rejected(map[string][]string{
			"location_id": {"Location not found."},
		}, "Invalid Location. Failed to Create Drink.")
	}
	if trailID := form.String("trail_id"); trailID != "" && trailID != location.TrailID {
		return rejected(map[string][]string{
			"location_id": {"Location does not belong to this trail."},
		}, "Invalid Location. Failed to Create Drink.")
	}
	if userID != "" {
		trail, err := services.FetchTrailByID(ctx, db, userID, location.TrailID)
		if err != nil {
			return failed("Database Error: Failed to Create Drink.")
		}
		if trail == nil {
			return rejected(map[string][]string{
				"location_id": {"Location not found."},
			}, "Invalid Location. Failed to Create Drink.")
		}
	}

	isAlcoholic := types.ParseFlexBool(form["isAlcoholic"]).Bool()
	if category == models.CategorySoftDrink {
		isAlcoholic = false
	}

	id, err := services.InsertDrink(ctx, db, services.DrinkInput{
		LocationID:   location.ID,
		Category:     category,
		SpecificType: specific,
		Size:         models.DrinkSize(schema.Size),
		IsAlcoholic:  isAlcoholic,
	})
	if err != nil {
		log.Printf("createDrink: %v", err)
		return failed("Database Error: Failed to Create Drink.")
	}

	return committed(id, LocationPath(location.TrailID, location.ID), "Added Drink.")
}
