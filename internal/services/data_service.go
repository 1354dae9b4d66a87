// data_service.go
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

package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/localnerve/drink-trail/internal/models"
	"github.com/localnerve/drink-trail/internal/types"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// ItemsPerPage is the fixed trail listing page size
const ItemsPerPage = 6

// TrailWithLocationNames is a trail listing row
type TrailWithLocationNames struct {
	models.Trail
	LocationNames []string `json:"location_names"`
}

// TrailWithLocationsAndDrinkNames is a trail with the distinct location and
// drink names found across all of its locations
type TrailWithLocationsAndDrinkNames struct {
	models.Trail
	LocationNames []string `json:"location_names"`
	DrinkNames    []string `json:"drink_names"`
}

// DrinkView is a drink with its human facing category
type DrinkView struct {
	models.Drink
	CategoryLabel     string  `json:"category_label"`
	AlcoholPercentage float64 `json:"alcohol_percentage"`
}

// LocationWithDrinks is a timeline entry
type LocationWithDrinks struct {
	models.Location
	Drinks []DrinkView `json:"drinks"`
}

// FetchTrailByID returns the trail, or nil when it does not exist or is not owned by userID
func FetchTrailByID(ctx context.Context, db *gorm.DB, userID, id string) (*models.Trail, error) {
	trail, err := findTrail(ctx, db, userID, id)
	if err != nil {
		return nil, queryError("fetchTrailById", "Failed to fetch trail by ID.", err)
	}
	return trail, nil
}

// FetchFilteredTrails returns one page of trails whose name, description or
// creation date contains query, case insensitively, most recent first
func FetchFilteredTrails(ctx context.Context, db *gorm.DB, userID, query string, currentPage int) ([]TrailWithLocationNames, error) {
	if currentPage < 1 {
		currentPage = 1
	}
	offset := (currentPage - 1) * ItemsPerPage

	var trails []models.Trail
	q := quiet(db.WithContext(ctx)).
		Model(&models.Trail{}).
		Scopes(ownedBy(userID), matching(query))
	if db.Dialector.Name() == "mysql" {
		q = q.Clauses(hints.UseIndex("idx_trails_created_at").ForOrderBy())
	}
	err := q.Order("trails.created_at DESC").
		Order("trails.id").
		Limit(ItemsPerPage).
		Offset(offset).
		Find(&trails).Error
	if err != nil {
		return nil, queryError("fetchFilteredTrails", "Failed to fetch trails.", err)
	}

	results := make([]TrailWithLocationNames, len(trails))
	if len(trails) == 0 {
		return results, nil
	}

	ids := make([]string, len(trails))
	for i, trail := range trails {
		ids[i] = trail.ID
	}

	var rows []struct {
		TrailID string
		Name    string
	}
	err = quiet(db.WithContext(ctx)).
		Model(&models.Location{}).
		Select("trail_id, name").
		Where("trail_id IN ?", ids).
		Order("name").
		Scan(&rows).Error
	if err != nil {
		return nil, queryError("fetchFilteredTrails", "Failed to fetch trails.", err)
	}

	names := make(map[string][]string, len(trails))
	for _, row := range rows {
		names[row.TrailID] = append(names[row.TrailID], row.Name)
	}

	for i, trail := range trails {
		results[i] = TrailWithLocationNames{
			Trail:         trail,
			LocationNames: nonNil(names[trail.ID]),
		}
	}

	return results, nil
}

// FetchTrailsPages returns the number of listing pages for query
func FetchTrailsPages(ctx context.Context, db *gorm.DB, userID, query string) (int, error) {
	var count int64
	err := quiet(db.WithContext(ctx)).
		Model(&models.Trail{}).
		Scopes(ownedBy(userID), matching(query)).
		Count(&count).Error
	if err != nil {
		return 0, queryError("fetchTrailsPages", "Failed to fetch total number of trails.", err)
	}

	return int((count + ItemsPerPage - 1) / ItemsPerPage), nil
}

// FetchTrailWithLocationsAndDrinkNames returns the trail with sorted,
// de-duplicated location names and drink specific types, or nil when not found
func FetchTrailWithLocationsAndDrinkNames(ctx context.Context, db *gorm.DB, userID, id string) (*TrailWithLocationsAndDrinkNames, error) {
	const op, message = "fetchTrailWithLocationsAndDrinkNames", "Failed to fetch trail with locations and drinks."

	trail, err := findTrail(ctx, db, userID, id)
	if err != nil {
		return nil, queryError(op, message, err)
	}
	if trail == nil {
		return nil, nil
	}

	var locationNames []string
	err = quiet(db.WithContext(ctx)).
		Model(&models.Location{}).
		Distinct().
		Where("trail_id = ?", trail.ID).
		Order("name").
		Pluck("name", &locationNames).Error
	if err != nil {
		return nil, queryError(op, message, err)
	}

	var drinkNames []string
	err = quiet(db.WithContext(ctx)).
		Model(&models.Drink{}).
		Distinct().
		Joins("JOIN locations ON locations.id = drinks.location_id").
		Where("locations.trail_id = ?", trail.ID).
		Order("drinks.specific_type").
		Pluck("drinks.specific_type", &drinkNames).Error
	if err != nil {
		return nil, queryError(op, message, err)
	}

	return &TrailWithLocationsAndDrinkNames{
		Trail:         *trail,
		LocationNames: nonNil(locationNames),
		DrinkNames:    nonNil(drinkNames),
	}, nil
}

// FetchLocationByID returns the location, or nil when it does not exist
func FetchLocationByID(ctx context.Context, db *gorm.DB, id string) (*models.Location, error) {
	var location models.Location
	err := quiet(db.WithContext(ctx)).Where("id = ?", id).First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, queryError("fetchLocationById", "Failed to fetch location by ID.", err)
	}
	return &location, nil
}

// FetchDrinksByLocationID returns the drinks of a location in the order they were recorded
func FetchDrinksByLocationID(ctx context.Context, db *gorm.DB, locationID string) ([]DrinkView, error) {
	drinks, err := findDrinks(ctx, db, locationID)
	if err != nil {
		return nil, queryError("fetchDrinksByLocationId", "Failed to fetch drinks.", err)
	}
	return drinks, nil
}

// FetchLocationsWithDrinksByTrailID returns the trail's locations by name, each
// with its drinks. Drinks are fetched concurrently per location and any
// failure fails the whole call.
func FetchLocationsWithDrinksByTrailID(ctx context.Context, db *gorm.DB, trailID string) ([]LocationWithDrinks, error) {
	const op, message = "fetchLocationsWithDrinksByTrailId", "Failed to fetch locations with drinks."

	var locations []models.Location
	err := quiet(db.WithContext(ctx)).
		Where("trail_id = ?", trailID).
		Order("name").
		Order("id").
		Find(&locations).Error
	if err != nil {
		return nil, queryError(op, message, err)
	}

	results := make([]LocationWithDrinks, len(locations))
	g, gctx := errgroup.WithContext(ctx)
	for i, location := range locations {
		g.Go(func() error {
			drinks, err := findDrinks(gctx, db, location.ID)
			if err != nil {
				return err
			}
			results[i] = LocationWithDrinks{Location: location, Drinks: drinks}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, queryError(op, message, err)
	}

	return results, nil
}

func findTrail(ctx context.Context, db *gorm.DB, userID, id string) (*models.Trail, error) {
	var trail models.Trail
	err := quiet(db.WithContext(ctx)).
		Scopes(ownedBy(userID)).
		Where("trails.id = ?", id).
		First(&trail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trail, nil
}

func findDrinks(ctx context.Context, db *gorm.DB, locationID string) ([]DrinkView, error) {
	var drinks []models.Drink
	err := quiet(db.WithContext(ctx)).
		Where("location_id = ?", locationID).
		Order("created_at").
		Order("id").
		Find(&drinks).Error
	if err != nil {
		return nil, err
	}

	views := make([]DrinkView, len(drinks))
	for i, drink := range drinks {
		views[i] = DrinkView{
			Drink:             drink,
			CategoryLabel:     drink.Category.Label(),
			AlcoholPercentage: drink.Category.AlcoholPercentage(drink.SpecificType),
		}
	}
	return views, nil
}

// matching filters trails on a case insensitive substring of name,
// description or the textual creation date
func matching(query string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if query == "" {
			return db
		}
		pattern := "%" + strings.ToLower(query) + "%"
		createdAt := textOf(db, "trails.created_at")
		return db.Where(
			"(LOWER(trails.name) LIKE ? OR LOWER(trails.description) LIKE ? OR LOWER("+createdAt+") LIKE ?)",
			pattern, pattern, pattern,
		)
	}
}

// textOf casts a column to the dialect's text type
func textOf(db *gorm.DB, column string) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "CAST(" + column + " AS CHAR)"
	case "sqlserver":
		return "CAST(" + column + " AS NVARCHAR(MAX))"
	}
	return "CAST(" + column + " AS TEXT)"
}

func quiet(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func queryError(op, message string, err error) error {
	log.Printf("Database Error: %s: %v", op, err)
	return &types.QueryError{Op: op, Message: message, Err: err}
}
