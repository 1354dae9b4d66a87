// store.go
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
	"fmt"
	"strings"

	"github.com/localnerve/drink-trail/internal/models"
	"github.com/localnerve/drink-trail/internal/types"
	"gorm.io/gorm"
)

// DrinkInput carries the already validated fields of a new drink
type DrinkInput struct {
	LocationID   string
	Category     models.DrinkCategory
	SpecificType string
	Size         models.DrinkSize
	IsAlcoholic  bool
}

// InsertTrail creates a trail owned by userID (empty for no owner) and returns its id
func InsertTrail(ctx context.Context, db *gorm.DB, userID, name, description string) (string, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return "", fmt.Errorf("trail name and description are required: %w", types.ErrConstraintViolation)
	}

	trail := models.Trail{
		UserID:      ownerPtr(userID),
		Name:        name,
		Description: description,
	}
	if err := db.WithContext(ctx).Create(&trail).Error; err != nil {
		return "", translateWriteError(err)
	}

	return trail.ID, nil
}

// UpdateTrail replaces the name and description of an existing trail.
// Returns gorm.ErrRecordNotFound when no trail matched.
func UpdateTrail(ctx context.Context, db *gorm.DB, userID, id, name, description string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return fmt.Errorf("trail name and description are required: %w", types.ErrConstraintViolation)
	}

	result := db.WithContext(ctx).
		Model(&models.Trail{}).
		Scopes(ownedBy(userID)).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        name,
			"description": description,
		})
	if result.Error != nil {
		return translateWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		// MySQL reports zero affected rows when the values are unchanged
		var count int64
		if err := db.WithContext(ctx).Model(&models.Trail{}).Scopes(ownedBy(userID)).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}

	return nil
}

// InsertLocation creates a location under trailID and returns its id
func InsertLocation(ctx context.Context, db *gorm.DB, trailID, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("location name is required: %w", types.ErrConstraintViolation)
	}

	location := models.Location{
		TrailID: trailID,
		Name:    name,
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Not every dialect enforces foreign keys, check the parent explicitly
		exists, err := rowExists(tx, &models.Trail{}, trailID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("trail %s does not exist: %w", trailID, types.ErrForeignKeyViolation)
		}
		return tx.Create(&location).Error
	})
	if err != nil {
		return "", translateWriteError(err)
	}

	return location.ID, nil
}

// InsertDrink creates a drink under input.LocationID and returns its id
func InsertDrink(ctx context.Context, db *gorm.DB, input DrinkInput) (string, error) {
	if !input.Category.Valid() || !input.Size.Valid() || strings.TrimSpace(input.SpecificType) == "" {
		return "", fmt.Errorf("drink category, size and specific type are required: %w", types.ErrConstraintViolation)
	}

	drink := models.Drink{
		LocationID:   input.LocationID,
		Category:     input.Category,
		SpecificType: input.SpecificType,
		Size:         input.Size,
		IsAlcoholic:  input.IsAlcoholic && input.Category != models.CategorySoftDrink,
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := rowExists(tx, &models.Location{}, input.LocationID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("location %s does not exist: %w", input.LocationID, types.ErrForeignKeyViolation)
		}
		return tx.Create(&drink).Error
	})
	if err != nil {
		return "", translateWriteError(err)
	}

	return drink.ID, nil
}

func ownerPtr(userID string) *string {
	if userID == "" {
		return nil
	}
	return &userID
}

// ownedBy limits trail queries to one owner. An empty userID is unscoped.
func ownedBy(userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if userID == "" {
			return db
		}
		return db.Where("trails.user_id = ?", userID)
	}
}

func rowExists(tx *gorm.DB, model interface{}, id string) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// translateWriteError maps driver errors, translated by gorm, onto the store
// error taxonomy
func translateWriteError(err error) error {
	switch {
	case errors.Is(err, types.ErrForeignKeyViolation), errors.Is(err, types.ErrConstraintViolation):
		return err
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%v: %w", err, types.ErrForeignKeyViolation)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%v: %w", err, types.ErrConstraintViolation)
	}
	return err
}
