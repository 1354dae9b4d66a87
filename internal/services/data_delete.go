// data_delete.go
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

	"github.com/localnerve/drink-trail/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// DeleteTrail deletes a trail with its locations and their drinks.
// The cascade is performed explicitly in one transaction so it holds even
// where the dialect does not enforce the ON DELETE CASCADE foreign keys.
// Returns the total number of rows removed, zero when the trail was not found.
func DeleteTrail(ctx context.Context, db *gorm.DB, userID, id string) (int64, error) {
	var affectedRows int64

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quiet := tx.Session(&gorm.Session{Logger: tx.Logger.LogMode(logger.Silent)})

		// Lock the trail row
		var trail models.Trail
		result := quiet.Clauses(clause.Locking{Strength: "UPDATE"}).
			Scopes(ownedBy(userID)).
			Where("id = ?", id).
			Limit(1).
			Find(&trail)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		locationIDs := tx.Model(&models.Location{}).Select("id").Where("trail_id = ?", trail.ID)

		drinks := tx.Where("location_id IN (?)", locationIDs).Delete(&models.Drink{})
		if drinks.Error != nil {
			return drinks.Error
		}

		locations := tx.Where("trail_id = ?", trail.ID).Delete(&models.Location{})
		if locations.Error != nil {
			return locations.Error
		}

		trails := tx.Where("id = ?", trail.ID).Delete(&models.Trail{})
		if trails.Error != nil {
			return trails.Error
		}

		affectedRows = drinks.RowsAffected + locations.RowsAffected + trails.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	return affectedRows, nil
}
