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

package services

import (
	"context"

	"github.com/localnerve/drink-trail/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// DashboardCounts are the overview totals
type DashboardCounts struct {
	Trails             int64 `json:"trails"`
	Locations          int64 `json:"locations"`
	AlcoholicDrinks    int64 `json:"alcoholic_drinks"`
	NonAlcoholicDrinks int64 `json:"non_alcoholic_drinks"`
}

// FetchDashboardCounts counts trails, locations and drinks visible to userID
func FetchDashboardCounts(ctx context.Context, db *gorm.DB, userID string) (*DashboardCounts, error) {
	var counts DashboardCounts

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return quiet(db.WithContext(gctx)).
			Model(&models.Trail{}).
			Scopes(ownedBy(userID)).
			Count(&counts.Trails).Error
	})
	g.Go(func() error {
		return quiet(db.WithContext(gctx)).
			Model(&models.Location{}).
			Joins("JOIN trails ON trails.id = locations.trail_id").
			Scopes(ownedBy(userID)).
			Count(&counts.Locations).Error
	})
	g.Go(func() error {
		return countDrinks(gctx, db, userID, true, &counts.AlcoholicDrinks)
	})
	g.Go(func() error {
		return countDrinks(gctx, db, userID, false, &counts.NonAlcoholicDrinks)
	})
	if err := g.Wait(); err != nil {
		return nil, queryError("fetchDashboardCounts", "Failed to fetch dashboard counts.", err)
	}

	return &counts, nil
}

func countDrinks(ctx context.Context, db *gorm.DB, userID string, alcoholic bool, count *int64) error {
	return quiet(db.WithContext(ctx)).
		Model(&models.Drink{}).
		Joins("JOIN locations ON locations.id = drinks.location_id").
		Joins("JOIN trails ON trails.id = locations.trail_id").
		Scopes(ownedBy(userID)).
		Where("drinks.is_alcoholic = ?", alcoholic).
		Count(count).Error
}
