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

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Trail represents a recorded outing that groups the locations visited
type Trail struct {
	ID          string         `gorm:"type:char(36);primaryKey" json:"id"`
	UserID      *string        `gorm:"type:char(36);index" json:"user_id,omitempty"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"size:255;not null" json:"description"`
	CreatedAt   datatypes.Date `gorm:"not null;index:idx_trails_created_at" json:"created_at"`
	Locations   []Location     `gorm:"foreignKey:TrailID;constraint:OnDelete:CASCADE" json:"-"`
}

// Location represents a place visited during a trail
type Location struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	TrailID   string    `gorm:"type:char(36);not null;index" json:"trail_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Drinks    []Drink   `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"-"`
}

// Drink represents one beverage consumed at a location
type Drink struct {
	ID           string        `gorm:"type:char(36);primaryKey" json:"id"`
	LocationID   string        `gorm:"type:char(36);not null;index" json:"location_id"`
	Category     DrinkCategory `gorm:"size:20;not null" json:"category"`
	SpecificType string        `gorm:"size:50;not null" json:"specific_type"`
	Size         DrinkSize     `gorm:"size:10;not null" json:"size"`
	IsAlcoholic  bool          `gorm:"not null;default:false" json:"is_alcoholic"`
	CreatedAt    time.Time     `json:"created_at"`
}

func (Trail) TableName() string {
	return "trails"
}

func (Location) TableName() string {
	return "locations"
}

func (Drink) TableName() string {
	return "drinks"
}

// BeforeCreate assigns the id and the creation date. The date is always the
// store's, a caller supplied value is overwritten.
func (t *Trail) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt = datatypes.Date(time.Now().UTC())
	return nil
}

func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = time.Now().UTC()
	return nil
}

// BeforeCreate also enforces that soft drinks are never stored as alcoholic
func (d *Drink) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Category == CategorySoftDrink {
		d.IsAlcoholic = false
	}
	d.CreatedAt = time.Now().UTC()
	return nil
}
