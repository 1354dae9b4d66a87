// user_service.go
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
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/localnerve/drink-trail/internal/models"
	"github.com/localnerve/drink-trail/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordCost = 10

// CreateUser stores a user with a bcrypt hash of password.
// A duplicate email is a types.ErrConstraintViolation.
func CreateUser(ctx context.Context, db *gorm.DB, id, name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("user name, email and password are required: %w", types.ErrConstraintViolation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       id,
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, translateWriteError(err)
	}

	return &user, nil
}

// FindUserByEmail returns the user, or nil when none has the email
func FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := quiet(db.WithContext(ctx)).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// CheckPassword reports whether password matches the user's stored hash
func CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

// SeedUser is one entry of a user seed file
type SeedUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SeedUsers creates the users of a JSON seed list, skipping emails that
// already exist. Returns how many were created.
func SeedUsers(ctx context.Context, db *gorm.DB, seed []byte) (int, error) {
	var users []SeedUser
	if err := json.Unmarshal(seed, &users); err != nil {
		return 0, fmt.Errorf("failed to parse user seed: %w", err)
	}

	created := 0
	for _, u := range users {
		existing, err := FindUserByEmail(ctx, db, u.Email)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}
		if _, err := CreateUser(ctx, db, u.ID, u.Name, u.Email, u.Password); err != nil {
			return created, fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
		created++
	}

	return created, nil
}
