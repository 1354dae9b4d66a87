// validate.go
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
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/localnerve/drink-trail/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their form name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	must(v.RegisterValidation("drink_category", func(fl validator.FieldLevel) bool {
		return models.DrinkCategory(fl.Field().String()).Valid()
	}))
	must(v.RegisterValidation("drink_size", func(fl validator.FieldLevel) bool {
		return models.DrinkSize(fl.Field().String()).Valid()
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// fieldErrors validates schema and returns the failures keyed by form field.
// messages maps a form field to its user facing message.
func fieldErrors(schema interface{}, messages map[string]string) map[string][]string {
	errs := map[string][]string{}

	err := validate.Struct(schema)
	if err == nil {
		return errs
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["_form"] = []string{err.Error()}
		return errs
	}

	for _, fe := range validationErrors {
		message, ok := messages[fe.Field()]
		if !ok {
			message = fe.Error()
		}
		errs[fe.Field()] = append(errs[fe.Field()], message)
	}
	return errs
}
