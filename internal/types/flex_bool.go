// flex_bool.go
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

package types

import "strings"

// FlexBool is a checkbox value read from a form or a decoded JSON body.
// true, "on", "true", "1", "yes" and non-zero numbers are true; anything
// else, including absence, is false.
type FlexBool bool

func (f FlexBool) Bool() bool {
	return bool(f)
}

// ParseFlexBool converts an arbitrary form value into a FlexBool
func ParseFlexBool(value interface{}) FlexBool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return FlexBool(v)
	case FlexBool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "on", "true", "1", "yes", "checked":
			return true
		}
		return false
	case []string:
		if len(v) == 0 {
			return false
		}
		return ParseFlexBool(v[0])
	case float64:
		return FlexBool(v != 0)
	case int:
		return FlexBool(v != 0)
	}
	return false
}
