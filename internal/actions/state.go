// state.go
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
	"fmt"
	"strings"
)

// Status is the terminal outcome of one form submission
type Status string

const (
	StatusCommitted Status = "committed"
	StatusRejected  Status = "rejected"
	StatusFailed    Status = "failed"
)

// FormData is a flat submission of field name to string or boolean-ish value
type FormData map[string]interface{}

// String returns the trimmed string form of a field, empty when absent
func (f FormData) String(key string) string {
	switch v := f[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []string:
		if len(v) == 0 {
			return ""
		}
		return strings.TrimSpace(v[0])
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// ActionState is the result of a Write Pipeline operation. Errors is keyed
// by form field name.
type ActionState struct {
	Status   Status              `json:"status"`
	Errors   map[string][]string `json:"errors"`
	Message  *string             `json:"message"`
	ID       string              `json:"id,omitempty"`
	Redirect string              `json:"redirect,omitempty"`
}

func (s ActionState) OK() bool {
	return s.Status == StatusCommitted
}

func committed(id, redirect, message string) ActionState {
	return ActionState{
		Status:   StatusCommitted,
		Errors:   map[string][]string{},
		Message:  &message,
		ID:       id,
		Redirect: redirect,
	}
}

func rejected(errors map[string][]string, message string) ActionState {
	return ActionState{
		Status:  StatusRejected,
		Errors:  errors,
		Message: &message,
	}
}

func failed(message string) ActionState {
	return ActionState{
		Status:  StatusFailed,
		Errors:  map[string][]string{},
		Message: &message,
	}
}
