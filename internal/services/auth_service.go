// auth_service.go
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
	"fmt"
	"log"
	"sync"

	authorizer "github.com/localnerve/authorizer-go"
	"github.com/localnerve/drink-trail/internal/config"
	"github.com/localnerve/drink-trail/internal/utils"
)

// SessionUser is the identity behind a validated session
type SessionUser struct {
	ID string `json:"id"`
}

// SessionValidator validates a session cookie for the given roles
type SessionValidator interface {
	ValidateSession(cookie string, roles []string) (*SessionUser, error)
}

// AuthorizerValidator validates sessions against an Authorizer service.
// The client is created on first use because the redirect URL depends on
// the host of the first request. A failed creation is retried on the next
// request.
type AuthorizerValidator struct {
	cfg    *config.Config
	mu     sync.Mutex
	client *authorizer.AuthorizerClient
}

func NewAuthorizerValidator(cfg *config.Config) *AuthorizerValidator {
	return &AuthorizerValidator{cfg: cfg}
}

// Init creates the Authorizer client unless one already exists
func (v *AuthorizerValidator) Init(requestProtocol, requestHost string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.client != nil {
		return nil
	}

	// Ping the Authorizer service first
	if err := utils.PingAuthorizer(context.Background(), v.cfg.AuthzURL); err != nil {
		return fmt.Errorf("authorizer ping failed: %w", err)
	}

	redirectURL := fmt.Sprintf("%s://%s", requestProtocol, requestHost)
	log.Printf("Initializing Authorizer: authorizerURL=%s, clientID=%s, redirectURL=%s",
		v.cfg.AuthzURL, v.cfg.AuthzClientID, redirectURL)

	client, err := authorizer.NewAuthorizerClient(v.cfg.AuthzClientID, v.cfg.AuthzURL, redirectURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create authorizer client: %w", err)
	}
	v.client = client

	return nil
}

func (v *AuthorizerValidator) authClient() *authorizer.AuthorizerClient {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.client
}

func (v *AuthorizerValidator) ValidateSession(cookie string, roles []string) (*SessionUser, error) {
	client := v.authClient()
	if client == nil {
		return nil, fmt.Errorf("authorizer client not initialized")
	}

	// Convert roles to []*string
	rolesPtrs := make([]*string, len(roles))
	for i := range roles {
		rolesPtrs[i] = &roles[i]
	}

	res, err := client.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
		Roles:  rolesPtrs,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}

	if res == nil || !res.IsValid || res.User == nil {
		return nil, fmt.Errorf("session is not valid")
	}

	return &SessionUser{ID: res.User.ID}, nil
}
