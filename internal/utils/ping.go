package utils

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"
)

// DialTimeout bounds a single reachability check
const DialTimeout = 1500 * time.Millisecond

// Reachable opens and closes a TCP connection to the host of serviceURL.
// The scheme's default port is used when the URL has none.
func Reachable(ctx context.Context, serviceURL string) error {
	u, err := url.Parse(serviceURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", serviceURL, err)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("invalid URL %q: missing host", serviceURL)
	}

	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}
	address := net.JoinHostPort(u.Hostname(), port)

	ctx, cancel := context.WithTimeout(ctx, DialTimeout)
	defer cancel()

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	return conn.Close()
}

// PingAuthorizer checks the Authorizer service accepts connections
func PingAuthorizer(ctx context.Context, authzURL string) error {
	return Reachable(ctx, authzURL)
}
