// Package credstore persists the single bearer credential of the client.
//
// A Store holds at most one opaque credential string per API origin. Absence
// is a normal state: Get returns ("", false, nil) when nothing is stored.
// Three backends are provided: SQLite (default, durable across restarts),
// Redis (shared between machines) and memory (ephemeral, tests).
package credstore

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Store is the durable key-value persistence of the bearer credential.
type Store interface {
	Get(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, credential string) error
	Clear(ctx context.Context) error
}

// Origin reduces an API base URL to scheme://host[:port], the scope under
// which its credential is stored.
func Origin(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base url %q has no origin", baseURL)
	}
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host), nil
}
