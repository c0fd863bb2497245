package client

import (
	"context"
	"errors"
	"net/http"
)

// Ping checks that the API answers at all. Any HTTP response, including an
// error status, counts as reachable; only transport failures are returned.
func (c *HTTPClient) Ping(ctx context.Context) error {
	err := c.do(ctx, http.MethodGet, "/", nil, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return nil
	}
	return err
}
