package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/taskease/internal/client/models"
)

// GetProfile fetches the profile of the credential's owner.
func (c *HTTPClient) GetProfile(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPut, "/users/me", upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
