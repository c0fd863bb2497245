package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskease/internal/client/models"
)

var errEmptyToken = errors.New("server returned an empty access token")

// Login exchanges email and password for a bearer credential.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", models.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", errEmptyToken
	}
	return resp.AccessToken, nil
}

// Register creates an account and returns its bearer credential.
func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (string, error) {
	var resp models.TokenResponse
	req := models.RegisterRequest{Name: name, Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", errEmptyToken
	}
	return resp.AccessToken, nil
}
