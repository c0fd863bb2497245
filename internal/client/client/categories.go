package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/taskease/internal/client/models"
)

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cs []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	var cat models.Category
	if err := c.do(ctx, http.MethodPost, "/categories", models.CategoryInput{Name: name}, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *HTTPClient) UpdateCategory(ctx context.Context, id int, name string) (*models.Category, error) {
	var cat models.Category
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), models.CategoryInput{Name: name}, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil)
}
