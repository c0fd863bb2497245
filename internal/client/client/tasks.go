package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/taskease/internal/client/models"
)

// ListTasks always asks the API to embed each task's category.
func (c *HTTPClient) ListTasks(ctx context.Context, q models.TaskQuery) ([]models.Task, error) {
	v := url.Values{}
	v.Set("includeCategory", "true")
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		v.Set("sortOrder", q.SortOrder)
	}

	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks?"+v.Encode(), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *HTTPClient) TaskSummary(ctx context.Context) (*models.TaskSummary, error) {
	var s models.TaskSummary
	if err := c.do(ctx, http.MethodGet, "/tasks/summary", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) GetTask(ctx context.Context, id int) (*models.Task, error) {
	var t models.Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	var t models.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id int, in models.TaskInput) (*models.Task, error) {
	var t models.Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}
