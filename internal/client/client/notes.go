package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/taskease/internal/client/models"
)

func (c *HTTPClient) ListNotes(ctx context.Context, taskID int) ([]models.Note, error) {
	var ns []models.Note
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d/notes", taskID), nil, &ns); err != nil {
		return nil, err
	}
	return ns, nil
}

func (c *HTTPClient) CreateNote(ctx context.Context, taskID int, content string) (*models.Note, error) {
	var n models.Note
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tasks/%d/notes", taskID), models.NoteInput{Content: content}, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *HTTPClient) UpdateNote(ctx context.Context, id int, content string) (*models.Note, error) {
	var n models.Note
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/notes/%d", id), models.NoteInput{Content: content}, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *HTTPClient) DeleteNote(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notes/%d", id), nil, nil)
}
