package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskease/internal/client/models"
	"github.com/dmitrijs2005/taskease/internal/common"
)

type NoteAPI interface {
	ListNotes(ctx context.Context, taskID int) ([]models.Note, error)
	CreateNote(ctx context.Context, taskID int, content string) (*models.Note, error)
	UpdateNote(ctx context.Context, id int, content string) (*models.Note, error)
	DeleteNote(ctx context.Context, id int) error
}

type NoteService interface {
	List(ctx context.Context, taskID int) ([]models.Note, error)
	Add(ctx context.Context, taskID int, content string) (*models.Note, error)
	Edit(ctx context.Context, id int, content string) (*models.Note, error)
	Delete(ctx context.Context, id int) error
}

type noteService struct {
	api NoteAPI
}

func NewNoteService(api NoteAPI) NoteService {
	return &noteService{api: api}
}

func noteContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("%w: note content is required", common.ErrorValidation)
	}
	return content, nil
}

func (s *noteService) List(ctx context.Context, taskID int) ([]models.Note, error) {
	return s.api.ListNotes(ctx, taskID)
}

func (s *noteService) Add(ctx context.Context, taskID int, content string) (*models.Note, error) {
	content, err := noteContent(content)
	if err != nil {
		return nil, err
	}
	return s.api.CreateNote(ctx, taskID, content)
}

func (s *noteService) Edit(ctx context.Context, id int, content string) (*models.Note, error) {
	content, err := noteContent(content)
	if err != nil {
		return nil, err
	}
	return s.api.UpdateNote(ctx, id, content)
}

func (s *noteService) Delete(ctx context.Context, id int) error {
	return s.api.DeleteNote(ctx, id)
}
