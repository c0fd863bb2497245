package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskease/internal/client/models"
	"github.com/dmitrijs2005/taskease/internal/common"
)

type CategoryAPI interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, name string) (*models.Category, error)
	Rename(ctx context.Context, id int, name string) (*models.Category, error)
	Delete(ctx context.Context, id int) error
}

type categoryService struct {
	api CategoryAPI
}

func NewCategoryService(api CategoryAPI) CategoryService {
	return &categoryService{api: api}
}

func categoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: category name is required", common.ErrorValidation)
	}
	return name, nil
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.api.ListCategories(ctx)
}

func (s *categoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	name, err := categoryName(name)
	if err != nil {
		return nil, err
	}
	return s.api.CreateCategory(ctx, name)
}

func (s *categoryService) Rename(ctx context.Context, id int, name string) (*models.Category, error) {
	name, err := categoryName(name)
	if err != nil {
		return nil, err
	}
	return s.api.UpdateCategory(ctx, id, name)
}

func (s *categoryService) Delete(ctx context.Context, id int) error {
	return s.api.DeleteCategory(ctx, id)
}
