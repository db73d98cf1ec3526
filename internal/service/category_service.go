package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/thedrumepic/med/internal/repositories"
	"github.com/thedrumepic/med/models"
	"github.com/thedrumepic/med/pkg/logger"
)

// CreateCategoryRequest is also the update payload: category updates are
// full replacements of the base fields.
type CreateCategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req CreateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ReorderCategories(ctx context.Context, ids []string) error
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *logger.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, log *logger.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       log.WithComponent("category_service"),
	}
}

// ListCategories returns all categories sorted by display order
func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list categories", "error", err)
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a new category at the end of the display order
func (s *CategoryService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error) {
	if err := validateCategoryRequest(req); err != nil {
		s.logger.Warn("Create failed: invalid category data", "error", err)
		return nil, err
	}

	// New categories append after existing ones.
	count, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	category := models.Category{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Slug:  req.Slug,
		Order: int(count),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.logger.Error("Failed to create category", "error", err)
		return nil, err
	}

	s.logger.Info("Category created", "category_id", category.ID, "name", category.Name)
	return &category, nil
}

// UpdateCategory replaces the base fields of an existing category and
// returns the post-update record
func (s *CategoryService) UpdateCategory(ctx context.Context, id string, req CreateCategoryRequest) (*models.Category, error) {
	if err := validateCategoryRequest(req); err != nil {
		s.logger.Warn("Update failed: invalid category data", "category_id", id, "error", err)
		return nil, err
	}

	if err := s.categoryRepo.Update(ctx, id, models.Category{Name: req.Name, Slug: req.Slug}); err != nil {
		return nil, err
	}

	updated, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Category updated", "category_id", id, "name", updated.Name)
	return updated, nil
}

// DeleteCategory removes a category. Products referencing it keep their
// category_id; dangling references are accepted.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Category deleted", "category_id", id)
	return nil
}

// ReorderCategories persists the given id sequence as the new display
// order: each category's order becomes its index in the list.
func (s *CategoryService) ReorderCategories(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return validationErrorf("category id list is required")
	}

	for position, id := range ids {
		if err := s.categoryRepo.UpdateOrder(ctx, id, position); err != nil {
			s.logger.Warn("Failed to reorder category", "category_id", id, "position", position, "error", err)
			return err
		}
	}

	s.logger.Info("Categories reordered", "count", len(ids))
	return nil
}

func validateCategoryRequest(req CreateCategoryRequest) error {
	if req.Name == "" {
		return validationErrorf("name is required")
	}
	if req.Slug == "" {
		return validationErrorf("slug is required")
	}
	return nil
}
