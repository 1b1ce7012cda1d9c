package command

import (
	"context"
	"strings"

	"github.com/storetrack/storetrack/internal/catalog/domain"
	"github.com/storetrack/storetrack/pkg/apperror"
)

// CreateCategoryCommand represents the command to create a category
type CreateCategoryCommand struct {
	Name string
}

// CreateCategoryHandler handles category creation
type CreateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(repo domain.CategoryRepository) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*domain.Category, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, apperror.Validation("Category name can not be empty!")
	}

	if existing, _ := h.repo.FindByName(ctx, name); existing != nil {
		return nil, apperror.Validation("Category name already exists")
	}

	category := &domain.Category{Name: name}
	if err := h.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategoryCommand represents the command to rename a category
type UpdateCategoryCommand struct {
	ID   uint
	Name string
}

// UpdateCategoryHandler handles category updates
type UpdateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewUpdateCategoryHandler creates a new update category handler
func NewUpdateCategoryHandler(repo domain.CategoryRepository) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{repo: repo}
}

// Handle executes the update category command
func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*domain.Category, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, apperror.Validation("Category name can not be empty!")
	}

	category, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := h.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategoryCommand represents the command to delete a category
type DeleteCategoryCommand struct {
	ID uint
}

// DeleteCategoryHandler handles category deletion. A category that still has
// products cannot be deleted.
type DeleteCategoryHandler struct {
	categories domain.CategoryRepository
	products   domain.ProductRepository
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(categories domain.CategoryRepository, products domain.ProductRepository) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{categories: categories, products: products}
}

// Handle executes the delete category command
func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if _, err := h.categories.FindByID(ctx, cmd.ID); err != nil {
		return err
	}

	count, err := h.products.CountByCategory(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.Validation("Cannot delete category with existing products")
	}

	return h.categories.Delete(ctx, cmd.ID)
}
