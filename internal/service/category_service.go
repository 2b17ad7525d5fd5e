package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CategoryService manages a user's categories. Shared categories are
// readable by everyone and writable by no one.
type CategoryService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

func NewCategoryService(store *storage.Storage, processor ActionProcessor) *CategoryService {
	return &CategoryService{storage: store, processor: processor}
}

func validateCategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < 1 || n > 50 {
		return "", invalid("category name must be between 1 and 50 characters")
	}
	return name, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, userID uuid.UUID, input CategoryInput) (Category, error) {
	name, err := validateCategoryName(input.Name)
	if err != nil {
		return Category{}, err
	}
	if !input.Type.Valid() {
		return Category{}, invalid("category type must be income or expense")
	}

	action := &actions.CreateCategory{Create: sqlconfig.CategoryCreate{
		Name:   name,
		Type:   categoryTypeToStorage(input.Type),
		UserID: userID,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return Category{}, storageError("CategoryService.CreateCategory", err)
	}
	return categoryFromStorage(action.Created), nil
}

// ListCategories returns the user's own and shared categories ordered by
// name.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID, page Page) ([]Category, error) {
	page, err := page.normalize()
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Categories.List(ctx, &sqlconfig.CategoryFilter{
		UserID: userID,
		Limit:  page.Limit,
		Offset: page.Skip,
	})
	if err != nil {
		return nil, storageError("CategoryService.ListCategories", err)
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryFromStorage(row)
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, userID, categoryID uuid.UUID) (Category, error) {
	row, err := s.storage.Categories.FindVisible(ctx, userID, categoryID)
	if err != nil {
		return Category{}, storageError("CategoryService.GetCategory", err)
	}
	return categoryFromStorage(row), nil
}

// UpdateCategory changes a category the user owns. Shared categories report
// ErrNotFound.
func (s *CategoryService) UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, patch CategoryPatch) (Category, error) {
	action := &actions.UpdateCategory{UserID: userID, CategoryID: categoryID}
	if name, ok := patch.Name.Get(); ok {
		name, err := validateCategoryName(name)
		if err != nil {
			return Category{}, err
		}
		action.Update.Name.Set(name)
	}
	if categoryType, ok := patch.Type.Get(); ok {
		if !categoryType.Valid() {
			return Category{}, invalid("category type must be income or expense")
		}
		action.Update.Type.Set(categoryTypeToStorage(categoryType))
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return Category{}, storageError("CategoryService.UpdateCategory", err)
	}
	return categoryFromStorage(action.Updated), nil
}

// DeleteCategory removes a category the user owns. A category still used by
// transactions reports ErrConflict.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	action := &actions.DeleteCategory{UserID: userID, CategoryID: categoryID}
	if err := s.processor.Process(ctx, action); err != nil {
		return storageError("CategoryService.DeleteCategory", err)
	}
	return nil
}
