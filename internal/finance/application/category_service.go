package application

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/sebuszqo/ExpenseTracker/internal/events"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	"log/slog"
	"strings"
	"time"
)

type CategoryService struct {
	repo      domain.CategoryRepository
	publisher EventPublisher
}

func NewCategoryService(repo domain.CategoryRepository, publisher EventPublisher) *CategoryService {
	return &CategoryService{repo: repo, publisher: publisher}
}

func (s *CategoryService) CreateCategory(ctx context.Context, description string, purpose domain.Purpose) (*CategoryView, error) {
	description = strings.TrimSpace(description)
	if err := domain.ValidateCategoryInput(description, purpose); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate category id: %w", err)
	}
	category := domain.Category{ID: id, Description: description, Purpose: purpose, CreatedAt: time.Now().UTC()}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Category created", "category_id", category.ID, "purpose", category.Purpose)
	view := newCategoryView(category)
	publish(ctx, s.publisher, events.CategoryCreated, view)
	return &view, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*CategoryView, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil || category == nil {
		return nil, err
	}
	view := newCategoryView(*category)
	return &view, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]CategoryView, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, newCategoryView(c))
	}
	return views, nil
}

// DeleteCategory fails with ErrCategoryInUse while transactions still reference the category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil || !deleted {
		return false, err
	}
	slog.InfoContext(ctx, "Category deleted", "category_id", id)
	publish(ctx, s.publisher, events.CategoryDeleted, map[string]uuid.UUID{"id": id})
	return true, nil
}
