package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/internal/domain/policy"
)

// CreateCategory creates a top-level browse category. Category writes leave
// no audit trail.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	actor, err := s.authorize(ctx, policy.ActionCreateCategory, policy.Context{})
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:          uuid.New(),
		Slug:        input.Slug,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Priority:    input.Priority,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		"category_id", category.ID,
		"slug", category.Slug,
		"actor_id", actor.ID,
	)

	return category, nil
}

// CreateSubCategory creates a subcategory under the category addressed by
// its slug.
func (s *Service) CreateSubCategory(ctx context.Context, input CreateSubCategoryInput) (*domain.SubCategory, error) {
	actor, err := s.authorize(ctx, policy.ActionCreateSubCategory, policy.Context{})
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	parent, err := s.categories.GetBySlug(ctx, input.CategorySlug)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	sub := &domain.SubCategory{
		ID:          uuid.New(),
		CategoryID:  parent.ID,
		Slug:        input.Slug,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Priority:    input.Priority,
	}

	if err := s.categories.CreateSubCategory(ctx, sub); err != nil {
		return nil, fmt.Errorf("create subcategory: %w", err)
	}

	s.log.InfoContext(ctx, "subcategory created",
		"subcategory_id", sub.ID,
		"slug", sub.Slug,
		"category_slug", parent.Slug,
		"actor_id", actor.ID,
	)

	return sub, nil
}
