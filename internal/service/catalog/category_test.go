package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
)

func TestService_CreateCategory_HappyPath(t *testing.T) {
	t.Parallel()

	actor := moderator()
	var created *domain.Category
	categories := &mockCategoryRepo{
		createFunc: func(ctx context.Context, c *domain.Category) error {
			created = c
			return nil
		},
	}
	audit := &mockAuditRepo{}
	svc := newTestService(testDeps{categories: categories, users: actorUsers(actor), audit: audit})

	ctx := withUser(context.Background(), actor.ID)
	input := CreateCategoryInput{
		NamedFields: NamedFields{Slug: "science", Name: "Science"},
		Priority:    3,
	}

	category, err := svc.CreateCategory(ctx, input)
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	if created == nil || created.ID != category.ID {
		t.Fatal("expected the category to be stored")
	}
	if category.Priority != 3 {
		t.Errorf("Priority = %d, want 3", category.Priority)
	}

	// Category writes carry no audit trail.
	if len(audit.entries) != 0 {
		t.Errorf("expected no audit entries, got %d", len(audit.entries))
	}
}

func TestService_CreateCategory_PosterForbidden(t *testing.T) {
	t.Parallel()

	actor := poster()
	svc := newTestService(testDeps{users: actorUsers(actor)})

	ctx := withUser(context.Background(), actor.ID)
	input := CreateCategoryInput{NamedFields: NamedFields{Slug: "science", Name: "Science"}}

	_, err := svc.CreateCategory(ctx, input)

	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestService_CreateSubCategory_HappyPath(t *testing.T) {
	t.Parallel()

	actor := moderator()
	parentID := uuid.New()

	var created *domain.SubCategory
	categories := &mockCategoryRepo{
		getBySlugFunc: func(ctx context.Context, slug string) (*domain.Category, error) {
			if slug != "science" {
				return nil, domain.ErrNotFound
			}
			return &domain.Category{ID: parentID, Slug: "science", Name: "Science"}, nil
		},
		createSubCategoryFunc: func(ctx context.Context, sc *domain.SubCategory) error {
			created = sc
			return nil
		},
	}
	svc := newTestService(testDeps{categories: categories, users: actorUsers(actor)})

	ctx := withUser(context.Background(), actor.ID)
	input := CreateSubCategoryInput{
		CategorySlug: "science",
		NamedFields:  NamedFields{Slug: "biology", Name: "Biology"},
		Priority:     1,
	}

	sub, err := svc.CreateSubCategory(ctx, input)
	if err != nil {
		t.Fatalf("CreateSubCategory: %v", err)
	}

	if created == nil {
		t.Fatal("expected the subcategory to be stored")
	}
	if sub.CategoryID != parentID {
		t.Errorf("CategoryID = %s, want %s", sub.CategoryID, parentID)
	}
}

func TestService_CreateSubCategory_UnknownCategory(t *testing.T) {
	t.Parallel()

	actor := moderator()
	svc := newTestService(testDeps{users: actorUsers(actor)})

	ctx := withUser(context.Background(), actor.ID)
	input := CreateSubCategoryInput{
		CategorySlug: "missing",
		NamedFields:  NamedFields{Slug: "biology", Name: "Biology"},
	}

	_, err := svc.CreateSubCategory(ctx, input)

	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_CreateSubCategory_MissingCategorySlug(t *testing.T) {
	t.Parallel()

	actor := moderator()
	svc := newTestService(testDeps{users: actorUsers(actor)})

	ctx := withUser(context.Background(), actor.ID)
	input := CreateSubCategoryInput{NamedFields: NamedFields{Slug: "biology", Name: "Biology"}}

	_, err := svc.CreateSubCategory(ctx, input)

	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
