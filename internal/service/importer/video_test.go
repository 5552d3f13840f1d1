package importer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
)

func validImportVideoInput() ImportVideoInput {
	return ImportVideoInput{
		Slug:      "imported-talk",
		Title:     "Imported Talk",
		MediaID:   "abc123xyz00",
		CreatedAt: time.Date(2020, 5, 4, 12, 0, 0, 0, time.UTC),
		CreatedBy: "original-author",
	}
}

func TestService_ImportVideo_NonStaffForbidden(t *testing.T) {
	t.Parallel()

	actor := &domain.Actor{ID: uuid.New(), Role: domain.RoleModerator, IsActive: true}
	svc := newTestService(testDeps{users: staffUsers(actor, nil)})

	ctx := withUser(context.Background(), actor.ID)
	_, err := svc.ImportVideo(ctx, validImportVideoInput())

	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestService_ImportVideo_NoUserID(t *testing.T) {
	t.Parallel()

	svc := newTestService(testDeps{})

	_, err := svc.ImportVideo(context.Background(), validImportVideoInput())

	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestService_ImportVideo_DeletesExistingSlugFirst(t *testing.T) {
	t.Parallel()

	actor := staff()
	admin := &domain.User{ID: uuid.New(), Username: "admin"}
	creator := &domain.User{ID: uuid.New(), Username: "original-author"}

	var calls []string
	videos := &mockVideoRepo{
		deleteBySlugFunc: func(ctx context.Context, slug string) (bool, error) {
			calls = append(calls, "delete:"+slug)
			return true, nil
		},
		insertFunc: func(ctx context.Context, v *domain.Video) error {
			calls = append(calls, "insert:"+v.Slug)
			return nil
		},
	}
	users := staffUsers(actor, map[string]*domain.User{"admin": admin, "original-author": creator})
	svc := newTestService(testDeps{videos: videos, users: users})

	ctx := withUser(context.Background(), actor.ID)
	if _, err := svc.ImportVideo(ctx, validImportVideoInput()); err != nil {
		t.Fatalf("ImportVideo: %v", err)
	}

	if len(calls) != 2 || calls[0] != "delete:imported-talk" || calls[1] != "insert:imported-talk" {
		t.Errorf("call order = %v, want delete before insert", calls)
	}
}

func TestService_ImportVideo_VerbatimFields(t *testing.T) {
	t.Parallel()

	actor := staff()
	creator := &domain.User{ID: uuid.New(), Username: "original-author"}
	publisher := &domain.User{ID: uuid.New(), Username: "mod"}

	var inserted *domain.Video
	videos := &mockVideoRepo{
		insertFunc: func(ctx context.Context, v *domain.Video) error {
			inserted = v
			return nil
		},
	}
	users := staffUsers(actor, map[string]*domain.User{
		"original-author": creator,
		"mod":             publisher,
	})
	svc := newTestService(testDeps{videos: videos, users: users})

	publishedAt := time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC)
	input := validImportVideoInput()
	input.ViewAmount = 12345
	input.IsPublished = true
	input.PublishedAt = &publishedAt
	input.PublishedBy = "mod"

	ctx := withUser(context.Background(), actor.ID)
	video, err := svc.ImportVideo(ctx, input)
	if err != nil {
		t.Fatalf("ImportVideo: %v", err)
	}

	if inserted == nil {
		t.Fatal("expected the video to be inserted")
	}
	if video.ViewAmount != 12345 {
		t.Errorf("ViewAmount = %d, want 12345", video.ViewAmount)
	}
	if !video.IsPublished {
		t.Error("expected IsPublished to be carried verbatim")
	}
	if !video.CreatedAt.Equal(input.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", video.CreatedAt, input.CreatedAt)
	}
	if video.CreatedBy != creator.ID {
		t.Errorf("CreatedBy = %s, want %s", video.CreatedBy, creator.ID)
	}
	if video.PublishedBy == nil || *video.PublishedBy != publisher.ID {
		t.Error("expected PublishedBy to resolve to the publisher")
	}
}

func TestService_ImportVideo_CreatorFallsBackToAdmin(t *testing.T) {
	t.Parallel()

	actor := staff()
	admin := &domain.User{ID: uuid.New(), Username: "admin"}

	var inserted *domain.Video
	videos := &mockVideoRepo{
		insertFunc: func(ctx context.Context, v *domain.Video) error {
			inserted = v
			return nil
		},
	}
	users := staffUsers(actor, map[string]*domain.User{"admin": admin})
	svc := newTestService(testDeps{videos: videos, users: users})

	input := validImportVideoInput()
	input.CreatedBy = "deleted-account"

	ctx := withUser(context.Background(), actor.ID)
	if _, err := svc.ImportVideo(ctx, input); err != nil {
		t.Fatalf("ImportVideo: %v", err)
	}

	if inserted == nil || inserted.CreatedBy != admin.ID {
		t.Error("expected the creator to fall back to the admin user")
	}
}

func TestService_ImportVideo_UnknownSpeakerFails(t *testing.T) {
	t.Parallel()

	actor := staff()
	creator := &domain.User{ID: uuid.New(), Username: "original-author"}

	inserted := false
	videos := &mockVideoRepo{
		insertFunc: func(ctx context.Context, v *domain.Video) error {
			inserted = true
			return nil
		},
	}
	users := staffUsers(actor, map[string]*domain.User{"original-author": creator})
	svc := newTestService(testDeps{videos: videos, users: users})

	input := validImportVideoInput()
	input.SpeakerSlugs = []string{"nobody"}

	ctx := withUser(context.Background(), actor.ID)
	_, err := svc.ImportVideo(ctx, input)

	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if inserted {
		t.Error("expected no insert after a failed reference lookup")
	}
}

func TestService_ImportVideo_SubCategoryResolvedWithinCategories(t *testing.T) {
	t.Parallel()

	actor := staff()
	creator := &domain.User{ID: uuid.New(), Username: "original-author"}
	catA := &domain.Category{ID: uuid.New(), Slug: "science"}
	catB := &domain.Category{ID: uuid.New(), Slug: "health"}
	sub := &domain.SubCategory{ID: uuid.New(), CategoryID: catB.ID, Slug: "sleep"}

	var gotSubIDs []uuid.UUID
	videos := &mockVideoRepo{
		replaceSubCategoriesFunc: func(ctx context.Context, videoID uuid.UUID, ids []uuid.UUID) error {
			gotSubIDs = ids
			return nil
		},
	}
	categories := &mockCategoryRepo{
		getBySlugFunc: func(ctx context.Context, slug string) (*domain.Category, error) {
			switch slug {
			case "science":
				return catA, nil
			case "health":
				return catB, nil
			}
			return nil, domain.ErrNotFound
		},
		getSubCategoryBySlugFunc: func(ctx context.Context, categoryID uuid.UUID, slug string) (*domain.SubCategory, error) {
			if categoryID == catB.ID && slug == "sleep" {
				return sub, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	users := staffUsers(actor, map[string]*domain.User{"original-author": creator})
	svc := newTestService(testDeps{videos: videos, categories: categories, users: users})

	input := validImportVideoInput()
	input.CategorySlugs = []string{"science", "health"}
	input.SubCategorySlugs = []string{"sleep"}

	ctx := withUser(context.Background(), actor.ID)
	if _, err := svc.ImportVideo(ctx, input); err != nil {
		t.Fatalf("ImportVideo: %v", err)
	}

	if len(gotSubIDs) != 1 || gotSubIDs[0] != sub.ID {
		t.Errorf("subcategory ids = %v, want [%s]", gotSubIDs, sub.ID)
	}
}

func TestService_ImportVideo_TagsStoredAsGiven(t *testing.T) {
	t.Parallel()

	actor := staff()
	creator := &domain.User{ID: uuid.New(), Username: "original-author"}

	var gotTags []string
	videos := &mockVideoRepo{
		replaceTagsFunc: func(ctx context.Context, videoID uuid.UUID, slugs []string) error {
			gotTags = slugs
			return nil
		},
	}
	users := staffUsers(actor, map[string]*domain.User{"original-author": creator})
	svc := newTestService(testDeps{videos: videos, users: users})

	input := validImportVideoInput()
	input.Tags = []string{"giac-ngu", "health"}

	ctx := withUser(context.Background(), actor.ID)
	if _, err := svc.ImportVideo(ctx, input); err != nil {
		t.Fatalf("ImportVideo: %v", err)
	}

	if len(gotTags) != 2 || gotTags[0] != "giac-ngu" || gotTags[1] != "health" {
		t.Errorf("tags = %v, want them passed through unchanged", gotTags)
	}
}
