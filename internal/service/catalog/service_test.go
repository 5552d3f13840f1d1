package catalog

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Test mocks (minimal, inline)
// ---------------------------------------------------------------------------

type mockVideoRepo struct {
	getByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	getBySlugFunc            func(ctx context.Context, slug string) (*domain.Video, error)
	insertFunc               func(ctx context.Context, v *domain.Video) error
	updateFunc               func(ctx context.Context, v *domain.Video) error
	markPublishedFunc        func(ctx context.Context, id, by uuid.UUID, at time.Time) error
	incrementViewsFunc       func(ctx context.Context, slug string) (*domain.Video, error)
	replaceSpeakersFunc      func(ctx context.Context, videoID uuid.UUID, ids []uuid.UUID) error
	replaceCategoriesFunc    func(ctx context.Context, videoID uuid.UUID, ids []uuid.UUID) error
	replaceSubCategoriesFunc func(ctx context.Context, videoID uuid.UUID, ids []uuid.UUID) error
	replaceTagsFunc          func(ctx context.Context, videoID uuid.UUID, slugs []string) error
}

func (m *mockVideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockVideoRepo) GetBySlug(ctx context.Context, slug string) (*domain.Video, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *mockVideoRepo) Insert(ctx context.Context, v *domain.Video) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, v)
	}
	return nil
}

func (m *mockVideoRepo) Update(ctx context.Context, v *domain.Video) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, v)
	}
	return nil
}

func (m *mockVideoRepo) MarkPublished(ctx context.Context, id, by uuid.UUID, at time.Time) error {
	if m.markPublishedFunc != nil {
		return m.markPublishedFunc(ctx, id, by, at)
	}
	return nil
}

func (m *mockVideoRepo) IncrementViews(ctx context.Context, slug string) (*domain.Video, error) {
	if m.incrementViewsFunc != nil {
		return m.incrementViewsFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *mockVideoRepo) ReplaceSpeakers(ctx context.Context, videoID uuid.UUID, ids []uuid.UUID) error {
	if m.replaceSpeakersFunc != nil {
		return m.replaceSpeakersFunc(ctx, videoID, ids)
	}
	return nil
}

func (m *mockVideoRepo) ReplaceCategories(ctx context.Context, videoID uuid.UUID, ids []uuid.UUID) error {
	if m.replaceCategoriesFunc != nil {
		return m.replaceCategoriesFunc(ctx, videoID, ids)
	}
	return nil
}

func (m *mockVideoRepo) ReplaceSubCategories(ctx context.Context, videoID uuid.UUID, ids []uuid.UUID) error {
	if m.replaceSubCategoriesFunc != nil {
		return m.replaceSubCategoriesFunc(ctx, videoID, ids)
	}
	return nil
}

func (m *mockVideoRepo) ReplaceTags(ctx context.Context, videoID uuid.UUID, slugs []string) error {
	if m.replaceTagsFunc != nil {
		return m.replaceTagsFunc(ctx, videoID, slugs)
	}
	return nil
}

type mockSourceRepo struct {
	createFunc  func(ctx context.Context, s *domain.Source) error
	updateFunc  func(ctx context.Context, s *domain.Source) error
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Source, error)
}

func (m *mockSourceRepo) Create(ctx context.Context, s *domain.Source) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, s)
	}
	return nil
}

func (m *mockSourceRepo) Update(ctx context.Context, s *domain.Source) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, s)
	}
	return nil
}

func (m *mockSourceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

type mockSpeakerRepo struct {
	createFunc  func(ctx context.Context, s *domain.Speaker) error
	updateFunc  func(ctx context.Context, s *domain.Speaker) error
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Speaker, error)
}

func (m *mockSpeakerRepo) Create(ctx context.Context, s *domain.Speaker) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, s)
	}
	return nil
}

func (m *mockSpeakerRepo) Update(ctx context.Context, s *domain.Speaker) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, s)
	}
	return nil
}

func (m *mockSpeakerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Speaker, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

type mockCategoryRepo struct {
	createFunc            func(ctx context.Context, c *domain.Category) error
	createSubCategoryFunc func(ctx context.Context, sc *domain.SubCategory) error
	getBySlugFunc         func(ctx context.Context, slug string) (*domain.Category, error)
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepo) CreateSubCategory(ctx context.Context, sc *domain.SubCategory) error {
	if m.createSubCategoryFunc != nil {
		return m.createSubCategoryFunc(ctx, sc)
	}
	return nil
}

func (m *mockCategoryRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

type mockUserRepo struct {
	getActorFunc func(ctx context.Context, userID uuid.UUID) (*domain.Actor, error)
}

func (m *mockUserRepo) GetActor(ctx context.Context, userID uuid.UUID) (*domain.Actor, error) {
	if m.getActorFunc != nil {
		return m.getActorFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

type mockAuditRepo struct {
	appendFunc func(ctx context.Context, e domain.AuditEntry) error
	entries    []domain.AuditEntry
}

func (m *mockAuditRepo) Append(ctx context.Context, e domain.AuditEntry) error {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, e)
	}
	m.entries = append(m.entries, e)
	return nil
}

type mockTxManager struct {
	runInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.runInTxFunc != nil {
		return m.runInTxFunc(ctx, fn)
	}
	// Default: pass-through
	return fn(ctx)
}

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

type testDeps struct {
	videos     *mockVideoRepo
	sources    *mockSourceRepo
	speakers   *mockSpeakerRepo
	categories *mockCategoryRepo
	users      *mockUserRepo
	audit      *mockAuditRepo
	tx         *mockTxManager
}

func newTestService(deps testDeps) *Service {
	if deps.videos == nil {
		deps.videos = &mockVideoRepo{}
	}
	if deps.sources == nil {
		deps.sources = &mockSourceRepo{}
	}
	if deps.speakers == nil {
		deps.speakers = &mockSpeakerRepo{}
	}
	if deps.categories == nil {
		deps.categories = &mockCategoryRepo{}
	}
	if deps.users == nil {
		deps.users = &mockUserRepo{}
	}
	if deps.audit == nil {
		deps.audit = &mockAuditRepo{}
	}
	if deps.tx == nil {
		deps.tx = &mockTxManager{}
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewService(logger, deps.videos, deps.sources, deps.speakers, deps.categories, deps.users, deps.audit, deps.tx)
}

// actorUsers returns a user repo that resolves the given actor for its ID.
func actorUsers(actor *domain.Actor) *mockUserRepo {
	return &mockUserRepo{
		getActorFunc: func(ctx context.Context, userID uuid.UUID) (*domain.Actor, error) {
			if actor == nil || userID != actor.ID {
				return nil, domain.ErrNotFound
			}
			return actor, nil
		},
	}
}

func moderator() *domain.Actor {
	return &domain.Actor{ID: uuid.New(), Username: "mod", Role: domain.RoleModerator, IsActive: true}
}

func poster() *domain.Actor {
	return &domain.Actor{ID: uuid.New(), Username: "poster", Role: domain.RolePoster, IsActive: true}
}

func member() *domain.Actor {
	return &domain.Actor{ID: uuid.New(), Username: "member", Role: domain.RoleMember, IsActive: true}
}

func withUser(ctx context.Context, id uuid.UUID) context.Context {
	return ctxutil.WithUserID(ctx, id)
}
