package importer

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Test mocks (minimal, inline)
// ---------------------------------------------------------------------------

type mockVideoRepo struct {
	getBySlugFunc            func(ctx context.Context, slug string) (*domain.Video, error)
	deleteBySlugFunc         func(ctx context.Context, slug string) (bool, error)
	insertFunc               func(ctx context.Context, v *domain.Video) error
	replaceSpeakersFunc      func(ctx context.Context, videoID uuid.UUID, ids []uuid.UUID) error
	replaceCategoriesFunc    func(ctx context.Context, videoID uuid.UUID, ids []uuid.UUID) error
	replaceSubCategoriesFunc func(ctx context.Context, videoID uuid.UUID, ids []uuid.UUID) error
	replaceTagsFunc          func(ctx context.Context, videoID uuid.UUID, slugs []string) error
}

func (m *mockVideoRepo) GetBySlug(ctx context.Context, slug string) (*domain.Video, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *mockVideoRepo) DeleteBySlug(ctx context.Context, slug string) (bool, error) {
	if m.deleteBySlugFunc != nil {
		return m.deleteBySlugFunc(ctx, slug)
	}
	return false, nil
}

func (m *mockVideoRepo) Insert(ctx context.Context, v *domain.Video) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, v)
	}
	return nil
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
	getBySlugFunc func(ctx context.Context, slug string) (*domain.Source, error)
}

func (m *mockSourceRepo) GetBySlug(ctx context.Context, slug string) (*domain.Source, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

type mockSpeakerRepo struct {
	getBySlugFunc func(ctx context.Context, slug string) (*domain.Speaker, error)
}

func (m *mockSpeakerRepo) GetBySlug(ctx context.Context, slug string) (*domain.Speaker, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

type mockCategoryRepo struct {
	getBySlugFunc            func(ctx context.Context, slug string) (*domain.Category, error)
	getSubCategoryBySlugFunc func(ctx context.Context, categoryID uuid.UUID, slug string) (*domain.SubCategory, error)
}

func (m *mockCategoryRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCategoryRepo) GetSubCategoryBySlug(ctx context.Context, categoryID uuid.UUID, slug string) (*domain.SubCategory, error) {
	if m.getSubCategoryBySlugFunc != nil {
		return m.getSubCategoryBySlugFunc(ctx, categoryID, slug)
	}
	return nil, domain.ErrNotFound
}

type mockPlaylistRepo struct {
	createFunc   func(ctx context.Context, p *domain.Playlist) error
	addVideoFunc func(ctx context.Context, playlistID, videoID uuid.UUID, priority int) error
}

func (m *mockPlaylistRepo) Create(ctx context.Context, p *domain.Playlist) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}

func (m *mockPlaylistRepo) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID, priority int) error {
	if m.addVideoFunc != nil {
		return m.addVideoFunc(ctx, playlistID, videoID, priority)
	}
	return nil
}

type mockUserRepo struct {
	getActorFunc      func(ctx context.Context, userID uuid.UUID) (*domain.Actor, error)
	getByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	createFunc        func(ctx context.Context, u *domain.User, passwordHash string, p *domain.Profile) error
}

func (m *mockUserRepo) GetActor(ctx context.Context, userID uuid.UUID) (*domain.Actor, error) {
	if m.getActorFunc != nil {
		return m.getActorFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User, passwordHash string, p *domain.Profile) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, u, passwordHash, p)
	}
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
	playlists  *mockPlaylistRepo
	users      *mockUserRepo
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
	if deps.playlists == nil {
		deps.playlists = &mockPlaylistRepo{}
	}
	if deps.users == nil {
		deps.users = &mockUserRepo{}
	}
	if deps.tx == nil {
		deps.tx = &mockTxManager{}
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewService(logger, deps.videos, deps.sources, deps.speakers, deps.categories, deps.playlists, deps.users, deps.tx)
}

func staff() *domain.Actor {
	return &domain.Actor{
		ID:       uuid.New(),
		Username: "importer",
		Role:     domain.RoleAdministrator,
		IsActive: true,
		IsStaff:  true,
	}
}

// staffUsers resolves the staff actor plus any extra users by username.
func staffUsers(actor *domain.Actor, byUsername map[string]*domain.User) *mockUserRepo {
	return &mockUserRepo{
		getActorFunc: func(ctx context.Context, userID uuid.UUID) (*domain.Actor, error) {
			if userID != actor.ID {
				return nil, domain.ErrNotFound
			}
			return actor, nil
		},
		getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			if u, ok := byUsername[username]; ok {
				return u, nil
			}
			return nil, domain.ErrNotFound
		},
	}
}

func withUser(ctx context.Context, id uuid.UUID) context.Context {
	return ctxutil.WithUserID(ctx, id)
}
