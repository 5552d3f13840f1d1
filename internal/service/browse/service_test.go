package browse

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Test mocks (minimal, inline)
// ---------------------------------------------------------------------------

type mockVideoRepo struct {
	getByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	getBySlugFunc func(ctx context.Context, slug string) (*domain.Video, error)
	findFunc      func(ctx context.Context, f domain.VideoFilter) ([]domain.Video, *string, error)
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

func (m *mockVideoRepo) Find(ctx context.Context, f domain.VideoFilter) ([]domain.Video, *string, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, f)
	}
	return nil, nil, nil
}

type mockSourceRepo struct {
	getByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Source, error)
	getBySlugFunc    func(ctx context.Context, slug string) (*domain.Source, error)
	listFunc         func(ctx context.Context, search, orderBy string) ([]domain.SourceCount, error)
	searchByNameFunc func(ctx context.Context, term string) ([]domain.SourceCount, error)
}

func (m *mockSourceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockSourceRepo) GetBySlug(ctx context.Context, slug string) (*domain.Source, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *mockSourceRepo) List(ctx context.Context, search, orderBy string) ([]domain.SourceCount, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, search, orderBy)
	}
	return nil, nil
}

func (m *mockSourceRepo) SearchByName(ctx context.Context, term string) ([]domain.SourceCount, error) {
	if m.searchByNameFunc != nil {
		return m.searchByNameFunc(ctx, term)
	}
	return nil, nil
}

type mockSpeakerRepo struct {
	getByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Speaker, error)
	getBySlugFunc    func(ctx context.Context, slug string) (*domain.Speaker, error)
	listFunc         func(ctx context.Context, search, orderBy string) ([]domain.SpeakerCount, error)
	searchByNameFunc func(ctx context.Context, term string) ([]domain.SpeakerCount, error)
}

func (m *mockSpeakerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Speaker, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockSpeakerRepo) GetBySlug(ctx context.Context, slug string) (*domain.Speaker, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *mockSpeakerRepo) List(ctx context.Context, search, orderBy string) ([]domain.SpeakerCount, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, search, orderBy)
	}
	return nil, nil
}

func (m *mockSpeakerRepo) SearchByName(ctx context.Context, term string) ([]domain.SpeakerCount, error) {
	if m.searchByNameFunc != nil {
		return m.searchByNameFunc(ctx, term)
	}
	return nil, nil
}

type mockCategoryRepo struct {
	getBySlugFunc         func(ctx context.Context, slug string) (*domain.Category, error)
	listFunc              func(ctx context.Context, orderBy string) ([]domain.CategoryCount, error)
	listSubCategoriesFunc func(ctx context.Context, categoryID uuid.UUID, orderBy string) ([]domain.SubCategoryCount, error)
}

func (m *mockCategoryRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *mockCategoryRepo) List(ctx context.Context, orderBy string) ([]domain.CategoryCount, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, orderBy)
	}
	return nil, nil
}

func (m *mockCategoryRepo) ListSubCategories(ctx context.Context, categoryID uuid.UUID, orderBy string) ([]domain.SubCategoryCount, error) {
	if m.listSubCategoriesFunc != nil {
		return m.listSubCategoriesFunc(ctx, categoryID, orderBy)
	}
	return nil, nil
}

type mockTagRepo struct {
	getBySlugFunc func(ctx context.Context, slug string) (*domain.Tag, error)
	listFunc      func(ctx context.Context, orderBy string) ([]domain.TagCount, error)
}

func (m *mockTagRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *mockTagRepo) List(ctx context.Context, orderBy string) ([]domain.TagCount, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, orderBy)
	}
	return nil, nil
}

type mockPlaylistRepo struct {
	getBySlugFunc func(ctx context.Context, slug string) (*domain.Playlist, error)
	listFunc      func(ctx context.Context, orderBy string) ([]domain.PlaylistCount, error)
}

func (m *mockPlaylistRepo) GetBySlug(ctx context.Context, slug string) (*domain.Playlist, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrNotFound
}

func (m *mockPlaylistRepo) List(ctx context.Context, orderBy string) ([]domain.PlaylistCount, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, orderBy)
	}
	return nil, nil
}

type mockUserRepo struct {
	getByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	listSponsorsFunc  func(ctx context.Context, orderBy string) ([]domain.UserCount, error)
	listCreatorsFunc  func(ctx context.Context, orderBy string) ([]domain.UserCount, error)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) ListSponsors(ctx context.Context, orderBy string) ([]domain.UserCount, error) {
	if m.listSponsorsFunc != nil {
		return m.listSponsorsFunc(ctx, orderBy)
	}
	return nil, nil
}

func (m *mockUserRepo) ListCreators(ctx context.Context, orderBy string) ([]domain.UserCount, error) {
	if m.listCreatorsFunc != nil {
		return m.listCreatorsFunc(ctx, orderBy)
	}
	return nil, nil
}

type mockMenuRepo struct {
	listFunc func(ctx context.Context) ([]domain.Menu, error)
}

func (m *mockMenuRepo) List(ctx context.Context) ([]domain.Menu, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

type testDeps struct {
	videos     *mockVideoRepo
	sources    *mockSourceRepo
	speakers   *mockSpeakerRepo
	categories *mockCategoryRepo
	tags       *mockTagRepo
	playlists  *mockPlaylistRepo
	users      *mockUserRepo
	menus      *mockMenuRepo
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
	if deps.tags == nil {
		deps.tags = &mockTagRepo{}
	}
	if deps.playlists == nil {
		deps.playlists = &mockPlaylistRepo{}
	}
	if deps.users == nil {
		deps.users = &mockUserRepo{}
	}
	if deps.menus == nil {
		deps.menus = &mockMenuRepo{}
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewService(logger, deps.videos, deps.sources, deps.speakers, deps.categories, deps.tags, deps.playlists, deps.users, deps.menus)
}

// ---------------------------------------------------------------------------
// Lookup tests
// ---------------------------------------------------------------------------

func TestService_VideoBySlug_AbsentIsNil(t *testing.T) {
	t.Parallel()

	svc := newTestService(testDeps{})

	video, err := svc.VideoBySlug(context.Background(), "missing")
	if err != nil {
		t.Fatalf("VideoBySlug: %v", err)
	}
	if video != nil {
		t.Errorf("expected nil for a missing slug, got %+v", video)
	}
}

func TestService_VideoBySlug_StoreErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	videos := &mockVideoRepo{
		getBySlugFunc: func(ctx context.Context, slug string) (*domain.Video, error) {
			return nil, boom
		},
	}
	svc := newTestService(testDeps{videos: videos})

	_, err := svc.VideoBySlug(context.Background(), "any")
	if !errors.Is(err, boom) {
		t.Errorf("expected the store error to propagate, got %v", err)
	}
}

func TestService_Video_Found(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	videos := &mockVideoRepo{
		getByIDFunc: func(ctx context.Context, got uuid.UUID) (*domain.Video, error) {
			if got != id {
				return nil, domain.ErrNotFound
			}
			return &domain.Video{ID: id, Slug: "found"}, nil
		},
	}
	svc := newTestService(testDeps{videos: videos})

	video, err := svc.Video(context.Background(), id)
	if err != nil {
		t.Fatalf("Video: %v", err)
	}
	if video == nil || video.Slug != "found" {
		t.Errorf("video = %+v, want slug %q", video, "found")
	}
}

func TestService_SponsorAndCreator_MatchAnyRole(t *testing.T) {
	t.Parallel()

	// The lookups resolve the user by username alone; a poster resolves
	// through the sponsor lookup and vice versa.
	user := &domain.User{ID: uuid.New(), Username: "walker"}
	users := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return user, nil
		},
	}
	svc := newTestService(testDeps{users: users})

	got, err := svc.Sponsor(context.Background(), "walker")
	if err != nil {
		t.Fatalf("Sponsor: %v", err)
	}
	if got == nil || got.ID != user.ID {
		t.Errorf("sponsor = %+v, want user %s", got, user.ID)
	}

	creator, err := svc.Creator(context.Background(), "walker")
	if err != nil {
		t.Fatalf("Creator: %v", err)
	}
	if creator == nil || creator.ID != user.ID {
		t.Errorf("creator = %+v, want user %s", creator, user.ID)
	}
}

func TestService_Sponsor_MissingIsNil(t *testing.T) {
	t.Parallel()

	svc := newTestService(testDeps{users: &mockUserRepo{}})

	got, err := svc.Sponsor(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Sponsor: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for an unknown username, got %+v", got)
	}
}

// ---------------------------------------------------------------------------
// SearchList tests
// ---------------------------------------------------------------------------

func TestService_SearchList_ThreeIndependentSets(t *testing.T) {
	t.Parallel()

	var gotFilter domain.VideoFilter
	videos := &mockVideoRepo{
		findFunc: func(ctx context.Context, f domain.VideoFilter) ([]domain.Video, *string, error) {
			gotFilter = f
			return []domain.Video{{Slug: "hit"}}, nil, nil
		},
	}
	speakers := &mockSpeakerRepo{
		searchByNameFunc: func(ctx context.Context, term string) ([]domain.SpeakerCount, error) {
			return []domain.SpeakerCount{{Speaker: domain.Speaker{Slug: "walker"}, VideoAmount: 2}}, nil
		},
	}
	sources := &mockSourceRepo{
		searchByNameFunc: func(ctx context.Context, term string) ([]domain.SourceCount, error) {
			return []domain.SourceCount{{Source: domain.Source{Slug: "ted"}, VideoAmount: 5}}, nil
		},
	}
	svc := newTestService(testDeps{videos: videos, speakers: speakers, sources: sources})

	result, err := svc.SearchList(context.Background(), "sleep")
	if err != nil {
		t.Fatalf("SearchList: %v", err)
	}

	if gotFilter.TitleSearch == nil || *gotFilter.TitleSearch != "sleep" {
		t.Error("expected the video set to search title/description only")
	}
	if gotFilter.Search != nil {
		t.Error("expected the speaker-name search to stay unset")
	}
	if gotFilter.IsPublished == nil || !*gotFilter.IsPublished {
		t.Error("expected the video set to be restricted to published videos")
	}
	if gotFilter.OrderBy != "-published_at" {
		t.Errorf("OrderBy = %q, want -published_at", gotFilter.OrderBy)
	}

	if len(result.Videos) != 1 || len(result.Speakers) != 1 || len(result.Sources) != 1 {
		t.Errorf("result sizes = %d/%d/%d, want 1/1/1",
			len(result.Videos), len(result.Speakers), len(result.Sources))
	}
}

// ---------------------------------------------------------------------------
// Listing tests
// ---------------------------------------------------------------------------

func TestService_SubCategories_PassesCategoryID(t *testing.T) {
	t.Parallel()

	categoryID := uuid.New()
	var gotID uuid.UUID
	var gotOrder string
	categories := &mockCategoryRepo{
		listSubCategoriesFunc: func(ctx context.Context, id uuid.UUID, orderBy string) ([]domain.SubCategoryCount, error) {
			gotID = id
			gotOrder = orderBy
			return []domain.SubCategoryCount{}, nil
		},
	}
	svc := newTestService(testDeps{categories: categories})

	if _, err := svc.SubCategories(context.Background(), categoryID, "priority"); err != nil {
		t.Fatalf("SubCategories: %v", err)
	}

	if gotID != categoryID {
		t.Errorf("category id = %s, want %s", gotID, categoryID)
	}
	if gotOrder != "priority" {
		t.Errorf("orderBy = %q, want %q", gotOrder, "priority")
	}
}

func TestService_Menus(t *testing.T) {
	t.Parallel()

	menus := &mockMenuRepo{
		listFunc: func(ctx context.Context) ([]domain.Menu, error) {
			return []domain.Menu{{Name: "Home", Link: "/", Priority: 1}}, nil
		},
	}
	svc := newTestService(testDeps{menus: menus})

	got, err := svc.Menus(context.Background())
	if err != nil {
		t.Fatalf("Menus: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Home" {
		t.Errorf("menus = %+v, want one item named Home", got)
	}
}
