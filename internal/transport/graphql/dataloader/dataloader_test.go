package dataloader_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saveschool/catalog-backend/internal/adapter/postgres/category"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/speaker"
	"github.com/saveschool/catalog-backend/internal/domain"
	dl "github.com/saveschool/catalog-backend/internal/transport/graphql/dataloader"
)

// ---------------------------------------------------------------------------
// Mock repos
// ---------------------------------------------------------------------------

type mockSpeakerRepo struct {
	result []speaker.VideoSpeaker
	err    error
}

func (m *mockSpeakerRepo) GetByVideoIDs(_ context.Context, _ []uuid.UUID) ([]speaker.VideoSpeaker, error) {
	return m.result, m.err
}

type mockCategoryRepo struct {
	result    []category.VideoCategory
	subResult []category.VideoSubCategory
	err       error
}

func (m *mockCategoryRepo) GetByVideoIDs(_ context.Context, _ []uuid.UUID) ([]category.VideoCategory, error) {
	return m.result, m.err
}

func (m *mockCategoryRepo) GetSubCategoriesByVideoIDs(_ context.Context, _ []uuid.UUID) ([]category.VideoSubCategory, error) {
	return m.subResult, m.err
}

type mockTagRepo struct {
	result []domain.Tag
	err    error
}

func (m *mockTagRepo) GetByVideoIDs(_ context.Context, _ []uuid.UUID) ([]domain.Tag, error) {
	return m.result, m.err
}

type mockSourceRepo struct {
	result []domain.Source
	err    error
}

func (m *mockSourceRepo) GetByIDs(_ context.Context, _ []uuid.UUID) ([]domain.Source, error) {
	return m.result, m.err
}

type mockUserRepo struct {
	result []domain.User
	err    error
}

func (m *mockUserRepo) GetByIDs(_ context.Context, _ []uuid.UUID) ([]domain.User, error) {
	return m.result, m.err
}

func emptyRepos() *dl.Repos {
	return &dl.Repos{
		Speaker:  &mockSpeakerRepo{},
		Category: &mockCategoryRepo{},
		Tag:      &mockTagRepo{},
		Source:   &mockSourceRepo{},
		User:     &mockUserRepo{},
	}
}

// ---------------------------------------------------------------------------
// Context / Middleware tests
// ---------------------------------------------------------------------------

func TestFromContext_ReturnsLoaders(t *testing.T) {
	loaders := dl.NewLoaders(emptyRepos())
	ctx := dl.WithLoaders(context.Background(), loaders)

	got := dl.FromContext(ctx)
	assert.NotNil(t, got)
	assert.Equal(t, loaders, got)
}

func TestFromContext_PanicsWhenMissing(t *testing.T) {
	assert.Panics(t, func() {
		dl.FromContext(context.Background())
	})
}

func TestMiddleware_InjectsLoaders(t *testing.T) {
	repos := emptyRepos()
	mw := dl.Middleware(repos)

	var gotLoaders *dl.Loaders
	handler := mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotLoaders = dl.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, gotLoaders)
	assert.NotNil(t, gotLoaders.SpeakersByVideoID)
	assert.NotNil(t, gotLoaders.CategoriesByVideoID)
	assert.NotNil(t, gotLoaders.SubCategoriesByVideoID)
	assert.NotNil(t, gotLoaders.TagsByVideoID)
	assert.NotNil(t, gotLoaders.SourceByID)
	assert.NotNil(t, gotLoaders.UserByID)
}

// ---------------------------------------------------------------------------
// Batch function tests: verify grouping and empty results
// ---------------------------------------------------------------------------

func TestSpeakersLoader_GroupsByVideoID(t *testing.T) {
	video1 := uuid.New()
	video2 := uuid.New()

	repos := emptyRepos()
	repos.Speaker = &mockSpeakerRepo{
		result: []speaker.VideoSpeaker{
			{VideoID: video1, Speaker: domain.Speaker{ID: uuid.New()}},
			{VideoID: video1, Speaker: domain.Speaker{ID: uuid.New()}},
			{VideoID: video2, Speaker: domain.Speaker{ID: uuid.New()}},
		},
	}

	loaders := dl.NewLoaders(repos)
	ctx := context.Background()

	result1, err := loaders.SpeakersByVideoID.Load(ctx, video1)()
	require.NoError(t, err)
	assert.Len(t, result1, 2)

	result2, err := loaders.SpeakersByVideoID.Load(ctx, video2)()
	require.NoError(t, err)
	assert.Len(t, result2, 1)
}

func TestSpeakersLoader_EmptyResult(t *testing.T) {
	repos := emptyRepos()
	loaders := dl.NewLoaders(repos)

	result, err := loaders.SpeakersByVideoID.Load(context.Background(), uuid.New())()
	require.NoError(t, err)
	assert.NotNil(t, result, "should return empty slice, not nil")
	assert.Empty(t, result)
}

func TestCategoriesLoader_GroupsByVideoID(t *testing.T) {
	video1 := uuid.New()
	video2 := uuid.New()

	repos := emptyRepos()
	repos.Category = &mockCategoryRepo{
		result: []category.VideoCategory{
			{VideoID: video1, Category: domain.Category{ID: uuid.New()}},
			{VideoID: video2, Category: domain.Category{ID: uuid.New()}},
			{VideoID: video2, Category: domain.Category{ID: uuid.New()}},
		},
	}

	loaders := dl.NewLoaders(repos)
	ctx := context.Background()

	result1, err := loaders.CategoriesByVideoID.Load(ctx, video1)()
	require.NoError(t, err)
	assert.Len(t, result1, 1)

	result2, err := loaders.CategoriesByVideoID.Load(ctx, video2)()
	require.NoError(t, err)
	assert.Len(t, result2, 2)
}

func TestSubCategoriesLoader_EmptyResult(t *testing.T) {
	repos := emptyRepos()
	loaders := dl.NewLoaders(repos)

	result, err := loaders.SubCategoriesByVideoID.Load(context.Background(), uuid.New())()
	require.NoError(t, err)
	assert.NotNil(t, result, "should return empty slice, not nil")
	assert.Empty(t, result)
}

func TestTagsLoader_GroupsByVideoID(t *testing.T) {
	video1 := uuid.New()
	video2 := uuid.New()

	repos := emptyRepos()
	repos.Tag = &mockTagRepo{
		result: []domain.Tag{
			{ID: uuid.New(), VideoID: video1, Slug: "sleep"},
			{ID: uuid.New(), VideoID: video1, Slug: "health"},
			{ID: uuid.New(), VideoID: video2, Slug: "sleep"},
		},
	}

	loaders := dl.NewLoaders(repos)
	ctx := context.Background()

	result1, err := loaders.TagsByVideoID.Load(ctx, video1)()
	require.NoError(t, err)
	assert.Len(t, result1, 2)

	result2, err := loaders.TagsByVideoID.Load(ctx, video2)()
	require.NoError(t, err)
	assert.Len(t, result2, 1)
}

func TestSourceLoader_NullableResult(t *testing.T) {
	source1 := uuid.New()
	source2 := uuid.New() // no row for this id

	repos := emptyRepos()
	repos.Source = &mockSourceRepo{
		result: []domain.Source{
			{ID: source1, Slug: "ted", Name: "TED"},
		},
	}

	loaders := dl.NewLoaders(repos)
	ctx := context.Background()

	result1, err := loaders.SourceByID.Load(ctx, source1)()
	require.NoError(t, err)
	require.NotNil(t, result1)
	assert.Equal(t, "ted", result1.Slug)

	result2, err := loaders.SourceByID.Load(ctx, source2)()
	require.NoError(t, err)
	assert.Nil(t, result2, "should return nil for missing source")
}

func TestUserLoader_NullableResult(t *testing.T) {
	user1 := uuid.New()
	user2 := uuid.New()

	repos := emptyRepos()
	repos.User = &mockUserRepo{
		result: []domain.User{
			{ID: user1, Username: "alice"},
		},
	}

	loaders := dl.NewLoaders(repos)
	ctx := context.Background()

	result1, err := loaders.UserByID.Load(ctx, user1)()
	require.NoError(t, err)
	require.NotNil(t, result1)
	assert.Equal(t, "alice", result1.Username)

	result2, err := loaders.UserByID.Load(ctx, user2)()
	require.NoError(t, err)
	assert.Nil(t, result2, "should return nil for missing user")
}

func TestSpeakersLoader_PropagatesError(t *testing.T) {
	repos := emptyRepos()
	repos.Speaker = &mockSpeakerRepo{err: errors.New("connection reset")}

	loaders := dl.NewLoaders(repos)

	_, err := loaders.SpeakersByVideoID.Load(context.Background(), uuid.New())()
	require.Error(t, err)
}
