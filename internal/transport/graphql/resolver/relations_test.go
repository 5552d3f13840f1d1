package resolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/saveschool/catalog-backend/internal/adapter/postgres/category"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/speaker"
	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/internal/transport/graphql/dataloader"
)

// loaderRepos builds a dataloader repo set from in-memory rows.
type loaderSpeakerRepo struct{ rows []speaker.VideoSpeaker }

func (r *loaderSpeakerRepo) GetByVideoIDs(_ context.Context, _ []uuid.UUID) ([]speaker.VideoSpeaker, error) {
	return r.rows, nil
}

type loaderCategoryRepo struct {
	rows    []category.VideoCategory
	subRows []category.VideoSubCategory
}

func (r *loaderCategoryRepo) GetByVideoIDs(_ context.Context, _ []uuid.UUID) ([]category.VideoCategory, error) {
	return r.rows, nil
}

func (r *loaderCategoryRepo) GetSubCategoriesByVideoIDs(_ context.Context, _ []uuid.UUID) ([]category.VideoSubCategory, error) {
	return r.subRows, nil
}

type loaderTagRepo struct{ rows []domain.Tag }

func (r *loaderTagRepo) GetByVideoIDs(_ context.Context, _ []uuid.UUID) ([]domain.Tag, error) {
	return r.rows, nil
}

type loaderSourceRepo struct{ rows []domain.Source }

func (r *loaderSourceRepo) GetByIDs(_ context.Context, _ []uuid.UUID) ([]domain.Source, error) {
	return r.rows, nil
}

type loaderUserRepo struct{ rows []domain.User }

func (r *loaderUserRepo) GetByIDs(_ context.Context, _ []uuid.UUID) ([]domain.User, error) {
	return r.rows, nil
}

func loaderCtx(repos *dataloader.Repos) context.Context {
	if repos.Speaker == nil {
		repos.Speaker = &loaderSpeakerRepo{}
	}
	if repos.Category == nil {
		repos.Category = &loaderCategoryRepo{}
	}
	if repos.Tag == nil {
		repos.Tag = &loaderTagRepo{}
	}
	if repos.Source == nil {
		repos.Source = &loaderSourceRepo{}
	}
	if repos.User == nil {
		repos.User = &loaderUserRepo{}
	}
	return dataloader.WithLoaders(context.Background(), dataloader.NewLoaders(repos))
}

// ============================================================================
// Video relation fields
// ============================================================================

func TestVideoSpeakers_LoadsThroughDataloader(t *testing.T) {
	t.Parallel()

	video := &domain.Video{ID: uuid.New()}
	ctx := loaderCtx(&dataloader.Repos{
		Speaker: &loaderSpeakerRepo{rows: []speaker.VideoSpeaker{
			{VideoID: video.ID, Speaker: domain.Speaker{Slug: "jane-doe"}},
		}},
	})

	resolver := &videoResolver{&Resolver{}}

	got, err := resolver.Speakers(ctx, video)

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "jane-doe", got[0].Slug)
}

func TestVideoTags_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	ctx := loaderCtx(&dataloader.Repos{})
	resolver := &videoResolver{&Resolver{}}

	got, err := resolver.Tags(ctx, &domain.Video{ID: uuid.New()})

	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestVideoSource_NilWithoutSourceID(t *testing.T) {
	t.Parallel()

	// No loaders in context: the resolver must short-circuit before loading.
	resolver := &videoResolver{&Resolver{}}

	got, err := resolver.Source(context.Background(), &domain.Video{ID: uuid.New()})

	require.NoError(t, err)
	require.Nil(t, got)
}

func TestVideoSource_Loads(t *testing.T) {
	t.Parallel()

	sourceID := uuid.New()
	ctx := loaderCtx(&dataloader.Repos{
		Source: &loaderSourceRepo{rows: []domain.Source{{ID: sourceID, Slug: "ted"}}},
	})

	resolver := &videoResolver{&Resolver{}}

	got, err := resolver.Source(ctx, &domain.Video{ID: uuid.New(), SourceID: &sourceID})

	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "ted", got.Slug)
}

func TestVideoCreatedBy_Loads(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	ctx := loaderCtx(&dataloader.Repos{
		User: &loaderUserRepo{rows: []domain.User{{ID: userID, Username: "alice"}}},
	})

	resolver := &videoResolver{&Resolver{}}

	got, err := resolver.CreatedBy(ctx, &domain.Video{ID: uuid.New(), CreatedBy: userID})

	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "alice", got.Username)
}

func TestVideoPublishedBy_NilWhenUnpublished(t *testing.T) {
	t.Parallel()

	resolver := &videoResolver{&Resolver{}}

	got, err := resolver.PublishedBy(context.Background(), &domain.Video{ID: uuid.New()})

	require.NoError(t, err)
	require.Nil(t, got)
}

// ============================================================================
// Parent-scoped video collections
// ============================================================================

func TestSpeakerVideos_FiltersBySpeaker(t *testing.T) {
	t.Parallel()

	speakerID := uuid.New()

	var gotFilter domain.VideoFilter
	mock := &browseServiceMock{
		VideosFunc: func(ctx context.Context, f domain.VideoFilter) ([]domain.Video, *string, error) {
			gotFilter = f
			return []domain.Video{}, nil, nil
		},
	}

	resolver := &speakerResolver{&Resolver{browse: mock}}

	_, err := resolver.Videos(context.Background(), &domain.Speaker{ID: speakerID}, nil, nil, nil)

	require.NoError(t, err)
	require.Equal(t, &speakerID, gotFilter.SpeakerID)
	require.NotNil(t, gotFilter.IsPublished)
	require.True(t, *gotFilter.IsPublished)
}

func TestSourceVideos_FiltersBySourceSlug(t *testing.T) {
	t.Parallel()

	var gotFilter domain.VideoFilter
	mock := &browseServiceMock{
		VideosFunc: func(ctx context.Context, f domain.VideoFilter) ([]domain.Video, *string, error) {
			gotFilter = f
			return []domain.Video{}, nil, nil
		},
	}

	resolver := &sourceResolver{&Resolver{browse: mock}}

	_, err := resolver.Videos(context.Background(), &domain.Source{ID: uuid.New(), Slug: "ted"}, ptr("-view_amount"), ptr(5), nil)

	require.NoError(t, err)
	require.Equal(t, "ted", *gotFilter.Source)
	require.Equal(t, "-view_amount", gotFilter.OrderBy)
	require.Equal(t, 5, gotFilter.Limit)
}

func TestTagVideos_FiltersByTagSlug(t *testing.T) {
	t.Parallel()

	var gotFilter domain.VideoFilter
	mock := &browseServiceMock{
		VideosFunc: func(ctx context.Context, f domain.VideoFilter) ([]domain.Video, *string, error) {
			gotFilter = f
			return []domain.Video{}, nil, nil
		},
	}

	resolver := &tagResolver{&Resolver{browse: mock}}

	_, err := resolver.Videos(context.Background(), &domain.Tag{Slug: "sleep"}, nil, nil, nil)

	require.NoError(t, err)
	require.Equal(t, "sleep", *gotFilter.TagSlug)
}

func TestPlaylistVideos_FiltersByPlaylist(t *testing.T) {
	t.Parallel()

	playlistID := uuid.New()

	var gotFilter domain.VideoFilter
	mock := &browseServiceMock{
		VideosFunc: func(ctx context.Context, f domain.VideoFilter) ([]domain.Video, *string, error) {
			gotFilter = f
			return []domain.Video{}, nil, nil
		},
	}

	resolver := &playlistResolver{&Resolver{browse: mock}}

	_, err := resolver.Videos(context.Background(), &domain.Playlist{ID: playlistID}, nil, nil, nil)

	require.NoError(t, err)
	require.Equal(t, &playlistID, gotFilter.PlaylistID)
}

func TestCategorySubcategories_PassesParentAndOrder(t *testing.T) {
	t.Parallel()

	categoryID := uuid.New()

	mock := &browseServiceMock{
		SubCategoriesFunc: func(ctx context.Context, gotID uuid.UUID, orderBy string) ([]domain.SubCategoryCount, error) {
			require.Equal(t, categoryID, gotID)
			require.Equal(t, "priority", orderBy)
			return []domain.SubCategoryCount{{SubCategory: domain.SubCategory{Slug: "astronomy"}}}, nil
		},
	}

	resolver := &categoryResolver{&Resolver{browse: mock}}

	got, err := resolver.Subcategories(context.Background(), &domain.Category{ID: categoryID}, ptr("priority"))

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "astronomy", got[0].Slug)
}
