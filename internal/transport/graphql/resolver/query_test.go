package resolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/internal/service/browse"
	"github.com/saveschool/catalog-backend/internal/transport/graphql/generated"
)

func TestQueryVideo_ByID(t *testing.T) {
	t.Parallel()

	videoID := uuid.New()

	mock := &browseServiceMock{
		VideoFunc: func(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
			require.Equal(t, videoID, id)
			return &domain.Video{ID: id}, nil
		},
	}

	resolver := &queryResolver{&Resolver{browse: mock}}

	got, err := resolver.Video(context.Background(), &videoID, nil)

	require.NoError(t, err)
	require.Equal(t, videoID, got.ID)
}

func TestQueryVideo_BySlug(t *testing.T) {
	t.Parallel()

	mock := &browseServiceMock{
		VideoBySlugFunc: func(ctx context.Context, slug string) (*domain.Video, error) {
			require.Equal(t, "why-we-sleep", slug)
			return &domain.Video{Slug: slug}, nil
		},
	}

	resolver := &queryResolver{&Resolver{browse: mock}}

	got, err := resolver.Video(context.Background(), nil, ptr("why-we-sleep"))

	require.NoError(t, err)
	require.Equal(t, "why-we-sleep", got.Slug)
}

func TestQueryVideo_NoArgument(t *testing.T) {
	t.Parallel()

	resolver := &queryResolver{&Resolver{browse: &browseServiceMock{}}}

	got, err := resolver.Video(context.Background(), nil, nil)

	require.ErrorIs(t, err, domain.ErrValidation)
	require.Nil(t, got)
}

func TestQueryVideo_IDWinsOverSlug(t *testing.T) {
	t.Parallel()

	videoID := uuid.New()

	mock := &browseServiceMock{
		VideoFunc: func(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
			return &domain.Video{ID: id}, nil
		},
	}

	resolver := &queryResolver{&Resolver{browse: mock}}

	got, err := resolver.Video(context.Background(), &videoID, ptr("ignored"))

	require.NoError(t, err)
	require.Equal(t, videoID, got.ID)
}

func TestQueryVideo_AbsentIsNil(t *testing.T) {
	t.Parallel()

	mock := &browseServiceMock{
		VideoBySlugFunc: func(ctx context.Context, slug string) (*domain.Video, error) {
			return nil, nil
		},
	}

	resolver := &queryResolver{&Resolver{browse: mock}}

	got, err := resolver.Video(context.Background(), nil, ptr("missing"))

	require.NoError(t, err)
	require.Nil(t, got)
}

func TestQueryVideos_MapsFilter(t *testing.T) {
	t.Parallel()

	speakerID := uuid.New()

	var gotFilter domain.VideoFilter
	mock := &browseServiceMock{
		VideosFunc: func(ctx context.Context, f domain.VideoFilter) ([]domain.Video, *string, error) {
			gotFilter = f
			next := "cursor-2"
			return []domain.Video{{ID: uuid.New()}}, &next, nil
		},
	}

	resolver := &queryResolver{&Resolver{browse: mock}}

	got, err := resolver.Videos(context.Background(),
		&generated.VideoFilterInput{
			IsPublished: ptr(true),
			CreatedBy:   ptr("alice"),
			SpeakerID:   &speakerID,
			Tag:         ptr("sleep"),
			Title:       ptr("why"),
		},
		ptr("-view_amount"), ptr(10), ptr("cursor-1"),
	)

	require.NoError(t, err)
	require.Len(t, got.Videos, 1)
	require.Equal(t, "cursor-2", *got.NextCursor)
	require.True(t, *gotFilter.IsPublished)
	require.Equal(t, "alice", *gotFilter.CreatedBy)
	require.Equal(t, &speakerID, gotFilter.SpeakerID)
	require.Equal(t, "sleep", *gotFilter.TagSlug)
	require.Equal(t, "why", *gotFilter.TitleSearch)
	require.Equal(t, "-view_amount", gotFilter.OrderBy)
	require.Equal(t, 10, gotFilter.Limit)
	require.Equal(t, "cursor-1", *gotFilter.Cursor)
}

func TestQueryVideos_NilFilter(t *testing.T) {
	t.Parallel()

	var gotFilter domain.VideoFilter
	mock := &browseServiceMock{
		VideosFunc: func(ctx context.Context, f domain.VideoFilter) ([]domain.Video, *string, error) {
			gotFilter = f
			return []domain.Video{}, nil, nil
		},
	}

	resolver := &queryResolver{&Resolver{browse: mock}}

	got, err := resolver.Videos(context.Background(), nil, nil, nil, nil)

	require.NoError(t, err)
	require.Empty(t, got.Videos)
	require.Nil(t, got.NextCursor)
	require.Nil(t, gotFilter.IsPublished)
	require.Equal(t, "", gotFilter.OrderBy)
}

func TestQuerySearchList_MapsResult(t *testing.T) {
	t.Parallel()

	mock := &browseServiceMock{
		SearchListFunc: func(ctx context.Context, query string) (*browse.SearchResult, error) {
			require.Equal(t, "sleep", query)
			return &browse.SearchResult{
				Videos:   []domain.Video{{ID: uuid.New()}},
				Speakers: []domain.SpeakerCount{{Speaker: domain.Speaker{Slug: "jane"}, VideoAmount: 2}},
				Sources:  []domain.SourceCount{},
			}, nil
		},
	}

	resolver := &queryResolver{&Resolver{browse: mock}}

	got, err := resolver.SearchList(context.Background(), "sleep")

	require.NoError(t, err)
	require.Len(t, got.Videos, 1)
	require.Len(t, got.Speakers, 1)
	require.Equal(t, 2, got.Speakers[0].VideoAmount)
	require.Empty(t, got.Sources)
}

func TestQuerySources_ArgumentOrder(t *testing.T) {
	t.Parallel()

	mock := &browseServiceMock{
		SourcesFunc: func(ctx context.Context, search, orderBy string) ([]domain.SourceCount, error) {
			require.Equal(t, "ted", search)
			require.Equal(t, "name", orderBy)
			return []domain.SourceCount{}, nil
		},
	}

	resolver := &queryResolver{&Resolver{browse: mock}}

	_, err := resolver.Sources(context.Background(), ptr("name"), ptr("ted"))

	require.NoError(t, err)
}

func TestQuerySponsor_AbsentIsNil(t *testing.T) {
	t.Parallel()

	mock := &browseServiceMock{
		SponsorFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return nil, nil
		},
	}

	resolver := &queryResolver{&Resolver{browse: mock}}

	got, err := resolver.Sponsor(context.Background(), "nobody")

	require.NoError(t, err)
	require.Nil(t, got)
}

func TestQueryMenus(t *testing.T) {
	t.Parallel()

	mock := &browseServiceMock{
		MenusFunc: func(ctx context.Context) ([]domain.Menu, error) {
			return []domain.Menu{{Name: "Home", Link: "/", Priority: 1}}, nil
		},
	}

	resolver := &queryResolver{&Resolver{browse: mock}}

	got, err := resolver.Menus(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Home", got[0].Name)
}
