package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/internal/service/catalog"
	"github.com/saveschool/catalog-backend/internal/service/importer"
	"github.com/saveschool/catalog-backend/internal/transport/graphql/generated"
	"github.com/saveschool/catalog-backend/pkg/ctxutil"
)

// ============================================================================
// Video mutations
// ============================================================================

func TestCreateVideo_Success(t *testing.T) {
	t.Parallel()

	videoID := uuid.New()
	sourceID := uuid.New()

	var gotInput catalog.CreateVideoInput
	mock := &catalogServiceMock{
		CreateVideoFunc: func(ctx context.Context, input catalog.CreateVideoInput) (*domain.Video, error) {
			gotInput = input
			return &domain.Video{ID: videoID, Slug: input.Slug, Title: input.Title}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{catalog: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.CreateVideo(ctx, generated.CreateVideoInput{
		Slug:        "why-we-sleep",
		Title:       "Why we sleep",
		MediaID:     "yt:abc123",
		Description: ptr("a talk about sleep"),
		Duration:    ptr(900),
		SourceID:    &sourceID,
		Tags:        []string{"Sleep", "Health"},
	})

	require.NoError(t, err)
	require.NotNil(t, result.Video)
	require.Equal(t, videoID, result.Video.ID)
	require.Equal(t, "why-we-sleep", gotInput.Slug)
	require.Equal(t, "a talk about sleep", gotInput.Description)
	require.Equal(t, 900, gotInput.Duration)
	require.Equal(t, &sourceID, gotInput.SourceID)
	require.Equal(t, []string{"Sleep", "Health"}, gotInput.Tags)
}

func TestCreateVideo_OptionalFieldsDefaultToZero(t *testing.T) {
	t.Parallel()

	var gotInput catalog.CreateVideoInput
	mock := &catalogServiceMock{
		CreateVideoFunc: func(ctx context.Context, input catalog.CreateVideoInput) (*domain.Video, error) {
			gotInput = input
			return &domain.Video{ID: uuid.New()}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{catalog: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := resolver.CreateVideo(ctx, generated.CreateVideoInput{
		Slug:    "s",
		Title:   "t",
		MediaID: "m",
	})

	require.NoError(t, err)
	require.Equal(t, "", gotInput.Description)
	require.Equal(t, 0, gotInput.Duration)
	require.Nil(t, gotInput.SourceID)
	require.Nil(t, gotInput.Tags)
}

func TestCreateVideo_Forbidden(t *testing.T) {
	t.Parallel()

	mock := &catalogServiceMock{
		CreateVideoFunc: func(ctx context.Context, input catalog.CreateVideoInput) (*domain.Video, error) {
			return nil, domain.ErrForbidden
		},
	}

	resolver := &mutationResolver{&Resolver{catalog: mock}}

	result, err := resolver.CreateVideo(context.Background(), generated.CreateVideoInput{
		Slug: "s", Title: "t", MediaID: "m",
	})

	require.ErrorIs(t, err, domain.ErrForbidden)
	require.Nil(t, result)
}

func TestUpdateVideo_Success(t *testing.T) {
	t.Parallel()

	videoID := uuid.New()

	var gotInput catalog.UpdateVideoInput
	mock := &catalogServiceMock{
		UpdateVideoFunc: func(ctx context.Context, input catalog.UpdateVideoInput) (*domain.Video, error) {
			gotInput = input
			return &domain.Video{ID: input.ID, Title: input.Title}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{catalog: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.UpdateVideo(ctx, generated.UpdateVideoInput{
		ID:      videoID,
		Slug:    "why-we-sleep",
		Title:   "Why we sleep (updated)",
		MediaID: "yt:abc123",
	})

	require.NoError(t, err)
	require.Equal(t, videoID, result.Video.ID)
	require.Equal(t, videoID, gotInput.ID)
	require.Equal(t, "Why we sleep (updated)", gotInput.Title)
}

func TestPublishVideo_Success(t *testing.T) {
	t.Parallel()

	videoID := uuid.New()

	mock := &catalogServiceMock{
		PublishVideoFunc: func(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
			return &domain.Video{ID: id, IsPublished: true}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{catalog: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.PublishVideo(ctx, videoID)

	require.NoError(t, err)
	require.True(t, result.Video.IsPublished)
}

func TestIncreaseViews_Success(t *testing.T) {
	t.Parallel()

	mock := &catalogServiceMock{
		IncreaseViewsFunc: func(ctx context.Context, videoSlug string) (*domain.Video, error) {
			require.Equal(t, "why-we-sleep", videoSlug)
			return &domain.Video{Slug: videoSlug, ViewAmount: 43}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{catalog: mock}}

	result, err := resolver.IncreaseViews(context.Background(), "why-we-sleep")

	require.NoError(t, err)
	require.Equal(t, 43, result.Video.ViewAmount)
}

// ============================================================================
// Source / Speaker / Category mutations
// ============================================================================

func TestCreateSource_Success(t *testing.T) {
	t.Parallel()

	var gotInput catalog.CreateSourceInput
	mock := &catalogServiceMock{
		CreateSourceFunc: func(ctx context.Context, input catalog.CreateSourceInput) (*domain.Source, error) {
			gotInput = input
			return &domain.Source{ID: uuid.New(), Slug: input.Slug, Name: input.Name}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{catalog: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.CreateSource(ctx, generated.CreateSourceInput{
		Slug: "ted",
		Name: "TED",
	})

	require.NoError(t, err)
	require.Equal(t, "TED", result.Source.Name)
	require.Equal(t, "", gotInput.Description)
}

func TestUpdateSpeaker_NotFound(t *testing.T) {
	t.Parallel()

	mock := &catalogServiceMock{
		UpdateSpeakerFunc: func(ctx context.Context, input catalog.UpdateSpeakerInput) (*domain.Speaker, error) {
			return nil, domain.ErrNotFound
		},
	}

	resolver := &mutationResolver{&Resolver{catalog: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.UpdateSpeaker(ctx, generated.UpdateSpeakerInput{
		ID: uuid.New(), Slug: "s", Name: "n",
	})

	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Nil(t, result)
}

func TestCreateCategory_Success(t *testing.T) {
	t.Parallel()

	var gotInput catalog.CreateCategoryInput
	mock := &catalogServiceMock{
		CreateCategoryFunc: func(ctx context.Context, input catalog.CreateCategoryInput) (*domain.Category, error) {
			gotInput = input
			return &domain.Category{ID: uuid.New(), Slug: input.Slug, Priority: input.Priority}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{catalog: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.CreateCategory(ctx, generated.CreateCategoryInput{
		Slug:     "science",
		Name:     "Science",
		Priority: ptr(3),
	})

	require.NoError(t, err)
	require.Equal(t, 3, result.Category.Priority)
	require.Equal(t, 3, gotInput.Priority)
}

func TestCreateSubCategory_Success(t *testing.T) {
	t.Parallel()

	var gotInput catalog.CreateSubCategoryInput
	mock := &catalogServiceMock{
		CreateSubCategoryFunc: func(ctx context.Context, input catalog.CreateSubCategoryInput) (*domain.SubCategory, error) {
			gotInput = input
			return &domain.SubCategory{ID: uuid.New(), Slug: input.Slug}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{catalog: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.CreateSubCategory(ctx, generated.CreateSubCategoryInput{
		CategorySlug: "science",
		Slug:         "astronomy",
		Name:         "Astronomy",
	})

	require.NoError(t, err)
	require.Equal(t, "astronomy", result.SubCategory.Slug)
	require.Equal(t, "science", gotInput.CategorySlug)
}

// ============================================================================
// Import mutations
// ============================================================================

func TestImportVideo_MapsAllFields(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2019, 5, 1, 10, 0, 0, 0, time.UTC)
	publishedAt := createdAt.Add(24 * time.Hour)

	var gotInput importer.ImportVideoInput
	mock := &importerServiceMock{
		ImportVideoFunc: func(ctx context.Context, input importer.ImportVideoInput) (*domain.Video, error) {
			gotInput = input
			return &domain.Video{ID: uuid.New(), Slug: input.Slug}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{importer: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.ImportVideo(ctx, generated.ImportVideoInput{
		Slug:             "old-talk",
		Title:            "Old talk",
		MediaID:          "yt:xyz",
		ViewAmount:       ptr(12345),
		IsPublished:      ptr(true),
		CreatedAt:        createdAt,
		CreatedBy:        ptr("alice"),
		PublishedAt:      &publishedAt,
		PublishedBy:      ptr("bob"),
		SourceSlug:       ptr("ted"),
		SpeakerSlugs:     []string{"jane-doe"},
		CategorySlugs:    []string{"science"},
		SubCategorySlugs: []string{"astronomy"},
		Tags:             []string{"Sleep"},
	})

	require.NoError(t, err)
	require.Equal(t, "old-talk", result.Video.Slug)
	require.Equal(t, 12345, gotInput.ViewAmount)
	require.True(t, gotInput.IsPublished)
	require.Equal(t, createdAt, gotInput.CreatedAt)
	require.Equal(t, "alice", gotInput.CreatedBy)
	require.Equal(t, &publishedAt, gotInput.PublishedAt)
	require.Equal(t, "bob", gotInput.PublishedBy)
	require.Equal(t, "ted", gotInput.SourceSlug)
	require.Equal(t, []string{"jane-doe"}, gotInput.SpeakerSlugs)
}

func TestImportUser_MapsRole(t *testing.T) {
	t.Parallel()

	var gotInput importer.ImportUserInput
	mock := &importerServiceMock{
		ImportUserFunc: func(ctx context.Context, input importer.ImportUserInput) (*domain.User, error) {
			gotInput = input
			return &domain.User{ID: uuid.New(), Username: input.Username}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{importer: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	result, err := resolver.ImportUser(ctx, generated.ImportUserInput{
		Username: "alice",
		Role:     "POSTER",
		IsActive: ptr(true),
		Password: ptr("s3cret"),
	})

	require.NoError(t, err)
	require.Equal(t, "alice", result.User.Username)
	require.Equal(t, domain.RolePoster, gotInput.Role)
	require.True(t, gotInput.IsActive)
	require.Equal(t, "s3cret", gotInput.Password)
}

func TestImportUser_ActiveByDefault(t *testing.T) {
	t.Parallel()

	var gotInput importer.ImportUserInput
	mock := &importerServiceMock{
		ImportUserFunc: func(ctx context.Context, input importer.ImportUserInput) (*domain.User, error) {
			gotInput = input
			return &domain.User{ID: uuid.New(), Username: input.Username}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{importer: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	// isActive omitted: imported accounts start active, matching the
	// schema default. An explicit false still deactivates.
	_, err := resolver.ImportUser(ctx, generated.ImportUserInput{
		Username: "bob",
		Role:     "MODERATOR",
	})
	require.NoError(t, err)
	require.True(t, gotInput.IsActive)

	_, err = resolver.ImportUser(ctx, generated.ImportUserInput{
		Username: "eve",
		Role:     "MODERATOR",
		IsActive: ptr(false),
	})
	require.NoError(t, err)
	require.False(t, gotInput.IsActive)
}

func TestImportPlaylist_Forbidden(t *testing.T) {
	t.Parallel()

	mock := &importerServiceMock{
		ImportPlaylistFunc: func(ctx context.Context, input importer.ImportPlaylistInput) (*domain.Playlist, error) {
			return nil, domain.ErrForbidden
		},
	}

	resolver := &mutationResolver{&Resolver{importer: mock}}

	result, err := resolver.ImportPlaylist(context.Background(), generated.ImportPlaylistInput{
		Slug: "favorites",
		Name: "Favorites",
	})

	require.ErrorIs(t, err, domain.ErrForbidden)
	require.Nil(t, result)
}
