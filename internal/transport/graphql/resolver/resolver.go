package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/internal/service/browse"
	"github.com/saveschool/catalog-backend/internal/service/catalog"
	"github.com/saveschool/catalog-backend/internal/service/importer"
	"github.com/saveschool/catalog-backend/internal/transport/graphql/generated"
)

// catalogService defines what resolver needs from the Catalog service.
type catalogService interface {
	CreateVideo(ctx context.Context, input catalog.CreateVideoInput) (*domain.Video, error)
	UpdateVideo(ctx context.Context, input catalog.UpdateVideoInput) (*domain.Video, error)
	PublishVideo(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	IncreaseViews(ctx context.Context, videoSlug string) (*domain.Video, error)
	CreateSource(ctx context.Context, input catalog.CreateSourceInput) (*domain.Source, error)
	UpdateSource(ctx context.Context, input catalog.UpdateSourceInput) (*domain.Source, error)
	CreateSpeaker(ctx context.Context, input catalog.CreateSpeakerInput) (*domain.Speaker, error)
	UpdateSpeaker(ctx context.Context, input catalog.UpdateSpeakerInput) (*domain.Speaker, error)
	CreateCategory(ctx context.Context, input catalog.CreateCategoryInput) (*domain.Category, error)
	CreateSubCategory(ctx context.Context, input catalog.CreateSubCategoryInput) (*domain.SubCategory, error)
}

// importerService defines what resolver needs from the Importer service.
type importerService interface {
	ImportVideo(ctx context.Context, input importer.ImportVideoInput) (*domain.Video, error)
	ImportUser(ctx context.Context, input importer.ImportUserInput) (*domain.User, error)
	ImportPlaylist(ctx context.Context, input importer.ImportPlaylistInput) (*domain.Playlist, error)
}

// browseService defines what resolver needs from the Browse service.
type browseService interface {
	Video(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	VideoBySlug(ctx context.Context, slug string) (*domain.Video, error)
	Videos(ctx context.Context, f domain.VideoFilter) ([]domain.Video, *string, error)
	Menus(ctx context.Context) ([]domain.Menu, error)
	Speaker(ctx context.Context, id uuid.UUID) (*domain.Speaker, error)
	SpeakerBySlug(ctx context.Context, slug string) (*domain.Speaker, error)
	Source(ctx context.Context, id uuid.UUID) (*domain.Source, error)
	SourceBySlug(ctx context.Context, slug string) (*domain.Source, error)
	Sponsor(ctx context.Context, username string) (*domain.User, error)
	Creator(ctx context.Context, username string) (*domain.User, error)
	CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	TagBySlug(ctx context.Context, slug string) (*domain.Tag, error)
	PlaylistBySlug(ctx context.Context, slug string) (*domain.Playlist, error)
	SearchList(ctx context.Context, query string) (*browse.SearchResult, error)
	Sources(ctx context.Context, search, orderBy string) ([]domain.SourceCount, error)
	Speakers(ctx context.Context, search, orderBy string) ([]domain.SpeakerCount, error)
	Categories(ctx context.Context, orderBy string) ([]domain.CategoryCount, error)
	SubCategories(ctx context.Context, categoryID uuid.UUID, orderBy string) ([]domain.SubCategoryCount, error)
	Tags(ctx context.Context, orderBy string) ([]domain.TagCount, error)
	Playlists(ctx context.Context, orderBy string) ([]domain.PlaylistCount, error)
	Sponsors(ctx context.Context, orderBy string) ([]domain.UserCount, error)
	Creators(ctx context.Context, orderBy string) ([]domain.UserCount, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	catalog  catalogService
	importer importerService
	browse   browseService
	log      *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	catalog catalogService,
	importer importerService,
	browse browseService,
) *Resolver {
	return &Resolver{
		catalog:  catalog,
		importer: importer,
		browse:   browse,
		log:      log.With("component", "graphql"),
	}
}

// Query returns the query resolver root.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

// Mutation returns the mutation resolver root.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Video returns the video field resolver root.
func (r *Resolver) Video() generated.VideoResolver { return &videoResolver{r} }

// Source returns the source field resolver root.
func (r *Resolver) Source() generated.SourceResolver { return &sourceResolver{r} }

// Speaker returns the speaker field resolver root.
func (r *Resolver) Speaker() generated.SpeakerResolver { return &speakerResolver{r} }

// Category returns the category field resolver root.
func (r *Resolver) Category() generated.CategoryResolver { return &categoryResolver{r} }

// SubCategory returns the subcategory field resolver root.
func (r *Resolver) SubCategory() generated.SubCategoryResolver { return &subCategoryResolver{r} }

// Tag returns the tag field resolver root.
func (r *Resolver) Tag() generated.TagResolver { return &tagResolver{r} }

// Playlist returns the playlist field resolver root.
func (r *Resolver) Playlist() generated.PlaylistResolver { return &playlistResolver{r} }

type queryResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type videoResolver struct{ *Resolver }
type sourceResolver struct{ *Resolver }
type speakerResolver struct{ *Resolver }
type categoryResolver struct{ *Resolver }
type subCategoryResolver struct{ *Resolver }
type tagResolver struct{ *Resolver }
type playlistResolver struct{ *Resolver }
