package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/internal/service/browse"
	"github.com/saveschool/catalog-backend/internal/service/catalog"
	"github.com/saveschool/catalog-backend/internal/service/importer"
)

// Hand-written service mocks. Unset funcs fail loudly so tests only exercise
// the methods they stub.

type catalogServiceMock struct {
	CreateVideoFunc       func(ctx context.Context, input catalog.CreateVideoInput) (*domain.Video, error)
	UpdateVideoFunc       func(ctx context.Context, input catalog.UpdateVideoInput) (*domain.Video, error)
	PublishVideoFunc      func(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	IncreaseViewsFunc     func(ctx context.Context, videoSlug string) (*domain.Video, error)
	CreateSourceFunc      func(ctx context.Context, input catalog.CreateSourceInput) (*domain.Source, error)
	UpdateSourceFunc      func(ctx context.Context, input catalog.UpdateSourceInput) (*domain.Source, error)
	CreateSpeakerFunc     func(ctx context.Context, input catalog.CreateSpeakerInput) (*domain.Speaker, error)
	UpdateSpeakerFunc     func(ctx context.Context, input catalog.UpdateSpeakerInput) (*domain.Speaker, error)
	CreateCategoryFunc    func(ctx context.Context, input catalog.CreateCategoryInput) (*domain.Category, error)
	CreateSubCategoryFunc func(ctx context.Context, input catalog.CreateSubCategoryInput) (*domain.SubCategory, error)
}

func (m *catalogServiceMock) CreateVideo(ctx context.Context, input catalog.CreateVideoInput) (*domain.Video, error) {
	return m.CreateVideoFunc(ctx, input)
}

func (m *catalogServiceMock) UpdateVideo(ctx context.Context, input catalog.UpdateVideoInput) (*domain.Video, error) {
	return m.UpdateVideoFunc(ctx, input)
}

func (m *catalogServiceMock) PublishVideo(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	return m.PublishVideoFunc(ctx, id)
}

func (m *catalogServiceMock) IncreaseViews(ctx context.Context, videoSlug string) (*domain.Video, error) {
	return m.IncreaseViewsFunc(ctx, videoSlug)
}

func (m *catalogServiceMock) CreateSource(ctx context.Context, input catalog.CreateSourceInput) (*domain.Source, error) {
	return m.CreateSourceFunc(ctx, input)
}

func (m *catalogServiceMock) UpdateSource(ctx context.Context, input catalog.UpdateSourceInput) (*domain.Source, error) {
	return m.UpdateSourceFunc(ctx, input)
}

func (m *catalogServiceMock) CreateSpeaker(ctx context.Context, input catalog.CreateSpeakerInput) (*domain.Speaker, error) {
	return m.CreateSpeakerFunc(ctx, input)
}

func (m *catalogServiceMock) UpdateSpeaker(ctx context.Context, input catalog.UpdateSpeakerInput) (*domain.Speaker, error) {
	return m.UpdateSpeakerFunc(ctx, input)
}

func (m *catalogServiceMock) CreateCategory(ctx context.Context, input catalog.CreateCategoryInput) (*domain.Category, error) {
	return m.CreateCategoryFunc(ctx, input)
}

func (m *catalogServiceMock) CreateSubCategory(ctx context.Context, input catalog.CreateSubCategoryInput) (*domain.SubCategory, error) {
	return m.CreateSubCategoryFunc(ctx, input)
}

type importerServiceMock struct {
	ImportVideoFunc    func(ctx context.Context, input importer.ImportVideoInput) (*domain.Video, error)
	ImportUserFunc     func(ctx context.Context, input importer.ImportUserInput) (*domain.User, error)
	ImportPlaylistFunc func(ctx context.Context, input importer.ImportPlaylistInput) (*domain.Playlist, error)
}

func (m *importerServiceMock) ImportVideo(ctx context.Context, input importer.ImportVideoInput) (*domain.Video, error) {
	return m.ImportVideoFunc(ctx, input)
}

func (m *importerServiceMock) ImportUser(ctx context.Context, input importer.ImportUserInput) (*domain.User, error) {
	return m.ImportUserFunc(ctx, input)
}

func (m *importerServiceMock) ImportPlaylist(ctx context.Context, input importer.ImportPlaylistInput) (*domain.Playlist, error) {
	return m.ImportPlaylistFunc(ctx, input)
}

type browseServiceMock struct {
	VideoFunc          func(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	VideoBySlugFunc    func(ctx context.Context, slug string) (*domain.Video, error)
	VideosFunc         func(ctx context.Context, f domain.VideoFilter) ([]domain.Video, *string, error)
	MenusFunc          func(ctx context.Context) ([]domain.Menu, error)
	SpeakerFunc        func(ctx context.Context, id uuid.UUID) (*domain.Speaker, error)
	SpeakerBySlugFunc  func(ctx context.Context, slug string) (*domain.Speaker, error)
	SourceFunc         func(ctx context.Context, id uuid.UUID) (*domain.Source, error)
	SourceBySlugFunc   func(ctx context.Context, slug string) (*domain.Source, error)
	SponsorFunc        func(ctx context.Context, username string) (*domain.User, error)
	CreatorFunc        func(ctx context.Context, username string) (*domain.User, error)
	CategoryBySlugFunc func(ctx context.Context, slug string) (*domain.Category, error)
	TagBySlugFunc      func(ctx context.Context, slug string) (*domain.Tag, error)
	PlaylistBySlugFunc func(ctx context.Context, slug string) (*domain.Playlist, error)
	SearchListFunc     func(ctx context.Context, query string) (*browse.SearchResult, error)
	SourcesFunc        func(ctx context.Context, search, orderBy string) ([]domain.SourceCount, error)
	SpeakersFunc       func(ctx context.Context, search, orderBy string) ([]domain.SpeakerCount, error)
	CategoriesFunc     func(ctx context.Context, orderBy string) ([]domain.CategoryCount, error)
	SubCategoriesFunc  func(ctx context.Context, categoryID uuid.UUID, orderBy string) ([]domain.SubCategoryCount, error)
	TagsFunc           func(ctx context.Context, orderBy string) ([]domain.TagCount, error)
	PlaylistsFunc      func(ctx context.Context, orderBy string) ([]domain.PlaylistCount, error)
	SponsorsFunc       func(ctx context.Context, orderBy string) ([]domain.UserCount, error)
	CreatorsFunc       func(ctx context.Context, orderBy string) ([]domain.UserCount, error)
}

func (m *browseServiceMock) Video(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	return m.VideoFunc(ctx, id)
}

func (m *browseServiceMock) VideoBySlug(ctx context.Context, slug string) (*domain.Video, error) {
	return m.VideoBySlugFunc(ctx, slug)
}

func (m *browseServiceMock) Videos(ctx context.Context, f domain.VideoFilter) ([]domain.Video, *string, error) {
	return m.VideosFunc(ctx, f)
}

func (m *browseServiceMock) Menus(ctx context.Context) ([]domain.Menu, error) {
	return m.MenusFunc(ctx)
}

func (m *browseServiceMock) Speaker(ctx context.Context, id uuid.UUID) (*domain.Speaker, error) {
	return m.SpeakerFunc(ctx, id)
}

func (m *browseServiceMock) SpeakerBySlug(ctx context.Context, slug string) (*domain.Speaker, error) {
	return m.SpeakerBySlugFunc(ctx, slug)
}

func (m *browseServiceMock) Source(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	return m.SourceFunc(ctx, id)
}

func (m *browseServiceMock) SourceBySlug(ctx context.Context, slug string) (*domain.Source, error) {
	return m.SourceBySlugFunc(ctx, slug)
}

func (m *browseServiceMock) Sponsor(ctx context.Context, username string) (*domain.User, error) {
	return m.SponsorFunc(ctx, username)
}

func (m *browseServiceMock) Creator(ctx context.Context, username string) (*domain.User, error) {
	return m.CreatorFunc(ctx, username)
}

func (m *browseServiceMock) CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return m.CategoryBySlugFunc(ctx, slug)
}

func (m *browseServiceMock) TagBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	return m.TagBySlugFunc(ctx, slug)
}

func (m *browseServiceMock) PlaylistBySlug(ctx context.Context, slug string) (*domain.Playlist, error) {
	return m.PlaylistBySlugFunc(ctx, slug)
}

func (m *browseServiceMock) SearchList(ctx context.Context, query string) (*browse.SearchResult, error) {
	return m.SearchListFunc(ctx, query)
}

func (m *browseServiceMock) Sources(ctx context.Context, search, orderBy string) ([]domain.SourceCount, error) {
	return m.SourcesFunc(ctx, search, orderBy)
}

func (m *browseServiceMock) Speakers(ctx context.Context, search, orderBy string) ([]domain.SpeakerCount, error) {
	return m.SpeakersFunc(ctx, search, orderBy)
}

func (m *browseServiceMock) Categories(ctx context.Context, orderBy string) ([]domain.CategoryCount, error) {
	return m.CategoriesFunc(ctx, orderBy)
}

func (m *browseServiceMock) SubCategories(ctx context.Context, categoryID uuid.UUID, orderBy string) ([]domain.SubCategoryCount, error) {
	return m.SubCategoriesFunc(ctx, categoryID, orderBy)
}

func (m *browseServiceMock) Tags(ctx context.Context, orderBy string) ([]domain.TagCount, error) {
	return m.TagsFunc(ctx, orderBy)
}

func (m *browseServiceMock) Playlists(ctx context.Context, orderBy string) ([]domain.PlaylistCount, error) {
	return m.PlaylistsFunc(ctx, orderBy)
}

func (m *browseServiceMock) Sponsors(ctx context.Context, orderBy string) ([]domain.UserCount, error) {
	return m.SponsorsFunc(ctx, orderBy)
}

func (m *browseServiceMock) Creators(ctx context.Context, orderBy string) ([]domain.UserCount, error) {
	return m.CreatorsFunc(ctx, orderBy)
}

func ptr[T any](v T) *T { return &v }
