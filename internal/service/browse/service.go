// Package browse implements the read side of the catalog: lookups, filtered
// video collections, aggregate listings and the global search. Lookups for a
// missing id or slug resolve to nil rather than an error; only malformed
// arguments are reported.
package browse

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type videoRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Video, error)
	Find(ctx context.Context, f domain.VideoFilter) ([]domain.Video, *string, error)
}

type sourceRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Source, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Source, error)
	List(ctx context.Context, search, orderBy string) ([]domain.SourceCount, error)
	SearchByName(ctx context.Context, term string) ([]domain.SourceCount, error)
}

type speakerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Speaker, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Speaker, error)
	List(ctx context.Context, search, orderBy string) ([]domain.SpeakerCount, error)
	SearchByName(ctx context.Context, term string) ([]domain.SpeakerCount, error)
}

type categoryRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context, orderBy string) ([]domain.CategoryCount, error)
	ListSubCategories(ctx context.Context, categoryID uuid.UUID, orderBy string) ([]domain.SubCategoryCount, error)
}

type tagRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tag, error)
	List(ctx context.Context, orderBy string) ([]domain.TagCount, error)
}

type playlistRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Playlist, error)
	List(ctx context.Context, orderBy string) ([]domain.PlaylistCount, error)
}

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ListSponsors(ctx context.Context, orderBy string) ([]domain.UserCount, error)
	ListCreators(ctx context.Context, orderBy string) ([]domain.UserCount, error)
}

type menuRepo interface {
	List(ctx context.Context) ([]domain.Menu, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the catalog read operations.
type Service struct {
	log        *slog.Logger
	videos     videoRepo
	sources    sourceRepo
	speakers   speakerRepo
	categories categoryRepo
	tags       tagRepo
	playlists  playlistRepo
	users      userRepo
	menus      menuRepo
}

// NewService creates a new Browse service.
func NewService(
	logger *slog.Logger,
	videos videoRepo,
	sources sourceRepo,
	speakers speakerRepo,
	categories categoryRepo,
	tags tagRepo,
	playlists playlistRepo,
	users userRepo,
	menus menuRepo,
) *Service {
	return &Service{
		log:        logger.With("service", "browse"),
		videos:     videos,
		sources:    sources,
		speakers:   speakers,
		categories: categories,
		tags:       tags,
		playlists:  playlists,
		users:      users,
		menus:      menus,
	}
}
