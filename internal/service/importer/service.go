// Package importer implements the staff-only bulk-load operations. Imports
// accept caller-supplied timestamps, attribution and publication state
// verbatim and resolve entity references by slug or username, so they sit
// apart from the regular catalog mutations and their defaults.
package importer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/internal/domain/policy"
	"github.com/saveschool/catalog-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type videoRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Video, error)
	DeleteBySlug(ctx context.Context, slug string) (bool, error)
	Insert(ctx context.Context, v *domain.Video) error
	ReplaceSpeakers(ctx context.Context, videoID uuid.UUID, speakerIDs []uuid.UUID) error
	ReplaceCategories(ctx context.Context, videoID uuid.UUID, categoryIDs []uuid.UUID) error
	ReplaceSubCategories(ctx context.Context, videoID uuid.UUID, subCategoryIDs []uuid.UUID) error
	ReplaceTags(ctx context.Context, videoID uuid.UUID, slugs []string) error
}

type sourceRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Source, error)
}

type speakerRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Speaker, error)
}

type categoryRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	GetSubCategoryBySlug(ctx context.Context, categoryID uuid.UUID, slug string) (*domain.SubCategory, error)
}

type playlistRepo interface {
	Create(ctx context.Context, p *domain.Playlist) error
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID, priority int) error
}

type userRepo interface {
	GetActor(ctx context.Context, userID uuid.UUID) (*domain.Actor, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User, passwordHash string, p *domain.Profile) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the import operations.
type Service struct {
	log        *slog.Logger
	videos     videoRepo
	sources    sourceRepo
	speakers   speakerRepo
	categories categoryRepo
	playlists  playlistRepo
	users      userRepo
	tx         txManager

	now func() time.Time
}

// NewService creates a new Importer service.
func NewService(
	logger *slog.Logger,
	videos videoRepo,
	sources sourceRepo,
	speakers speakerRepo,
	categories categoryRepo,
	playlists playlistRepo,
	users userRepo,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "importer"),
		videos:     videos,
		sources:    sources,
		speakers:   speakers,
		categories: categories,
		playlists:  playlists,
		users:      users,
		tx:         tx,
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// authorize checks that the calling actor holds the import permission.
func (s *Service) authorize(ctx context.Context) (*domain.Actor, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	actor, err := s.users.GetActor(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !policy.Authorize(policy.ActionImport, actor, policy.Context{}) {
		return nil, domain.ErrForbidden
	}

	return actor, nil
}
