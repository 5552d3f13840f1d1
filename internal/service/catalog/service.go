// Package catalog implements the permission-gated mutation side of the
// content catalog: creating and updating videos, sources, speakers and
// categories, publication, and the public view counter.
package catalog

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
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Video, error)
	Insert(ctx context.Context, v *domain.Video) error
	Update(ctx context.Context, v *domain.Video) error
	MarkPublished(ctx context.Context, id, by uuid.UUID, at time.Time) error
	IncrementViews(ctx context.Context, slug string) (*domain.Video, error)
	ReplaceSpeakers(ctx context.Context, videoID uuid.UUID, speakerIDs []uuid.UUID) error
	ReplaceCategories(ctx context.Context, videoID uuid.UUID, categoryIDs []uuid.UUID) error
	ReplaceSubCategories(ctx context.Context, videoID uuid.UUID, subCategoryIDs []uuid.UUID) error
	ReplaceTags(ctx context.Context, videoID uuid.UUID, slugs []string) error
}

type sourceRepo interface {
	Create(ctx context.Context, s *domain.Source) error
	Update(ctx context.Context, s *domain.Source) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Source, error)
}

type speakerRepo interface {
	Create(ctx context.Context, s *domain.Speaker) error
	Update(ctx context.Context, s *domain.Speaker) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Speaker, error)
}

type categoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	CreateSubCategory(ctx context.Context, sc *domain.SubCategory) error
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

type userRepo interface {
	GetActor(ctx context.Context, userID uuid.UUID) (*domain.Actor, error)
}

type auditRepo interface {
	Append(ctx context.Context, e domain.AuditEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the catalog mutation logic.
type Service struct {
	log        *slog.Logger
	videos     videoRepo
	sources    sourceRepo
	speakers   speakerRepo
	categories categoryRepo
	users      userRepo
	audit      auditRepo
	tx         txManager

	now func() time.Time
}

// NewService creates a new Catalog service.
func NewService(
	logger *slog.Logger,
	videos videoRepo,
	sources sourceRepo,
	speakers speakerRepo,
	categories categoryRepo,
	users userRepo,
	audit auditRepo,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "catalog"),
		videos:     videos,
		sources:    sources,
		speakers:   speakers,
		categories: categories,
		users:      users,
		audit:      audit,
		tx:         tx,
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// ---------------------------------------------------------------------------
// Authorization helper
// ---------------------------------------------------------------------------

// authorize loads the calling actor from the context and checks the policy
// table. Returns ErrUnauthorized without an authenticated caller and
// ErrForbidden when the policy denies the action.
func (s *Service) authorize(ctx context.Context, action policy.Action, pctx policy.Context) (*domain.Actor, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	actor, err := s.users.GetActor(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !policy.Authorize(action, actor, pctx) {
		return nil, domain.ErrForbidden
	}

	return actor, nil
}
