// Package dataloader provides per-request DataLoaders for batching GraphQL
// resolver queries into single SQL calls. DataLoaders call repositories
// directly, bypassing the service layer; they load public relation data
// only, so no authorization applies.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/saveschool/catalog-backend/internal/adapter/postgres/category"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/speaker"
	"github.com/saveschool/catalog-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type speakerRepo interface {
	GetByVideoIDs(ctx context.Context, videoIDs []uuid.UUID) ([]speaker.VideoSpeaker, error)
}

type categoryRepo interface {
	GetByVideoIDs(ctx context.Context, videoIDs []uuid.UUID) ([]category.VideoCategory, error)
	GetSubCategoriesByVideoIDs(ctx context.Context, videoIDs []uuid.UUID) ([]category.VideoSubCategory, error)
}

type tagRepo interface {
	GetByVideoIDs(ctx context.Context, videoIDs []uuid.UUID) ([]domain.Tag, error)
}

type sourceRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Source, error)
}

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// ---------------------------------------------------------------------------
// Repos aggregates all repositories needed by DataLoaders.
// ---------------------------------------------------------------------------

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Speaker  speakerRepo
	Category categoryRepo
	Tag      tagRepo
	Source   sourceRepo
	User     userRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders contains all DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	SpeakersByVideoID      *dataloader.Loader[uuid.UUID, []domain.Speaker]
	CategoriesByVideoID    *dataloader.Loader[uuid.UUID, []domain.Category]
	SubCategoriesByVideoID *dataloader.Loader[uuid.UUID, []domain.SubCategory]
	TagsByVideoID          *dataloader.Loader[uuid.UUID, []domain.Tag]
	SourceByID             *dataloader.Loader[uuid.UUID, *domain.Source]
	UserByID               *dataloader.Loader[uuid.UUID, *domain.User]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		SpeakersByVideoID:      newLoader(newSpeakersBatchFn(repos.Speaker)),
		CategoriesByVideoID:    newLoader(newCategoriesBatchFn(repos.Category)),
		SubCategoriesByVideoID: newLoader(newSubCategoriesBatchFn(repos.Category)),
		TagsByVideoID:          newLoader(newTagsBatchFn(repos.Tag)),
		SourceByID:             newLoader(newSourceBatchFn(repos.Source)),
		UserByID:               newLoader(newUserBatchFn(repos.User)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
