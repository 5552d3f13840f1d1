package resolver

import (
	"context"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/internal/transport/graphql/generated"
)

// Parent-scoped video collections. Each one narrows the shared video filter
// to its parent and delegates to the browse service; pagination semantics
// are identical to the top-level videos query.

func (r *sourceResolver) Videos(ctx context.Context, obj *domain.Source, orderBy *string, limit *int, cursor *string) (*generated.VideoConnection, error) {
	f := pageFilter(orderBy, limit, cursor)
	f.Source = &obj.Slug
	return r.videoConnection(ctx, f)
}

func (r *speakerResolver) Videos(ctx context.Context, obj *domain.Speaker, orderBy *string, limit *int, cursor *string) (*generated.VideoConnection, error) {
	f := pageFilter(orderBy, limit, cursor)
	f.SpeakerID = &obj.ID
	return r.videoConnection(ctx, f)
}

func (r *categoryResolver) Videos(ctx context.Context, obj *domain.Category, orderBy *string, limit *int, cursor *string) (*generated.VideoConnection, error) {
	f := pageFilter(orderBy, limit, cursor)
	f.CategoryID = &obj.ID
	return r.videoConnection(ctx, f)
}

func (r *categoryResolver) Subcategories(ctx context.Context, obj *domain.Category, orderBy *string) ([]domain.SubCategoryCount, error) {
	return r.browse.SubCategories(ctx, obj.ID, strVal(orderBy))
}

func (r *subCategoryResolver) Videos(ctx context.Context, obj *domain.SubCategory, orderBy *string, limit *int, cursor *string) (*generated.VideoConnection, error) {
	f := pageFilter(orderBy, limit, cursor)
	f.SubCategoryID = &obj.ID
	return r.videoConnection(ctx, f)
}

func (r *tagResolver) Videos(ctx context.Context, obj *domain.Tag, orderBy *string, limit *int, cursor *string) (*generated.VideoConnection, error) {
	f := pageFilter(orderBy, limit, cursor)
	f.TagSlug = &obj.Slug
	return r.videoConnection(ctx, f)
}

func (r *playlistResolver) Videos(ctx context.Context, obj *domain.Playlist, orderBy *string, limit *int, cursor *string) (*generated.VideoConnection, error) {
	f := pageFilter(orderBy, limit, cursor)
	f.PlaylistID = &obj.ID
	return r.videoConnection(ctx, f)
}

// videoConnection runs the filter and wraps the page.
func (r *Resolver) videoConnection(ctx context.Context, f domain.VideoFilter) (*generated.VideoConnection, error) {
	published := true
	if f.IsPublished == nil {
		f.IsPublished = &published
	}

	videos, next, err := r.browse.Videos(ctx, f)
	if err != nil {
		return nil, err
	}
	return &generated.VideoConnection{Videos: videos, NextCursor: next}, nil
}
