package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/internal/transport/graphql/generated"
)

// ============================================================================
// Single-entity lookups
// ============================================================================

func (r *queryResolver) Video(ctx context.Context, id *uuid.UUID, slug *string) (*domain.Video, error) {
	switch {
	case id != nil:
		return r.browse.Video(ctx, *id)
	case slug != nil:
		return r.browse.VideoBySlug(ctx, *slug)
	default:
		return nil, domain.NewValidationError("id", "id or slug required")
	}
}

func (r *queryResolver) Speaker(ctx context.Context, id *uuid.UUID, slug *string) (*domain.Speaker, error) {
	switch {
	case id != nil:
		return r.browse.Speaker(ctx, *id)
	case slug != nil:
		return r.browse.SpeakerBySlug(ctx, *slug)
	default:
		return nil, domain.NewValidationError("id", "id or slug required")
	}
}

func (r *queryResolver) Source(ctx context.Context, id *uuid.UUID, slug *string) (*domain.Source, error) {
	switch {
	case id != nil:
		return r.browse.Source(ctx, *id)
	case slug != nil:
		return r.browse.SourceBySlug(ctx, *slug)
	default:
		return nil, domain.NewValidationError("id", "id or slug required")
	}
}

func (r *queryResolver) Sponsor(ctx context.Context, slug string) (*domain.User, error) {
	return r.browse.Sponsor(ctx, slug)
}

func (r *queryResolver) Creator(ctx context.Context, slug string) (*domain.User, error) {
	return r.browse.Creator(ctx, slug)
}

func (r *queryResolver) Category(ctx context.Context, slug string) (*domain.Category, error) {
	return r.browse.CategoryBySlug(ctx, slug)
}

func (r *queryResolver) Tag(ctx context.Context, slug string) (*domain.Tag, error) {
	return r.browse.TagBySlug(ctx, slug)
}

func (r *queryResolver) Playlist(ctx context.Context, slug string) (*domain.Playlist, error) {
	return r.browse.PlaylistBySlug(ctx, slug)
}

// ============================================================================
// Video listing and search
// ============================================================================

func (r *queryResolver) Videos(ctx context.Context, filter *generated.VideoFilterInput, orderBy *string, limit *int, cursor *string) (*generated.VideoConnection, error) {
	f := pageFilter(orderBy, limit, cursor)
	if filter != nil {
		f.IsPublished = filter.IsPublished
		f.CreatedBy = filter.CreatedBy
		f.Sponsor = filter.Sponsor
		f.Source = filter.Source
		f.SpeakerID = filter.SpeakerID
		f.CategoryID = filter.CategoryID
		f.SubCategoryID = filter.SubCategoryID
		f.PlaylistID = filter.PlaylistID
		f.TagSlug = filter.Tag
		f.Search = filter.Search
		f.TitleSearch = filter.Title
	}

	videos, next, err := r.browse.Videos(ctx, f)
	if err != nil {
		return nil, err
	}
	return &generated.VideoConnection{Videos: videos, NextCursor: next}, nil
}

func (r *queryResolver) SearchList(ctx context.Context, query string) (*generated.SearchListResult, error) {
	result, err := r.browse.SearchList(ctx, query)
	if err != nil {
		return nil, err
	}
	return &generated.SearchListResult{
		Videos:   result.Videos,
		Speakers: result.Speakers,
		Sources:  result.Sources,
	}, nil
}

// ============================================================================
// Aggregate listings
// ============================================================================

func (r *queryResolver) Menus(ctx context.Context) ([]domain.Menu, error) {
	return r.browse.Menus(ctx)
}

func (r *queryResolver) Sources(ctx context.Context, orderBy *string, search *string) ([]domain.SourceCount, error) {
	return r.browse.Sources(ctx, strVal(search), strVal(orderBy))
}

func (r *queryResolver) Speakers(ctx context.Context, orderBy *string, search *string) ([]domain.SpeakerCount, error) {
	return r.browse.Speakers(ctx, strVal(search), strVal(orderBy))
}

func (r *queryResolver) Categories(ctx context.Context, orderBy *string) ([]domain.CategoryCount, error) {
	return r.browse.Categories(ctx, strVal(orderBy))
}

func (r *queryResolver) Tags(ctx context.Context, orderBy *string) ([]domain.TagCount, error) {
	return r.browse.Tags(ctx, strVal(orderBy))
}

func (r *queryResolver) Playlists(ctx context.Context, orderBy *string) ([]domain.PlaylistCount, error) {
	return r.browse.Playlists(ctx, strVal(orderBy))
}

func (r *queryResolver) Sponsors(ctx context.Context, orderBy *string) ([]domain.UserCount, error) {
	return r.browse.Sponsors(ctx, strVal(orderBy))
}

func (r *queryResolver) Creators(ctx context.Context, orderBy *string) ([]domain.UserCount, error) {
	return r.browse.Creators(ctx, strVal(orderBy))
}
