package browse

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
)

// Videos returns a filtered, ordered page of videos and the cursor of the
// next page, nil when the page is the last one.
func (s *Service) Videos(ctx context.Context, f domain.VideoFilter) ([]domain.Video, *string, error) {
	videos, next, err := s.videos.Find(ctx, f)
	if err != nil {
		return nil, nil, fmt.Errorf("find videos: %w", err)
	}
	return videos, next, nil
}

// Sources lists sources with their published-video counts. search matches
// name or description.
func (s *Service) Sources(ctx context.Context, search, orderBy string) ([]domain.SourceCount, error) {
	out, err := s.sources.List(ctx, search, orderBy)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return out, nil
}

// Speakers lists speakers with their published-video counts. search matches
// name or description.
func (s *Service) Speakers(ctx context.Context, search, orderBy string) ([]domain.SpeakerCount, error) {
	out, err := s.speakers.List(ctx, search, orderBy)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	return out, nil
}

// Categories lists categories with their published-video counts.
func (s *Service) Categories(ctx context.Context, orderBy string) ([]domain.CategoryCount, error) {
	out, err := s.categories.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// SubCategories lists the subcategories of one category, ordered by
// priority unless the caller asks otherwise.
func (s *Service) SubCategories(ctx context.Context, categoryID uuid.UUID, orderBy string) ([]domain.SubCategoryCount, error) {
	out, err := s.categories.ListSubCategories(ctx, categoryID, orderBy)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	return out, nil
}

// Tags lists tag slugs with their published-video counts, grouped by slug
// across videos.
func (s *Service) Tags(ctx context.Context, orderBy string) ([]domain.TagCount, error) {
	out, err := s.tags.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return out, nil
}

// Playlists lists playlists with their published-video counts.
func (s *Service) Playlists(ctx context.Context, orderBy string) ([]domain.PlaylistCount, error) {
	out, err := s.playlists.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	return out, nil
}

// Sponsors lists sponsor users with their sponsored published-video counts.
func (s *Service) Sponsors(ctx context.Context, orderBy string) ([]domain.UserCount, error) {
	out, err := s.users.ListSponsors(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}
	return out, nil
}

// Creators lists poster users with their authored published-video counts.
func (s *Service) Creators(ctx context.Context, orderBy string) ([]domain.UserCount, error) {
	out, err := s.users.ListCreators(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("list creators: %w", err)
	}
	return out, nil
}

// Menus lists the static navigation items in display order.
func (s *Service) Menus(ctx context.Context) ([]domain.Menu, error) {
	out, err := s.menus.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	return out, nil
}
