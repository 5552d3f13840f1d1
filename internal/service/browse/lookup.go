package browse

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
)

// absent collapses a not-found lookup into a nil result.
func absent(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// Video looks a video up by id. Returns nil when absent.
func (s *Service) Video(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	v, err := s.videos.GetByID(ctx, id)
	if absent(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get video: %w", err)
	}
	return v, nil
}

// VideoBySlug looks a video up by slug. Returns nil when absent.
func (s *Service) VideoBySlug(ctx context.Context, slug string) (*domain.Video, error) {
	v, err := s.videos.GetBySlug(ctx, slug)
	if absent(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get video: %w", err)
	}
	return v, nil
}

// Speaker looks a speaker up by id. Returns nil when absent.
func (s *Service) Speaker(ctx context.Context, id uuid.UUID) (*domain.Speaker, error) {
	sp, err := s.speakers.GetByID(ctx, id)
	if absent(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get speaker: %w", err)
	}
	return sp, nil
}

// SpeakerBySlug looks a speaker up by slug. Returns nil when absent.
func (s *Service) SpeakerBySlug(ctx context.Context, slug string) (*domain.Speaker, error) {
	sp, err := s.speakers.GetBySlug(ctx, slug)
	if absent(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get speaker: %w", err)
	}
	return sp, nil
}

// Source looks a source up by id. Returns nil when absent.
func (s *Service) Source(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	src, err := s.sources.GetByID(ctx, id)
	if absent(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	return src, nil
}

// SourceBySlug looks a source up by slug. Returns nil when absent.
func (s *Service) SourceBySlug(ctx context.Context, slug string) (*domain.Source, error) {
	src, err := s.sources.GetBySlug(ctx, slug)
	if absent(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	return src, nil
}

// CategoryBySlug looks a category up by slug. Returns nil when absent.
func (s *Service) CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	c, err := s.categories.GetBySlug(ctx, slug)
	if absent(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// TagBySlug looks a tag up by slug. Tag slugs are not globally unique, so
// this resolves the first matching row deterministically. Returns nil when
// absent.
func (s *Service) TagBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	t, err := s.tags.GetBySlug(ctx, slug)
	if absent(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return t, nil
}

// PlaylistBySlug looks a playlist up by slug. Returns nil when absent.
func (s *Service) PlaylistBySlug(ctx context.Context, slug string) (*domain.Playlist, error) {
	p, err := s.playlists.GetBySlug(ctx, slug)
	if absent(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get playlist: %w", err)
	}
	return p, nil
}

// Sponsor resolves a sponsor by username. The lookup matches any user
// carrying the name, whatever their role; the role only scopes the
// aggregate listings.
func (s *Service) Sponsor(ctx context.Context, username string) (*domain.User, error) {
	return s.userByUsername(ctx, username)
}

// Creator resolves a creator by username, with the same any-role matching
// as Sponsor.
func (s *Service) Creator(ctx context.Context, username string) (*domain.User, error) {
	return s.userByUsername(ctx, username)
}

func (s *Service) userByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if absent(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
