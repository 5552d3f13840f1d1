package importer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
)

// ImportPlaylist creates a playlist and links the given videos in order.
// The 1-based position of each slug becomes the playlist priority. Any
// unresolvable video slug fails the whole operation.
func (s *Service) ImportPlaylist(ctx context.Context, input ImportPlaylistInput) (*domain.Playlist, error) {
	if _, err := s.authorize(ctx); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	playlist := &domain.Playlist{
		ID:          uuid.New(),
		Slug:        input.Slug,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.playlists.Create(ctx, playlist); err != nil {
			return fmt.Errorf("create playlist: %w", err)
		}

		for idx, slug := range input.VideoSlugs {
			video, err := s.videos.GetBySlug(ctx, slug)
			if err != nil {
				return refErr("videos", slug, err)
			}
			if err := s.playlists.AddVideo(ctx, playlist.ID, video.ID, idx+1); err != nil {
				return fmt.Errorf("add video %q: %w", slug, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "playlist imported",
		"playlist_id", playlist.ID,
		"slug", playlist.Slug,
		"videos", len(input.VideoSlugs),
	)

	return playlist, nil
}
