package browse

import (
	"context"
	"fmt"

	"github.com/saveschool/catalog-backend/internal/domain"
)

// SearchResult carries the three independent result sets of the global
// search. The sets are not deduplicated or ranked against each other.
type SearchResult struct {
	Videos   []domain.Video
	Speakers []domain.SpeakerCount
	Sources  []domain.SourceCount
}

// SearchList runs the global search: published videos matching the term in
// title or description, plus speakers and sources matching it in name only.
// The video set deliberately ignores speaker names, unlike the videos list
// filter.
func (s *Service) SearchList(ctx context.Context, query string) (*SearchResult, error) {
	published := true
	videos, _, err := s.videos.Find(ctx, domain.VideoFilter{
		IsPublished: &published,
		TitleSearch: &query,
		OrderBy:     "-published_at",
	})
	if err != nil {
		return nil, fmt.Errorf("search videos: %w", err)
	}

	speakers, err := s.speakers.SearchByName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search speakers: %w", err)
	}

	sources, err := s.sources.SearchByName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search sources: %w", err)
	}

	return &SearchResult{
		Videos:   videos,
		Speakers: speakers,
		Sources:  sources,
	}, nil
}
