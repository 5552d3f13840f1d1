package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/internal/domain/policy"
	"github.com/saveschool/catalog-backend/internal/slug"
)

// CreateVideo creates an unpublished video together with its speaker,
// category, subcategory and tag relations.
func (s *Service) CreateVideo(ctx context.Context, input CreateVideoInput) (*domain.Video, error) {
	actor, err := s.authorize(ctx, policy.ActionCreateVideo, policy.Context{})
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	video := &domain.Video{
		ID:           uuid.New(),
		Slug:         input.Slug,
		Title:        input.Title,
		Description:  input.Description,
		Image:        input.Image,
		MediaID:      input.MediaID,
		Duration:     input.Duration,
		ViSub:        input.ViSub,
		EnSub:        input.EnSub,
		ViTranscript: input.ViTranscript,
		EnTranscript: input.EnTranscript,
		SourceID:     input.SourceID,
		SponsorID:    input.SponsorID,
		CreatedAt:    s.now(),
		CreatedBy:    actor.ID,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.videos.Insert(ctx, video); err != nil {
			return fmt.Errorf("insert video: %w", err)
		}

		if err := s.replaceRelations(ctx, video.ID, input.VideoFields); err != nil {
			return err
		}

		entry := domain.NewCreateEntry(actor.ID, domain.EntityTypeVideo, video.ID, video.Title)
		if err := s.audit.Append(ctx, entry); err != nil {
			return fmt.Errorf("append audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "video created",
		"video_id", video.ID,
		"slug", video.Slug,
		"actor_id", actor.ID,
	)

	return video, nil
}

// UpdateVideo rewrites every field of an existing video and replaces its
// relations. The ownership check runs against the pre-mutation row, so a
// poster cannot lose edit rights mid-request.
func (s *Service) UpdateVideo(ctx context.Context, input UpdateVideoInput) (*domain.Video, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.videos.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get video: %w", err)
	}

	actor, err := s.authorize(ctx, policy.ActionUpdateVideo, policy.Context{Video: existing})
	if err != nil {
		return nil, err
	}

	now := s.now()

	video := &domain.Video{
		ID:           existing.ID,
		Slug:         input.Slug,
		Title:        input.Title,
		Description:  input.Description,
		Image:        input.Image,
		MediaID:      input.MediaID,
		Duration:     input.Duration,
		ViSub:        input.ViSub,
		EnSub:        input.EnSub,
		ViTranscript: input.ViTranscript,
		EnTranscript: input.EnTranscript,
		SourceID:     input.SourceID,
		SponsorID:    input.SponsorID,

		ViewAmount:  existing.ViewAmount,
		IsPublished: existing.IsPublished,
		CreatedAt:   existing.CreatedAt,
		CreatedBy:   existing.CreatedBy,
		PublishedAt: existing.PublishedAt,
		PublishedBy: existing.PublishedBy,

		UpdatedAt: &now,
		UpdatedBy: &actor.ID,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.videos.Update(ctx, video); err != nil {
			return fmt.Errorf("update video: %w", err)
		}

		if err := s.replaceRelations(ctx, video.ID, input.VideoFields); err != nil {
			return err
		}

		entry := domain.NewChangeEntry(actor.ID, domain.EntityTypeVideo, video.ID, video.Title)
		if err := s.audit.Append(ctx, entry); err != nil {
			return fmt.Errorf("append audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "video updated",
		"video_id", video.ID,
		"slug", video.Slug,
		"actor_id", actor.ID,
	)

	return video, nil
}

// PublishVideo marks a video as published. Publishing an already published
// video refreshes published_at and published_by rather than failing.
func (s *Service) PublishVideo(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	actor, err := s.authorize(ctx, policy.ActionPublishVideo, policy.Context{})
	if err != nil {
		return nil, err
	}

	var video *domain.Video

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v, err := s.videos.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get video: %w", err)
		}

		now := s.now()
		if err := s.videos.MarkPublished(ctx, id, actor.ID, now); err != nil {
			return fmt.Errorf("mark published: %w", err)
		}

		v.IsPublished = true
		v.PublishedAt = &now
		v.PublishedBy = &actor.ID
		video = v

		entry := domain.NewChangeEntry(actor.ID, domain.EntityTypeVideo, id, v.Title,
			"is_published", "published_by", "published_at")
		if err := s.audit.Append(ctx, entry); err != nil {
			return fmt.Errorf("append audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "video published",
		"video_id", video.ID,
		"slug", video.Slug,
		"actor_id", actor.ID,
	)

	return video, nil
}

// IncreaseViews bumps the view counter of a published video. The operation
// is public and leaves no audit trail; unpublished videos are invisible to
// it and resolve as not found.
func (s *Service) IncreaseViews(ctx context.Context, videoSlug string) (*domain.Video, error) {
	video, err := s.videos.IncrementViews(ctx, videoSlug)
	if err != nil {
		return nil, fmt.Errorf("increment views: %w", err)
	}

	s.log.DebugContext(ctx, "view counted", "video_id", video.ID, "slug", video.Slug)

	return video, nil
}

// replaceRelations rewrites the speaker, category, subcategory and tag sets
// of a video. Tag names arrive as display text and are slugified here.
func (s *Service) replaceRelations(ctx context.Context, videoID uuid.UUID, fields VideoFields) error {
	if err := s.videos.ReplaceSpeakers(ctx, videoID, fields.SpeakerIDs); err != nil {
		return fmt.Errorf("replace speakers: %w", err)
	}
	if err := s.videos.ReplaceCategories(ctx, videoID, fields.CategoryIDs); err != nil {
		return fmt.Errorf("replace categories: %w", err)
	}
	if err := s.videos.ReplaceSubCategories(ctx, videoID, fields.SubCategoryIDs); err != nil {
		return fmt.Errorf("replace subcategories: %w", err)
	}

	slugs := make([]string, 0, len(fields.Tags))
	for _, name := range fields.Tags {
		slugs = append(slugs, slug.Make(name))
	}
	if err := s.videos.ReplaceTags(ctx, videoID, slugs); err != nil {
		return fmt.Errorf("replace tags: %w", err)
	}

	return nil
}
