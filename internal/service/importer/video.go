package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
)

// adminFallbackUsername absorbs records whose creator no longer resolves.
const adminFallbackUsername = "admin"

// ImportVideo loads one fully materialized video. An existing video with the
// same slug is deleted first, joins included; its id is never reused. Every
// referenced slug and username must resolve, except the creator, which falls
// back to the admin account, and the empty source/sponsor, which mean none.
func (s *Service) ImportVideo(ctx context.Context, input ImportVideoInput) (*domain.Video, error) {
	if _, err := s.authorize(ctx); err != nil {
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
		ViewAmount:   input.ViewAmount,
		IsPublished:  input.IsPublished,
		CreatedAt:    input.CreatedAt,
		PublishedAt:  input.PublishedAt,
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		creator, err := s.resolveCreator(ctx, input.CreatedBy)
		if err != nil {
			return err
		}
		video.CreatedBy = creator.ID

		if input.PublishedBy != "" {
			publisher, err := s.users.GetByUsername(ctx, input.PublishedBy)
			if err != nil {
				return refErr("published_by", input.PublishedBy, err)
			}
			video.PublishedBy = &publisher.ID
		}

		if input.SourceSlug != "" {
			src, err := s.sources.GetBySlug(ctx, input.SourceSlug)
			if err != nil {
				return refErr("source", input.SourceSlug, err)
			}
			video.SourceID = &src.ID
		}

		if input.SponsorSlug != "" {
			sponsor, err := s.users.GetByUsername(ctx, input.SponsorSlug)
			if err != nil {
				return refErr("sponsor", input.SponsorSlug, err)
			}
			video.SponsorID = &sponsor.ID
		}

		speakerIDs := make([]uuid.UUID, 0, len(input.SpeakerSlugs))
		for _, slug := range input.SpeakerSlugs {
			sp, err := s.speakers.GetBySlug(ctx, slug)
			if err != nil {
				return refErr("speakers", slug, err)
			}
			speakerIDs = append(speakerIDs, sp.ID)
		}

		categoryIDs := make([]uuid.UUID, 0, len(input.CategorySlugs))
		for _, slug := range input.CategorySlugs {
			cat, err := s.categories.GetBySlug(ctx, slug)
			if err != nil {
				return refErr("categories", slug, err)
			}
			categoryIDs = append(categoryIDs, cat.ID)
		}

		// Subcategory slugs are scoped to their category, so each one is
		// resolved within the categories this video belongs to.
		subCategoryIDs := make([]uuid.UUID, 0, len(input.SubCategorySlugs))
		for _, slug := range input.SubCategorySlugs {
			sub, err := s.resolveSubCategory(ctx, categoryIDs, slug)
			if err != nil {
				return err
			}
			subCategoryIDs = append(subCategoryIDs, sub.ID)
		}

		if _, err := s.videos.DeleteBySlug(ctx, video.Slug); err != nil {
			return fmt.Errorf("delete existing video: %w", err)
		}

		if err := s.videos.Insert(ctx, video); err != nil {
			return fmt.Errorf("insert video: %w", err)
		}

		if err := s.videos.ReplaceSpeakers(ctx, video.ID, speakerIDs); err != nil {
			return fmt.Errorf("replace speakers: %w", err)
		}
		if err := s.videos.ReplaceCategories(ctx, video.ID, categoryIDs); err != nil {
			return fmt.Errorf("replace categories: %w", err)
		}
		if err := s.videos.ReplaceSubCategories(ctx, video.ID, subCategoryIDs); err != nil {
			return fmt.Errorf("replace subcategories: %w", err)
		}
		if err := s.videos.ReplaceTags(ctx, video.ID, input.Tags); err != nil {
			return fmt.Errorf("replace tags: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "video imported", "video_id", video.ID, "slug", video.Slug)

	return video, nil
}

func (s *Service) resolveCreator(ctx context.Context, username string) (*domain.User, error) {
	if username != "" {
		creator, err := s.users.GetByUsername(ctx, username)
		if err == nil {
			return creator, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("resolve creator: %w", err)
		}
	}

	creator, err := s.users.GetByUsername(ctx, adminFallbackUsername)
	if err != nil {
		return nil, fmt.Errorf("resolve fallback creator: %w", err)
	}
	return creator, nil
}

func (s *Service) resolveSubCategory(ctx context.Context, categoryIDs []uuid.UUID, slug string) (*domain.SubCategory, error) {
	for _, categoryID := range categoryIDs {
		sub, err := s.categories.GetSubCategoryBySlug(ctx, categoryID, slug)
		if err == nil {
			return sub, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("resolve subcategory: %w", err)
		}
	}
	return nil, domain.NewValidationError("subcategories", fmt.Sprintf("unknown reference %q", slug))
}

// refErr turns a failed reference lookup into a field-scoped validation
// error; unexpected store failures pass through.
func refErr(field, ref string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError(field, fmt.Sprintf("unknown reference %q", ref))
	}
	return fmt.Errorf("resolve %s: %w", field, err)
}
