package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/internal/domain/policy"
)

// CreateSpeaker creates a speaker.
func (s *Service) CreateSpeaker(ctx context.Context, input CreateSpeakerInput) (*domain.Speaker, error) {
	actor, err := s.authorize(ctx, policy.ActionCreateSpeaker, policy.Context{})
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	speaker := &domain.Speaker{
		ID:          uuid.New(),
		Slug:        input.Slug,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.speakers.Create(ctx, speaker); err != nil {
			return fmt.Errorf("create speaker: %w", err)
		}

		entry := domain.NewCreateEntry(actor.ID, domain.EntityTypeSpeaker, speaker.ID, speaker.Name)
		if err := s.audit.Append(ctx, entry); err != nil {
			return fmt.Errorf("append audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "speaker created",
		"speaker_id", speaker.ID,
		"slug", speaker.Slug,
		"actor_id", actor.ID,
	)

	return speaker, nil
}

// UpdateSpeaker rewrites every field of an existing speaker.
func (s *Service) UpdateSpeaker(ctx context.Context, input UpdateSpeakerInput) (*domain.Speaker, error) {
	actor, err := s.authorize(ctx, policy.ActionUpdateSpeaker, policy.Context{})
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	speaker := &domain.Speaker{
		ID:          input.ID,
		Slug:        input.Slug,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.speakers.Update(ctx, speaker); err != nil {
			return fmt.Errorf("update speaker: %w", err)
		}

		entry := domain.NewChangeEntry(actor.ID, domain.EntityTypeSpeaker, speaker.ID, speaker.Name)
		if err := s.audit.Append(ctx, entry); err != nil {
			return fmt.Errorf("append audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "speaker updated",
		"speaker_id", speaker.ID,
		"slug", speaker.Slug,
		"actor_id", actor.ID,
	)

	return speaker, nil
}
