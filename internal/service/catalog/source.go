package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/internal/domain/policy"
)

// CreateSource creates a source.
func (s *Service) CreateSource(ctx context.Context, input CreateSourceInput) (*domain.Source, error) {
	actor, err := s.authorize(ctx, policy.ActionCreateSource, policy.Context{})
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	source := &domain.Source{
		ID:          uuid.New(),
		Slug:        input.Slug,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.sources.Create(ctx, source); err != nil {
			return fmt.Errorf("create source: %w", err)
		}

		entry := domain.NewCreateEntry(actor.ID, domain.EntityTypeSource, source.ID, source.Name)
		if err := s.audit.Append(ctx, entry); err != nil {
			return fmt.Errorf("append audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "source created",
		"source_id", source.ID,
		"slug", source.Slug,
		"actor_id", actor.ID,
	)

	return source, nil
}

// UpdateSource rewrites every field of an existing source.
func (s *Service) UpdateSource(ctx context.Context, input UpdateSourceInput) (*domain.Source, error) {
	actor, err := s.authorize(ctx, policy.ActionUpdateSource, policy.Context{})
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	source := &domain.Source{
		ID:          input.ID,
		Slug:        input.Slug,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.sources.Update(ctx, source); err != nil {
			return fmt.Errorf("update source: %w", err)
		}

		entry := domain.NewChangeEntry(actor.ID, domain.EntityTypeSource, source.ID, source.Name)
		if err := s.audit.Append(ctx, entry); err != nil {
			return fmt.Errorf("append audit entry: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "source updated",
		"source_id", source.ID,
		"slug", source.Slug,
		"actor_id", actor.ID,
	)

	return source, nil
}
