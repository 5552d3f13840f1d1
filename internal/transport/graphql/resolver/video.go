package resolver

import (
	"context"

	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/internal/transport/graphql/dataloader"
)

// Video relation fields resolve through per-request DataLoaders so that a
// page of videos costs one SQL query per relation, not one per video.

func (r *videoResolver) Speakers(ctx context.Context, obj *domain.Video) ([]domain.Speaker, error) {
	return dataloader.FromContext(ctx).SpeakersByVideoID.Load(ctx, obj.ID)()
}

func (r *videoResolver) Categories(ctx context.Context, obj *domain.Video) ([]domain.Category, error) {
	return dataloader.FromContext(ctx).CategoriesByVideoID.Load(ctx, obj.ID)()
}

func (r *videoResolver) Subcategories(ctx context.Context, obj *domain.Video) ([]domain.SubCategory, error) {
	return dataloader.FromContext(ctx).SubCategoriesByVideoID.Load(ctx, obj.ID)()
}

func (r *videoResolver) Tags(ctx context.Context, obj *domain.Video) ([]domain.Tag, error) {
	return dataloader.FromContext(ctx).TagsByVideoID.Load(ctx, obj.ID)()
}

func (r *videoResolver) Source(ctx context.Context, obj *domain.Video) (*domain.Source, error) {
	if obj.SourceID == nil {
		return nil, nil
	}
	return dataloader.FromContext(ctx).SourceByID.Load(ctx, *obj.SourceID)()
}

func (r *videoResolver) Sponsor(ctx context.Context, obj *domain.Video) (*domain.User, error) {
	if obj.SponsorID == nil {
		return nil, nil
	}
	return dataloader.FromContext(ctx).UserByID.Load(ctx, *obj.SponsorID)()
}

func (r *videoResolver) CreatedBy(ctx context.Context, obj *domain.Video) (*domain.User, error) {
	return dataloader.FromContext(ctx).UserByID.Load(ctx, obj.CreatedBy)()
}

func (r *videoResolver) PublishedBy(ctx context.Context, obj *domain.Video) (*domain.User, error) {
	if obj.PublishedBy == nil {
		return nil, nil
	}
	return dataloader.FromContext(ctx).UserByID.Load(ctx, *obj.PublishedBy)()
}
