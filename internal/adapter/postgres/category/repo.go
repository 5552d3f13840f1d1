// Package category implements the Category and SubCategory repository using
// PostgreSQL. Subcategories live here rather than in their own package: their
// slugs are only unique within a category, so every access path goes through
// the parent.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/saveschool/catalog-backend/internal/adapter/postgres"
	"github.com/saveschool/catalog-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// VideoCategory is a category row paired with the video it belongs to, for
// grouping batched DataLoader results.
type VideoCategory struct {
	VideoID uuid.UUID
	domain.Category
}

// VideoSubCategory is a subcategory row paired with its video.
type VideoSubCategory struct {
	VideoID uuid.UUID
	domain.SubCategory
}

const categoryColumns = `id, slug, name, description, image, priority`

const getByIDSQL = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

const getBySlugSQL = `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1`

const getSubByIDSQL = `
SELECT id, category_id, slug, name, description, image, priority
FROM subcategories WHERE id = $1`

const getSubBySlugSQL = `
SELECT id, category_id, slug, name, description, image, priority
FROM subcategories WHERE category_id = $1 AND slug = $2`

const getByVideoIDsSQL = `
SELECT vc.video_id, c.id, c.slug, c.name, c.description, c.image, c.priority
FROM video_categories vc
JOIN categories c ON c.id = vc.category_id
WHERE vc.video_id = ANY($1::uuid[])
ORDER BY vc.video_id, c.priority`

const getSubsByVideoIDsSQL = `
SELECT vsc.video_id, sc.id, sc.category_id, sc.slug, sc.name, sc.description, sc.image, sc.priority
FROM video_subcategories vsc
JOIN subcategories sc ON sc.id = vsc.subcategory_id
WHERE vsc.video_id = ANY($1::uuid[])
ORDER BY vsc.video_id, sc.priority`

const listSQL = `
SELECT c.id, c.slug, c.name, c.description, c.image, c.priority,
    count(DISTINCT v.id) AS video_amount
FROM categories c
LEFT JOIN video_categories vc ON vc.category_id = c.id
LEFT JOIN videos v ON v.id = vc.video_id AND v.is_published
GROUP BY c.id`

const listSubsSQL = `
SELECT sc.id, sc.category_id, sc.slug, sc.name, sc.description, sc.image, sc.priority,
    count(DISTINCT v.id) AS video_amount
FROM subcategories sc
LEFT JOIN video_subcategories vsc ON vsc.subcategory_id = sc.id
LEFT JOIN videos v ON v.id = vsc.video_id AND v.is_published
WHERE sc.category_id = $1
GROUP BY sc.id`

var aggregateOrderKeys = map[string]string{
	"name":         "c.name",
	"slug":         "c.slug",
	"priority":     "c.priority",
	"video_amount": "video_amount",
}

var subAggregateOrderKeys = map[string]string{
	"name":         "sc.name",
	"slug":         "sc.slug",
	"priority":     "sc.priority",
	"video_amount": "video_amount",
}

// ---------------------------------------------------------------------------
// Category operations
// ---------------------------------------------------------------------------

// GetByID returns a category by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Category
	err := querier.QueryRow(ctx, getByIDSQL, id).Scan(
		&c.ID, &c.Slug, &c.Name, &c.Description, &c.Image, &c.Priority)
	if err != nil {
		return nil, postgres.MapError(err, "category", id.String())
	}

	return &c, nil
}

// GetBySlug returns a category by slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Category
	err := querier.QueryRow(ctx, getBySlugSQL, slug).Scan(
		&c.ID, &c.Slug, &c.Name, &c.Description, &c.Image, &c.Priority)
	if err != nil {
		return nil, postgres.MapError(err, "category", slug)
	}

	return &c, nil
}

// GetByVideoIDs returns categories for multiple videos (batch for DataLoader).
func (r *Repo) GetByVideoIDs(ctx context.Context, videoIDs []uuid.UUID) ([]VideoCategory, error) {
	if len(videoIDs) == 0 {
		return []VideoCategory{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByVideoIDsSQL, videoIDs)
	if err != nil {
		return nil, fmt.Errorf("get categories by video_ids: %w", err)
	}
	defer rows.Close()

	categories := []VideoCategory{}
	for rows.Next() {
		var vc VideoCategory
		err := rows.Scan(&vc.VideoID, &vc.ID, &vc.Slug, &vc.Name, &vc.Description, &vc.Image, &vc.Priority)
		if err != nil {
			return nil, fmt.Errorf("get categories by video_ids: %w", err)
		}
		categories = append(categories, vc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get categories by video_ids: %w", err)
	}

	return categories, nil
}

// List returns all categories with their published-video counts.
func (r *Repo) List(ctx context.Context, orderBy string) ([]domain.CategoryCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql := listSQL
	order := postgres.AggregateOrder(orderBy, aggregateOrderKeys)
	sql += "\nORDER BY " + order[0]
	for _, o := range order[1:] {
		sql += ", " + o
	}

	rows, err := querier.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.CategoryCount{}
	for rows.Next() {
		var cc domain.CategoryCount
		err := rows.Scan(&cc.ID, &cc.Slug, &cc.Name, &cc.Description, &cc.Image, &cc.Priority, &cc.VideoAmount)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		categories = append(categories, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

// Create stores a new category row.
func (r *Repo) Create(ctx context.Context, c *domain.Category) error {
	sql, args, err := postgres.Builder().
		Insert("categories").
		Columns("id", "slug", "name", "description", "image", "priority").
		Values(c.ID, c.Slug, c.Name, c.Description, c.Image, c.Priority).
		ToSql()
	if err != nil {
		return fmt.Errorf("create category: build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "category", c.Slug)
	}

	return nil
}

// ---------------------------------------------------------------------------
// SubCategory operations
// ---------------------------------------------------------------------------

// GetSubCategoryByID returns a subcategory by primary key.
func (r *Repo) GetSubCategoryByID(ctx context.Context, id uuid.UUID) (*domain.SubCategory, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var sc domain.SubCategory
	err := querier.QueryRow(ctx, getSubByIDSQL, id).Scan(
		&sc.ID, &sc.CategoryID, &sc.Slug, &sc.Name, &sc.Description, &sc.Image, &sc.Priority)
	if err != nil {
		return nil, postgres.MapError(err, "subcategory", id.String())
	}

	return &sc, nil
}

// GetSubCategoryBySlug returns a subcategory by its slug within a category.
func (r *Repo) GetSubCategoryBySlug(ctx context.Context, categoryID uuid.UUID, slug string) (*domain.SubCategory, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var sc domain.SubCategory
	err := querier.QueryRow(ctx, getSubBySlugSQL, categoryID, slug).Scan(
		&sc.ID, &sc.CategoryID, &sc.Slug, &sc.Name, &sc.Description, &sc.Image, &sc.Priority)
	if err != nil {
		return nil, postgres.MapError(err, "subcategory", slug)
	}

	return &sc, nil
}

// GetSubCategoriesByVideoIDs returns subcategories for multiple videos
// (batch for DataLoader).
func (r *Repo) GetSubCategoriesByVideoIDs(ctx context.Context, videoIDs []uuid.UUID) ([]VideoSubCategory, error) {
	if len(videoIDs) == 0 {
		return []VideoSubCategory{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getSubsByVideoIDsSQL, videoIDs)
	if err != nil {
		return nil, fmt.Errorf("get subcategories by video_ids: %w", err)
	}
	defer rows.Close()

	subs := []VideoSubCategory{}
	for rows.Next() {
		var vsc VideoSubCategory
		err := rows.Scan(&vsc.VideoID, &vsc.ID, &vsc.CategoryID, &vsc.Slug, &vsc.Name,
			&vsc.Description, &vsc.Image, &vsc.Priority)
		if err != nil {
			return nil, fmt.Errorf("get subcategories by video_ids: %w", err)
		}
		subs = append(subs, vsc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get subcategories by video_ids: %w", err)
	}

	return subs, nil
}

// ListSubCategories returns the subcategories of a category with their
// published-video counts. Default ordering is priority.
func (r *Repo) ListSubCategories(ctx context.Context, categoryID uuid.UUID, orderBy string) ([]domain.SubCategoryCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if orderBy == "" {
		orderBy = "priority"
	}

	sql := listSubsSQL
	order := postgres.AggregateOrder(orderBy, subAggregateOrderKeys)
	sql += "\nORDER BY " + order[0]
	for _, o := range order[1:] {
		sql += ", " + o
	}

	rows, err := querier.Query(ctx, sql, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()

	subs := []domain.SubCategoryCount{}
	for rows.Next() {
		var scc domain.SubCategoryCount
		err := rows.Scan(&scc.ID, &scc.CategoryID, &scc.Slug, &scc.Name,
			&scc.Description, &scc.Image, &scc.Priority, &scc.VideoAmount)
		if err != nil {
			return nil, fmt.Errorf("list subcategories: %w", err)
		}
		subs = append(subs, scc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}

	return subs, nil
}

// CreateSubCategory stores a new subcategory row.
func (r *Repo) CreateSubCategory(ctx context.Context, sc *domain.SubCategory) error {
	sql, args, err := postgres.Builder().
		Insert("subcategories").
		Columns("id", "category_id", "slug", "name", "description", "image", "priority").
		Values(sc.ID, sc.CategoryID, sc.Slug, sc.Name, sc.Description, sc.Image, sc.Priority).
		ToSql()
	if err != nil {
		return fmt.Errorf("create subcategory: build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "subcategory", sc.Slug)
	}

	return nil
}
