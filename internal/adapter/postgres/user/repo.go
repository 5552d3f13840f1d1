// Package user implements the User and Profile repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/saveschool/catalog-backend/internal/adapter/postgres"
	"github.com/saveschool/catalog-backend/internal/domain"
)

// Repo provides user and profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, username, name, email, is_active, is_staff, created_at`

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByUsernameSQL = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

const getByIDsSQL = `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1::uuid[])`

const getCredentialsSQL = `
SELECT id, password_hash FROM users WHERE username = $1 AND is_active`

const getProfileSQL = `
SELECT user_id, role, bio, quote, avatar, cover, website, facebook
FROM profiles WHERE user_id = $1`

const getActorSQL = `
SELECT u.id, u.username, p.role, u.is_active, u.is_staff
FROM users u
JOIN profiles p ON p.user_id = u.id
WHERE u.id = $1`

const listByRoleSQL = `
SELECT u.id, u.username, u.name, u.email, u.is_active, u.is_staff, u.created_at,
    count(v.id) AS video_amount
FROM users u
JOIN profiles p ON p.user_id = u.id
LEFT JOIN videos v ON %s = u.id AND v.is_published
WHERE p.role = $1
GROUP BY u.id`

// aggregateOrderKeys are the caller-selectable sort keys for sponsor and
// creator listings.
var aggregateOrderKeys = map[string]string{
	"name":         "u.name",
	"username":     "u.username",
	"video_amount": "video_amount",
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	return &u, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	return &u, nil
}

// GetByIDs returns the users with the given ids, unordered. Missing ids are
// skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0, len(ids))
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.Email, &u.IsActive, &u.IsStaff, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// GetCredentials returns the id and password hash of an active user.
// Accounts imported without a password carry an empty hash and never match.
func (r *Repo) GetCredentials(ctx context.Context, username string) (uuid.UUID, string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var id uuid.UUID
	var hash string
	err := querier.QueryRow(ctx, getCredentialsSQL, username).Scan(&id, &hash)
	if err != nil {
		return uuid.Nil, "", postgres.MapError(err, "user", username)
	}

	return id, hash, nil
}

// GetProfile returns the profile of a user.
func (r *Repo) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var p domain.Profile
	err := querier.QueryRow(ctx, getProfileSQL, userID).Scan(
		&p.UserID, &p.Role, &p.Bio, &p.Quote, &p.Avatar, &p.Cover, &p.Website, &p.Facebook)
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID.String())
	}

	return &p, nil
}

// GetActor returns the permission-relevant view of a user in one query.
func (r *Repo) GetActor(ctx context.Context, userID uuid.UUID) (*domain.Actor, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var a domain.Actor
	err := querier.QueryRow(ctx, getActorSQL, userID).Scan(
		&a.ID, &a.Username, &a.Role, &a.IsActive, &a.IsStaff)
	if err != nil {
		return nil, postgres.MapError(err, "user", userID.String())
	}

	return &a, nil
}

// Create inserts a user row and its profile row. Callers run this inside a
// transaction so the pair is atomic.
func (r *Repo) Create(ctx context.Context, u *domain.User, passwordHash string, p *domain.Profile) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, `
		INSERT INTO users (id, username, name, email, password_hash, is_active, is_staff, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Username, u.Name, u.Email, passwordHash, u.IsActive, u.IsStaff, u.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "user", u.Username)
	}

	_, err = querier.Exec(ctx, `
		INSERT INTO profiles (user_id, role, bio, quote, avatar, cover, website, facebook)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, p.Role.String(), p.Bio, p.Quote, p.Avatar, p.Cover, p.Website, p.Facebook)
	if err != nil {
		return postgres.MapError(err, "profile", u.Username)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Aggregate listings
// ---------------------------------------------------------------------------

// ListSponsors returns users with the sponsor role and their published-video
// counts (videos they sponsor).
func (r *Repo) ListSponsors(ctx context.Context, orderBy string) ([]domain.UserCount, error) {
	return r.listByRole(ctx, domain.RoleSponsor, "v.sponsor_id", orderBy)
}

// ListCreators returns users with the poster role and their published-video
// counts (videos they created).
func (r *Repo) ListCreators(ctx context.Context, orderBy string) ([]domain.UserCount, error) {
	return r.listByRole(ctx, domain.RolePoster, "v.created_by", orderBy)
}

func (r *Repo) listByRole(ctx context.Context, role domain.Role, countRef, orderBy string) ([]domain.UserCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql := fmt.Sprintf(listByRoleSQL, countRef)
	order := postgres.AggregateOrder(orderBy, aggregateOrderKeys)
	sql += "\nORDER BY " + order[0]
	for _, o := range order[1:] {
		sql += ", " + o
	}

	rows, err := querier.Query(ctx, sql, role.String())
	if err != nil {
		return nil, fmt.Errorf("list users by role %s: %w", role, err)
	}
	defer rows.Close()

	users := []domain.UserCount{}
	for rows.Next() {
		var uc domain.UserCount
		err := rows.Scan(&uc.ID, &uc.Username, &uc.Name, &uc.Email,
			&uc.IsActive, &uc.IsStaff, &uc.CreatedAt, &uc.VideoAmount)
		if err != nil {
			return nil, fmt.Errorf("list users by role %s: %w", role, err)
		}
		users = append(users, uc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users by role %s: %w", role, err)
	}

	return users, nil
}

// scanUser scans one users row.
func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.Email, &u.IsActive, &u.IsStaff, &u.CreatedAt)
	return u, err
}
