//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/saveschool/catalog-backend/internal/adapter/postgres"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/audit"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/category"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/menu"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/playlist"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/source"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/speaker"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/tag"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/saveschool/catalog-backend/internal/adapter/postgres/user"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/video"
	authpkg "github.com/saveschool/catalog-backend/internal/auth"
	"github.com/saveschool/catalog-backend/internal/config"
	"github.com/saveschool/catalog-backend/internal/domain"
	"github.com/saveschool/catalog-backend/internal/service/browse"
	"github.com/saveschool/catalog-backend/internal/service/catalog"
	"github.com/saveschool/catalog-backend/internal/service/importer"
	gqlpkg "github.com/saveschool/catalog-backend/internal/transport/graphql"
	"github.com/saveschool/catalog-backend/internal/transport/graphql/dataloader"
	"github.com/saveschool/catalog-backend/internal/transport/graphql/generated"
	"github.com/saveschool/catalog-backend/internal/transport/graphql/resolver"
	"github.com/saveschool/catalog-backend/internal/transport/middleware"
	"github.com/saveschool/catalog-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// GraphQL assertion / extraction helpers.
// ---------------------------------------------------------------------------

// gqlData extracts the "data" map from a GraphQL response.
func gqlData(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "expected data object in response")
	return data
}

// gqlPayload extracts a specific field from the data map.
func gqlPayload(t *testing.T, result map[string]any, field string) map[string]any {
	t.Helper()
	data := gqlData(t, result)
	payload, ok := data[field].(map[string]any)
	require.True(t, ok, "expected %q in data", field)
	return payload
}

// gqlErrorCode extracts the error code from the first GraphQL error.
func gqlErrorCode(t *testing.T, result map[string]any) string {
	t.Helper()
	errors, ok := result["errors"].([]any)
	require.True(t, ok, "expected errors array")
	require.NotEmpty(t, errors)

	firstErr, ok := errors[0].(map[string]any)
	require.True(t, ok)
	extensions, ok := firstErr["extensions"].(map[string]any)
	require.True(t, ok, "expected extensions in error")

	code, ok := extensions["code"].(string)
	require.True(t, ok, "expected code string in extensions")
	return code
}

// requireNoErrors asserts that the GraphQL response has no errors.
func requireNoErrors(t *testing.T, result map[string]any) {
	t.Helper()
	if errs, ok := result["errors"]; ok && errs != nil {
		t.Fatalf("unexpected GraphQL errors: %v", errs)
	}
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.Manager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	videoRepo := video.New(pool)
	sourceRepo := source.New(pool)
	speakerRepo := speaker.New(pool)
	categoryRepo := category.New(pool)
	tagRepo := tag.New(pool)
	playlistRepo := playlist.New(pool)
	userRepo := userrepo.New(pool)
	menuRepo := menu.New(pool)
	auditRepo := audit.New(pool)

	// 4. JWT manager with a test secret (>= 32 chars).
	jwtMgr := authpkg.NewManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	// 5. Services.
	catalogService := catalog.NewService(
		logger, videoRepo, sourceRepo, speakerRepo, categoryRepo,
		userRepo, auditRepo, txm,
	)
	importerService := importer.NewService(
		logger, videoRepo, sourceRepo, speakerRepo, categoryRepo,
		playlistRepo, userRepo, txm,
	)
	browseService := browse.NewService(
		logger, videoRepo, sourceRepo, speakerRepo, categoryRepo,
		tagRepo, playlistRepo, userRepo, menuRepo,
	)

	// 6. GraphQL resolver + handler.
	res := resolver.NewResolver(logger, catalogService, importerService, browseService)

	schema := generated.NewExecutableSchema(generated.Config{Resolvers: res})
	gqlSrv := gqlhandler.NewDefaultServer(schema)
	gqlSrv.SetErrorPresenter(gqlpkg.NewErrorPresenter(logger))

	// 7. DataLoader repositories.
	dlRepos := &dataloader.Repos{
		Speaker:  speakerRepo,
		Category: categoryRepo,
		Tag:      tagRepo,
		Source:   sourceRepo,
		User:     userRepo,
	}

	// 8. Middleware chain.
	graphqlHandler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr),
		middleware.Middleware(dataloader.Middleware(dlRepos)),
	)(gqlSrv)

	// 9. Mux.
	mux := http.NewServeMux()

	healthHandler := rest.NewHealthHandler(pool, "test-version")
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("POST /query", graphqlHandler)
	mux.Handle("OPTIONS /query", graphqlHandler)

	// 10. httptest server.
	srv := httptest.NewServer(mux)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// graphqlQuery sends a GraphQL POST request and returns status + decoded body.
// ---------------------------------------------------------------------------

func (ts *testServer) graphqlQuery(t *testing.T, query string, variables map[string]any, token string) (int, map[string]any) {
	t.Helper()

	body := map[string]any{
		"query":     query,
		"variables": variables,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal graphql body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/query", bytes.NewReader(jsonBody))
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, result
}

// ---------------------------------------------------------------------------
// User seeding helpers. Users are inserted directly into the DB; tokens are
// signed with the same manager the server validates against.
// ---------------------------------------------------------------------------

// seedUserWithToken creates an active user with the given role and returns
// the user plus a valid access token.
func seedUserWithToken(t *testing.T, ts *testServer, role domain.Role) (domain.User, string) {
	t.Helper()

	user := testhelper.SeedUser(t, ts.Pool, role)

	token, err := ts.jwt.Generate(user.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user, token
}

// seedStaffWithToken creates an active staff user (import permission).
func seedStaffWithToken(t *testing.T, ts *testServer, role domain.Role) (domain.User, string) {
	t.Helper()

	user := testhelper.SeedUser(t, ts.Pool, role)

	_, err := ts.Pool.Exec(context.Background(),
		`UPDATE users SET is_staff = true WHERE id = $1`, user.ID)
	if err != nil {
		t.Fatalf("promote user to staff: %v", err)
	}
	user.IsStaff = true

	token, err := ts.jwt.Generate(user.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user, token
}

// uniqueSlug returns a slug that will not collide across test runs.
func uniqueSlug(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}
