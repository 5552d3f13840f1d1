package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/saveschool/catalog-backend/internal/adapter/postgres"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/audit"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/category"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/menu"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/playlist"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/source"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/speaker"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/tag"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/user"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/video"
	"github.com/saveschool/catalog-backend/internal/adapter/storage"
	"github.com/saveschool/catalog-backend/internal/auth"
	"github.com/saveschool/catalog-backend/internal/config"
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

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories into services and transport handlers,
// and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	// Repositories.
	videoRepo := video.New(pool)
	sourceRepo := source.New(pool)
	speakerRepo := speaker.New(pool)
	categoryRepo := category.New(pool)
	tagRepo := tag.New(pool)
	playlistRepo := playlist.New(pool)
	userRepo := user.New(pool)
	menuRepo := menu.New(pool)
	auditRepo := audit.New(pool)

	// Services.
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

	jwtManager := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	mediaStore := storage.NewFS(cfg.Storage.Dir, cfg.Storage.BaseURL)

	// GraphQL server.
	res := resolver.NewResolver(logger, catalogService, importerService, browseService)
	schema := generated.NewExecutableSchema(generated.Config{Resolvers: res})

	gqlSrv := gqlhandler.New(schema)
	gqlSrv.AddTransport(transport.Options{})
	gqlSrv.AddTransport(transport.POST{})
	gqlSrv.SetQueryCache(lru.New[*ast.QueryDocument](1000))
	gqlSrv.SetErrorPresenter(gqlpkg.NewErrorPresenter(logger))
	if cfg.GraphQL.IntrospectionEnabled {
		gqlSrv.Use(extension.Introspection{})
	}
	if cfg.GraphQL.ComplexityLimit > 0 {
		gqlSrv.Use(extension.FixedComplexityLimit(cfg.GraphQL.ComplexityLimit))
	}

	dlRepos := &dataloader.Repos{
		Speaker:  speakerRepo,
		Category: categoryRepo,
		Tag:      tagRepo,
		Source:   sourceRepo,
		User:     userRepo,
	}

	// Middleware chains. The rate limiter applies to every route; auth and
	// dataloaders only wrap the routes that use them.
	base := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		base = append(base, limiter.Limit(cfg.RateLimit.RequestsPerMinute))
	}

	base = slices.Clip(base)
	graphqlChain := middleware.Chain(append(base,
		middleware.Auth(jwtManager),
		middleware.Middleware(dataloader.Middleware(dlRepos)),
	)...)
	restChain := middleware.Chain(base...)
	authChain := middleware.Chain(append(base, middleware.Auth(jwtManager))...)

	// Routes.
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	authHandler := rest.NewAuthHandler(userRepo, jwtManager, logger)
	uploadHandler := rest.NewUploadHandler(userRepo, mediaStore, logger)

	mux := http.NewServeMux()
	mux.Handle("GET /live", restChain(http.HandlerFunc(healthHandler.Live)))
	mux.Handle("GET /ready", restChain(http.HandlerFunc(healthHandler.Ready)))
	mux.Handle("GET /health", restChain(http.HandlerFunc(healthHandler.Health)))
	mux.Handle("POST /auth/login", restChain(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /upload", authChain(http.HandlerFunc(uploadHandler.Upload)))
	mux.Handle("POST /query", graphqlChain(gqlSrv))
	mux.Handle("OPTIONS /query", graphqlChain(gqlSrv))

	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("GET /playground", restChain(playground.Handler("Catalog GraphQL", "/query")))
	}

	// HTTP server with graceful shutdown.
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
