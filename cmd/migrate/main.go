// Command migrate applies database migrations with goose.
//
// Flags:
//
//	--dir      migrations directory (default "./migrations")
//	--command  goose command: up, down, status, version (default "up")
//
// The database DSN comes from the application config (DATABASE_DSN).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/saveschool/catalog-backend/internal/app"
	"github.com/saveschool/catalog-backend/internal/config"
)

func main() {
	dir := flag.String("dir", "./migrations", "migrations directory")
	command := flag.String("command", "up", "goose command: up, down, status, version")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error("ping database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		logger.Error("set dialect", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var gooseErr error
	switch *command {
	case "up":
		gooseErr = goose.UpContext(ctx, db, *dir)
	case "down":
		gooseErr = goose.DownContext(ctx, db, *dir)
	case "status":
		gooseErr = goose.StatusContext(ctx, db, *dir)
	case "version":
		gooseErr = goose.VersionContext(ctx, db, *dir)
	default:
		logger.Error("unknown command", slog.String("command", *command))
		os.Exit(1)
	}

	if gooseErr != nil {
		logger.Error("migration failed",
			slog.String("command", *command),
			slog.String("error", gooseErr.Error()),
		)
		os.Exit(1)
	}

	logger.Info("migration complete", slog.String("command", *command))
}
