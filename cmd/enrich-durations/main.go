// Command enrich-durations backfills video durations from the YouTube Data API.
// It scans videos whose duration was never resolved (duration = 0), looks up
// each media id, and stores the result in seconds.
//
// Flags:
//
//	--batch    maximum number of videos to process (default 200)
//	--api-key  YouTube Data API key (falls back to YOUTUBE_API_KEY)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/saveschool/catalog-backend/internal/adapter/postgres"
	"github.com/saveschool/catalog-backend/internal/adapter/postgres/video"
	"github.com/saveschool/catalog-backend/internal/adapter/youtube"
	"github.com/saveschool/catalog-backend/internal/app"
	"github.com/saveschool/catalog-backend/internal/config"
)

func main() {
	batch := flag.Int("batch", 200, "maximum number of videos to process")
	apiKey := flag.String("api-key", os.Getenv("YOUTUBE_API_KEY"), "YouTube Data API key")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if *apiKey == "" {
		logger.Error("missing API key: pass --api-key or set YOUTUBE_API_KEY")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	videoRepo := video.New(pool)
	client := youtube.NewClient(*apiKey, logger)

	refs, err := videoRepo.ListMissingDuration(ctx, *batch)
	if err != nil {
		logger.Error("list videos", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(refs) == 0 {
		logger.Info("no videos with missing duration")
		return
	}

	var updated, skipped, failed int
	for _, ref := range refs {
		seconds, err := client.FetchDuration(ctx, ref.MediaID)
		if err != nil {
			logger.Warn("fetch duration",
				slog.String("video_id", ref.ID.String()),
				slog.String("media_id", ref.MediaID),
				slog.String("error", err.Error()),
			)
			failed++
			continue
		}
		if seconds == 0 {
			skipped++
			continue
		}

		if err := videoRepo.SetDuration(ctx, ref.ID, seconds); err != nil {
			logger.Warn("store duration",
				slog.String("video_id", ref.ID.String()),
				slog.String("error", err.Error()),
			)
			failed++
			continue
		}
		updated++
	}

	logger.Info("duration backfill complete",
		slog.Int("scanned", len(refs)),
		slog.Int("updated", updated),
		slog.Int("skipped", skipped),
		slog.Int("failed", failed),
	)

	if failed > 0 {
		os.Exit(1)
	}
}
