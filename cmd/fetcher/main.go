package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"opening_quiz/config"
	"opening_quiz/internal/downloader"
	"opening_quiz/internal/externalApi/gutendexApi"
	"opening_quiz/internal/service/fetcherService"
)

func main() {
	limit := flag.Int("limit", 100, "maximum number of books to keep")
	maxWords := flag.Int("max-words", 500, "approximate word budget per opening")
	seed := flag.Int64("seed", 42, "seed for trimming the collected set")
	flag.Parse()

	cfg := config.MustLoad()

	setupLogger(cfg)

	catalogApi := gutendexApi.New(cfg)

	textDownloader := downloader.NewTextDownloader(cfg)

	fetcherSvc := fetcherService.New(cfg, catalogApi, textDownloader)

	params := fetcherService.FetchParams{
		Limit:    *limit,
		MaxWords: *maxWords,
		Seed:     *seed,
	}

	if err := fetcherSvc.Run(context.Background(), params); err != nil {
		slog.Error("fetch failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	slog.Info("openings written", slog.String("path", cfg.OriginalsPath()))
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
