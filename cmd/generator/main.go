package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"opening_quiz/config"
	"opening_quiz/internal/externalApi/geminiApi"
	"opening_quiz/internal/service/generatorService"
)

func main() {
	maxRecords := flag.Int("max-records", 0, "limit how many books to process, 0 for all")
	overwrite := flag.Bool("overwrite", false, "regenerate even if already present")
	flag.Parse()

	cfg := config.MustLoad()

	setupLogger(cfg)

	ctx := context.Background()

	llmApi, err := geminiApi.New(ctx, cfg)
	if err != nil {
		slog.Error("init gemini client failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	generatorSvc := generatorService.New(cfg, llmApi)

	params := generatorService.GenerateParams{
		MaxRecords: *maxRecords,
		Overwrite:  *overwrite,
	}

	if err := generatorSvc.Run(ctx, params); err != nil {
		slog.Error("generation failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	slog.Info("generations written", slog.String("path", cfg.GeneratedPath()))
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
