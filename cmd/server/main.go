package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opening_quiz/config"
	"opening_quiz/internal/dataset"
	"opening_quiz/internal/service/quizService"
	"opening_quiz/internal/transport/rest"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.Any("cfg", cfg))

	originals, err := dataset.LoadRecordsOrEmpty(cfg.OriginalsPath())
	if err != nil {
		slog.Error("load originals failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	generated, err := dataset.LoadRecordsOrEmpty(cfg.GeneratedPath())
	if err != nil {
		slog.Error("load generations failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	store := dataset.NewStore(originals, generated, false)

	slog.Info(
		"dataset loaded",
		slog.Int("originals", len(originals)),
		slog.Int("generated", len(generated)),
		slog.Int("pairsAvailable", store.PairsAvailable()),
	)

	quizSvc := quizService.New(cfg, store)

	restController := rest.NewController(cfg, quizSvc)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: rest.NewRouter(cfg, restController),
	}

	go func() {
		slog.Info("http server started", slog.Int("port", cfg.HTTP.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-interrupt

	slog.Info("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("http server shutdown failed", slog.String("err", err.Error()))
	}
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
