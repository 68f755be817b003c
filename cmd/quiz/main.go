package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"opening_quiz/config"
	"opening_quiz/internal/dataset"
	"opening_quiz/internal/service/quizService"
	"opening_quiz/internal/transport/console"
)

func main() {
	pairs := flag.Int("pairs", 10, "how many pairs to play")
	seedFlag := flag.Int64("seed", 0, "seed for reproducible sampling")
	flag.Parse()

	// флаг seed опциональный, отличаем заданный ноль от незаданного
	var seed *int64
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seed = seedFlag
		}
	})

	setupLogger()

	if err := run(*pairs, seed); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run(pairs int, seed *int64) error {
	cfg := config.MustLoad()

	originals, err := dataset.LoadRecords(cfg.OriginalsPath())
	if err != nil {
		if errors.Is(err, dataset.ErrFileNotFound) {
			fmt.Printf("Missing %s. Run the fetcher to collect originals first.\n", cfg.OriginalsPath())
			return nil
		}
		return err
	}

	generated, err := dataset.LoadRecords(cfg.GeneratedPath())
	if err != nil {
		if errors.Is(err, dataset.ErrFileNotFound) {
			fmt.Printf("Missing %s. Run the generator first.\n", cfg.GeneratedPath())
			return nil
		}
		return err
	}

	store := dataset.NewStore(originals, generated, true)

	quizSvc := quizService.New(cfg, store)

	ctrl := console.NewController(cfg, quizSvc, os.Stdin, os.Stdout)

	if err := ctrl.Run(context.Background(), pairs, seed); err != nil {
		if errors.Is(err, quizService.ErrInsufficientPairs) || errors.Is(err, quizService.ErrNoPairsAvailable) {
			fmt.Printf("%s\nRun the generator to populate more pairs.\n", err)
			return nil
		}
		return err
	}

	return nil
}

func setupLogger() {
	// stdout занят самой викториной
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(log)
}
