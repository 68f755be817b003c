package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"opening_quiz/config"
)

type TextDownloader struct {
	client *http.Client
}

func NewTextDownloader(cfg *config.Config) *TextDownloader {
	return &TextDownloader{
		client: &http.Client{Timeout: time.Duration(cfg.Gutendex.DownloadTimeout) * time.Second},
	}
}

// DownloadText скачивает plain-text тело книги целиком.
func (d *TextDownloader) DownloadText(ctx context.Context, url string) (string, error) {
	op := "TextDownloader.DownloadText"
	slog.Info("download start", slog.String("op", op), slog.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("response status not ok")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body err: %w", err)
	}

	slog.Info("download finished", slog.String("op", op), slog.String("url", url), slog.Int("bytes", len(body)))

	return string(body), nil
}
