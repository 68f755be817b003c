package gutendexApi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"opening_quiz/config"
)

type Author struct {
	Name string `json:"name"`
}

type Book struct {
	ID        int               `json:"id"`
	Title     string            `json:"title"`
	Languages []string          `json:"languages"`
	Authors   []Author          `json:"authors"`
	Subjects  []string          `json:"subjects"`
	Formats   map[string]string `json:"formats"`
}

type searchResponse struct {
	Next    string `json:"next"`
	Results []Book `json:"results"`
}

type GutendexApi struct {
	cfg    *config.Config
	client *http.Client
}

func New(cfg *config.Config) *GutendexApi {
	return &GutendexApi{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.Gutendex.RequestTimeout) * time.Second},
	}
}

// SearchUrl - адрес первой страницы поиска по автору, дальше пагинация
// идет по ссылкам next из ответов.
func (g *GutendexApi) SearchUrl(author string) string {
	return fmt.Sprintf("%s/books?search=%s", g.cfg.Gutendex.BaseUrl, url.QueryEscape(author))
}

func (g *GutendexApi) GetPage(ctx context.Context, pageUrl string) (books []Book, nextUrl string, err error) {
	op := "GutendexApi.GetPage"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageUrl, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		slog.Error("gutendex request failed", slog.String("op", op), slog.String("url", pageUrl), slog.String("err", err.Error()))
		return nil, "", fmt.Errorf("gutendex request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("gutendex response status not ok: %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, "", fmt.Errorf("decode gutendex response: %w", err)
	}

	return payload.Results, payload.Next, nil
}
