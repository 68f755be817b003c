package geminiApi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"opening_quiz/config"
)

type GeminiApi struct {
	cfg    *config.Config
	client *genai.Client
}

// New создает клиент Gemini. Ключ берется из переменной окружения
// GEMINI_API_KEY самим SDK.
func New(ctx context.Context, cfg *config.Config) (*GeminiApi, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiApi{cfg: cfg, client: client}, nil
}

func (g *GeminiApi) GenerateOpening(ctx context.Context, prompt string) (string, error) {
	op := "GeminiApi.GenerateOpening"

	result, err := g.client.Models.GenerateContent(
		ctx,
		g.cfg.Llm.Model,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		slog.Error("gemini request failed", slog.String("op", op), slog.String("err", err.Error()))
		return "", fmt.Errorf("gemini request: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", errors.New("empty response from model")
	}

	return text, nil
}
