package generatorService

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"opening_quiz/config"
	"opening_quiz/internal/dataset"
	"opening_quiz/internal/model"
)

//go:generate mockgen -source=generatorService.go -destination=mocks/mocks.go -package=mocks

type LlmApi interface {
	GenerateOpening(ctx context.Context, prompt string) (string, error)
}

type GeneratorService struct {
	cfg    *config.Config
	llmApi LlmApi
}

func New(cfg *config.Config, llmApi LlmApi) *GeneratorService {
	return &GeneratorService{cfg: cfg, llmApi: llmApi}
}

type GenerateParams struct {
	MaxRecords int // 0 - без ограничения
	Overwrite  bool
}

// Run генерирует gpt-версии первых страниц для собранных оригиналов.
// Уже сгенерированные записи пропускаются, если не задан Overwrite.
// Файл перезаписывается после каждой генерации, чтобы обрыв не терял
// готовые записи.
func (s *GeneratorService) Run(ctx context.Context, params GenerateParams) error {
	op := "GeneratorService.Run"

	originals, err := dataset.LoadRecordsList(s.cfg.OriginalsPath())
	if err != nil {
		return fmt.Errorf("load originals: %w", err)
	}

	existing, err := dataset.LoadRecordsOrEmpty(s.cfg.GeneratedPath())
	if err != nil {
		return fmt.Errorf("load existing generations: %w", err)
	}

	toProcess := originals
	if params.MaxRecords > 0 && params.MaxRecords < len(originals) {
		toProcess = originals[:params.MaxRecords]
	}

	slog.Info(
		"generating openings",
		slog.String("op", op),
		slog.Int("originals", len(originals)),
		slog.Int("toProcess", len(toProcess)),
		slog.Bool("overwrite", params.Overwrite),
	)

	results := make([]model.OpeningRecord, 0, len(originals))
	for _, entry := range toProcess {
		key := strconv.Itoa(entry.BookID)
		if !params.Overwrite {
			if prev, ok := existing[key]; ok {
				results = append(results, prev)
				continue
			}
		}

		record, err := s.generateRecord(ctx, entry)
		if err != nil {
			return fmt.Errorf("generate for book %d: %w", entry.BookID, err)
		}

		results = append(results, record)
		if err := dataset.WriteRecords(s.cfg.GeneratedPath(), results); err != nil {
			return err
		}

		slog.Info("opening generated", slog.String("op", op), slog.Int("bookID", entry.BookID), slog.String("title", entry.Title))
	}

	// Записи за пределами MaxRecords не трогаем.
	if !params.Overwrite && len(toProcess) < len(originals) {
		for _, entry := range originals[len(toProcess):] {
			if prev, ok := existing[strconv.Itoa(entry.BookID)]; ok {
				results = append(results, prev)
			}
		}
	}

	if err := dataset.WriteRecords(s.cfg.GeneratedPath(), results); err != nil {
		return err
	}

	slog.Info("generation finished", slog.String("op", op), slog.Int("records", len(results)))

	return nil
}

func (s *GeneratorService) generateRecord(ctx context.Context, entry model.OpeningRecord) (model.OpeningRecord, error) {
	subjects := SubjectSummary(entry.Subjects, entry.Description)
	prompt := BuildPrompt(entry.Author, entry.Title, subjects)

	text, err := s.llmApi.GenerateOpening(ctx, prompt)
	if err != nil {
		return model.OpeningRecord{}, err
	}

	return model.OpeningRecord{
		BookID:       entry.BookID,
		Author:       entry.Author,
		Title:        entry.Title,
		SubjectsUsed: subjects,
		Prompt:       prompt,
		Model:        s.cfg.Llm.Model,
		GptOpening:   text,
	}, nil
}

// SubjectSummary - первые десять непустых тем через запятую, иначе
// описание книги, иначе заглушка.
func SubjectSummary(subjects []string, fallback string) string {
	cleaned := make([]string, 0, len(subjects))
	for _, s := range subjects {
		s = strings.TrimSpace(s)
		if s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) > 10 {
		cleaned = cleaned[:10]
	}
	if len(cleaned) > 0 {
		return strings.Join(cleaned, ", ")
	}
	if fallback = strings.TrimSpace(fallback); fallback != "" {
		return fallback
	}
	return "unspecified subjects"
}

func BuildPrompt(author, title, subjects string) string {
	return fmt.Sprintf(
		"Write the first page of a book in the style of %s's %s. "+
			"Use approximately 500 words. As a reminder, the subject "+
			"material of this book includes: %s. Even if the first page is in "+
			"your training data, make sure not to copy it exactly; write a "+
			"similarly-styled first page yourself.",
		author, title, subjects,
	)
}
