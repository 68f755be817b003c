package fetcherService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"opening_quiz/config"
	"opening_quiz/internal/dataset"
	"opening_quiz/internal/externalApi/gutendexApi"
	"opening_quiz/internal/model"
	"opening_quiz/internal/parser"
)

//go:generate mockgen -source=fetcherService.go -destination=mocks/mocks.go -package=mocks

type CatalogApi interface {
	SearchUrl(author string) string
	GetPage(ctx context.Context, pageUrl string) (books []gutendexApi.Book, nextUrl string, err error)
}

type TextDownloader interface {
	DownloadText(ctx context.Context, url string) (string, error)
}

type FetcherService struct {
	cfg        *config.Config
	catalogApi CatalogApi
	downloader TextDownloader
	catalog    []authorConfig
}

func New(cfg *config.Config, catalogApi CatalogApi, downloader TextDownloader) *FetcherService {
	return &FetcherService{
		cfg:        cfg,
		catalogApi: catalogApi,
		downloader: downloader,
		catalog:    authorCatalog,
	}
}

type FetchParams struct {
	Limit    int
	MaxWords int
	Seed     int64
}

// Run собирает каталог книг, скачивает тексты и пишет book_metadata.json
// плюс original_openings.jsonl.
func (s *FetcherService) Run(ctx context.Context, params FetchParams) error {
	op := "FetcherService.Run"

	records, err := s.CollectBooks(ctx, params.Limit, params.Seed)
	if err != nil {
		return fmt.Errorf("collect books: %w", err)
	}
	if len(records) == 0 {
		return errors.New("no books collected, check network or author catalog")
	}

	if err := dataset.WriteMetadata(s.cfg.MetadataPath(), records); err != nil {
		return err
	}

	slog.Info("fetching openings", slog.String("op", op), slog.Int("books", len(records)))

	for i := range records {
		records[i].OriginalOpening = s.fetchOpening(ctx, records[i], params.MaxWords)
	}

	if err := dataset.WriteRecords(s.cfg.OriginalsPath(), records); err != nil {
		return err
	}

	slog.Info("fetch finished", slog.String("op", op), slog.Int("records", len(records)))

	return nil
}

// CollectBooks обходит каталог по авторам из authorCatalog, отсеивая
// исключенные названия, дубликаты и книги без plain-text формата.
// Если собрано больше limit - список перемешивается seed'ом и обрезается.
func (s *FetcherService) CollectBooks(ctx context.Context, limit int, seed int64) ([]model.OpeningRecord, error) {
	op := "FetcherService.CollectBooks"

	var collected []model.OpeningRecord
	seenIDs := map[int]bool{}
	seenTitles := map[string]bool{}

	for _, author := range s.catalog {
		excluded := map[string]bool{}
		for _, title := range author.Exclude {
			excluded[parser.NormalizeTitle(title)] = true
		}

		var authorBooks []model.OpeningRecord
		pageUrl := s.catalogApi.SearchUrl(author.Name)
		for pageUrl != "" && len(authorBooks) < author.Target {
			books, nextUrl, err := s.catalogApi.GetPage(ctx, pageUrl)
			if err != nil {
				return nil, fmt.Errorf("search %q: %w", author.Name, err)
			}

			for _, book := range books {
				record, ok := s.screenBook(book, author, excluded, seenIDs, seenTitles)
				if !ok {
					continue
				}

				seenIDs[book.ID] = true
				seenTitles[parser.NormalizeTitle(book.Title)] = true
				authorBooks = append(authorBooks, record)
				if len(authorBooks) >= author.Target {
					break
				}
			}

			pageUrl = nextUrl
		}

		slog.Info("author processed", slog.String("op", op), slog.String("author", author.Name), slog.Int("books", len(authorBooks)))
		collected = append(collected, authorBooks...)
	}

	if len(collected) > limit {
		rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
		rng.Shuffle(len(collected), func(i, j int) {
			collected[i], collected[j] = collected[j], collected[i]
		})
		collected = collected[:limit]
	}

	return collected, nil
}

func (s *FetcherService) screenBook(
	book gutendexApi.Book,
	author authorConfig,
	excluded map[string]bool,
	seenIDs map[int]bool,
	seenTitles map[string]bool,
) (model.OpeningRecord, bool) {
	if !containsLanguage(book.Languages, "en") {
		return model.OpeningRecord{}, false
	}

	matched := false
	for _, candidate := range book.Authors {
		if parser.AuthorMatches(author.Name, candidate.Name) {
			matched = true
			break
		}
	}
	if !matched {
		return model.OpeningRecord{}, false
	}

	titleNorm := parser.NormalizeTitle(book.Title)
	if isExcludedTitle(titleNorm, excluded) ||
		strings.Contains(titleNorm, "index of the project gutenberg works") ||
		strings.HasPrefix(titleNorm, "project gutenberg collection of") {
		return model.OpeningRecord{}, false
	}

	if seenIDs[book.ID] || seenTitles[titleNorm] {
		return model.OpeningRecord{}, false
	}

	textUrl := parser.BestTextUrl(book.Formats)
	if textUrl == "" {
		return model.OpeningRecord{}, false
	}

	return model.OpeningRecord{
		BookID:      book.ID,
		Title:       strings.TrimSpace(book.Title),
		Author:      author.Name,
		DownloadUrl: textUrl,
		GutendexUrl: fmt.Sprintf("https://www.gutenberg.org/ebooks/%d", book.ID),
		Description: parser.PaddedDescription(book.Subjects),
		Subjects:    book.Subjects,
	}, true
}

func isExcludedTitle(titleNorm string, excluded map[string]bool) bool {
	if excluded[titleNorm] {
		return true
	}
	for ex := range excluded {
		if strings.HasPrefix(titleNorm, ex+" ") ||
			strings.Contains(titleNorm, " "+ex+" ") ||
			strings.HasSuffix(titleNorm, " "+ex) {
			return true
		}
	}
	return false
}

// fetchOpening скачивает и обрезает текст книги. Неудача не валит весь
// прогон - пишем сентинел, cli потом отфильтрует такую запись.
func (s *FetcherService) fetchOpening(ctx context.Context, record model.OpeningRecord, maxWords int) string {
	op := "FetcherService.fetchOpening"

	text, err := s.downloader.DownloadText(ctx, record.DownloadUrl)
	if err != nil {
		slog.Error(
			"failed to fetch book text",
			slog.String("op", op),
			slog.Int("bookID", record.BookID),
			slog.String("title", record.Title),
			slog.String("err", err.Error()),
		)
		return dataset.NoTextMarker
	}

	cleaned := parser.StripGutenbergHeaders(text)
	if cleaned == "" {
		cleaned = text
	}

	opening := parser.ExtractOpening(cleaned, maxWords)
	if strings.TrimSpace(opening) == "" {
		return dataset.NoTextMarker
	}

	return opening
}

func containsLanguage(languages []string, lang string) bool {
	for _, l := range languages {
		if l == lang {
			return true
		}
	}
	return false
}
