package quizService

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"opening_quiz/config"
	"opening_quiz/internal/model"
	"opening_quiz/utils"
)

type Store interface {
	Original(id string) model.OpeningRecord
	Generated(id string) model.OpeningRecord
	CommonIDs() []string
	PairsAvailable() int
}

type QuizService struct {
	cfg   *config.Config
	store Store
}

func New(cfg *config.Config, store Store) *QuizService {
	return &QuizService{cfg: cfg, store: store}
}

func (s *QuizService) PairsAvailable() int {
	return s.store.PairsAvailable()
}

// SamplePairs - политика http сервера: при нулевом пересечении ошибка,
// при избыточном count молча отдаем сколько есть.
func (s *QuizService) SamplePairs(ctx context.Context, count int, seed *int64) ([]model.QuizPair, error) {
	op := "QuizService.SamplePairs"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if count <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidPairCount, count)
	}

	available := s.store.PairsAvailable()
	if available == 0 {
		slog.Warn("no pairs available", slog.String("rqID", rqID), slog.String("op", op))
		return nil, ErrNoPairsAvailable
	}

	if count > available {
		count = available
	}

	pairs := s.samplePairs(count, newRng(seed))

	slog.Info("pairs sampled", slog.String("rqID", rqID), slog.String("op", op), slog.Int("count", len(pairs)))

	return pairs, nil
}

// SamplePairsStrict - политика cli: просить больше, чем есть - ошибка
// без частичного результата. Расхождение с http поведением намеренное.
func (s *QuizService) SamplePairsStrict(ctx context.Context, count int, seed *int64) ([]model.QuizPair, error) {
	op := "QuizService.SamplePairsStrict"
	rqID := utils.GetRequestIDFromCtx(ctx)

	// отрицательный count иначе доберется до make с отрицательной capacity
	if count <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidPairCount, count)
	}

	available := s.store.PairsAvailable()
	if available < count {
		slog.Warn(
			"not enough pairs",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.Int("requested", count),
			slog.Int("available", available),
		)
		return nil, fmt.Errorf("need %d pairs but only %d have generations: %w", count, available, ErrInsufficientPairs)
	}

	return s.samplePairs(count, newRng(seed)), nil
}

// newRng создает отдельный генератор на вызов: глобальный генератор
// сломал бы детерминизм при конкурентных запросах с разными seed.
func newRng(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(uint64(*seed), uint64(*seed)))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// samplePairs выбирает count различных id без возвращения (равномерно по
// оставшимся) и собирает пары в порядке выбора. Все случайные обращения -
// сначала выборка id, затем пошаговое перемешивание вариантов каждой пары -
// идут через один генератор, поэтому последовательность полностью
// определяется seed'ом.
func (s *QuizService) samplePairs(count int, rng *rand.Rand) []model.QuizPair {
	ids := s.store.CommonIDs()
	for i := 0; i < count; i++ {
		j := i + rng.IntN(len(ids)-i)
		ids[i], ids[j] = ids[j], ids[i]
	}

	pairs := make([]model.QuizPair, 0, count)
	for _, id := range ids[:count] {
		pairs = append(pairs, buildPair(s.store.Original(id), s.store.Generated(id), rng))
	}

	return pairs
}

func buildPair(original, generated model.OpeningRecord, rng *rand.Rand) model.QuizPair {
	options := []model.QuizOption{
		{Label: model.LabelOriginal, Text: original.OriginalOpening},
		{Label: model.LabelGpt, Text: generated.GptOpening},
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	options[0].Slot = model.SlotA
	options[1].Slot = model.SlotB

	correctLabel := options[0].Slot
	if options[1].Label == model.LabelOriginal {
		correctLabel = options[1].Slot
	}

	return model.QuizPair{
		BookID:       original.BookID,
		Title:        original.Title,
		Author:       original.Author,
		Options:      options,
		CorrectLabel: correctLabel,
	}
}
