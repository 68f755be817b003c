package dataset

import (
	"sort"
	"strings"

	"opening_quiz/internal/model"
)

// NoTextMarker - сентинел, который fetcher пишет вместо текста, если
// скачать либо распарсить книгу не удалось.
const NoTextMarker = "[no text extracted]"

// Store держит оба загруженных датасета и отсортированное пересечение
// их book_id. После создания не мутируется, поэтому безопасно шарится
// между конкурентными запросами.
type Store struct {
	originals map[string]model.OpeningRecord
	generated map[string]model.OpeningRecord
	commonIDs []string
}

func NewStore(originals, generated map[string]model.OpeningRecord, filterNoText bool) *Store {
	commonIDs := make([]string, 0, len(originals))
	for id, original := range originals {
		gen, ok := generated[id]
		if !ok {
			continue
		}
		if filterNoText && !usable(original, gen) {
			continue
		}
		commonIDs = append(commonIDs, id)
	}
	sort.Strings(commonIDs)

	return &Store{
		originals: originals,
		generated: generated,
		commonIDs: commonIDs,
	}
}

func usable(original, generated model.OpeningRecord) bool {
	return strings.TrimSpace(original.OriginalOpening) != NoTextMarker &&
		strings.TrimSpace(generated.GptOpening) != NoTextMarker
}

func (s *Store) Original(id string) model.OpeningRecord {
	return s.originals[id]
}

func (s *Store) Generated(id string) model.OpeningRecord {
	return s.generated[id]
}

// CommonIDs возвращает копию: снаружи слайс могут перемешивать.
func (s *Store) CommonIDs() []string {
	ids := make([]string, len(s.commonIDs))
	copy(ids, s.commonIDs)
	return ids
}

func (s *Store) PairsAvailable() int {
	return len(s.commonIDs)
}
