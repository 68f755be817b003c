package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"opening_quiz/internal/model"
)

// WriteRecords перезаписывает jsonl файл целиком: одна запись - одна строка.
func WriteRecords(path string, records []model.OpeningRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("mkdir for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("encode record %d: %w", record.BookID, err)
		}
	}

	return nil
}

// WriteMetadata пишет метаданные отобранных книг одним json массивом.
func WriteMetadata(path string, records []model.OpeningRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("mkdir for %s: %w", path, err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
