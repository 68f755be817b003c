package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"opening_quiz/internal/model"
)

// LoadRecordsList читает jsonl файл, сохраняя порядок строк.
// Отсутствующий файл - ошибка ErrFileNotFound, битая строка - ошибка
// без частичного результата.
func LoadRecordsList(path string) ([]model.OpeningRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var records []model.OpeningRecord

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var record model.OpeningRecord
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("parse %s line %d: %w", path, lineNum, err)
		}

		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return records, nil
}

// LoadRecords - то же самое, но мапой по строковому book_id.
func LoadRecords(path string) (map[string]model.OpeningRecord, error) {
	list, err := LoadRecordsList(path)
	if err != nil {
		return nil, err
	}

	records := make(map[string]model.OpeningRecord, len(list))
	for _, record := range list {
		records[strconv.Itoa(record.BookID)] = record
	}

	return records, nil
}

// LoadRecordsOrEmpty - вариант для http сервера: отсутствующий файл не
// ошибка, просто пустой датасет. Битые строки все равно фатальны.
func LoadRecordsOrEmpty(path string) (map[string]model.OpeningRecord, error) {
	records, err := LoadRecords(path)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			return map[string]model.OpeningRecord{}, nil
		}
		return nil, err
	}
	return records, nil
}
