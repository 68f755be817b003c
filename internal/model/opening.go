package model

// OpeningRecord - одна строка jsonl датасета. Оригинальные и сгенерированные
// записи имеют общие поля book_id/title/author, текст лежит в своем поле
// в зависимости от датасета (original_opening либо gpt_opening).
type OpeningRecord struct {
	BookID      int      `json:"book_id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Description string   `json:"description,omitempty"`
	Subjects    []string `json:"subjects,omitempty"`

	// поля fetcher'а
	DownloadUrl string `json:"download_url,omitempty"`
	GutendexUrl string `json:"gutendex_url,omitempty"`

	OriginalOpening string `json:"original_opening,omitempty"`

	// поля generator'а
	SubjectsUsed string `json:"subjects_used,omitempty"`
	Prompt       string `json:"prompt,omitempty"`
	Model        string `json:"model,omitempty"`
	GptOpening   string `json:"gpt_opening,omitempty"`
}
