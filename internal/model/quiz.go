package model

const (
	SlotA = "A"
	SlotB = "B"

	LabelOriginal = "Original"
	LabelGpt      = "GPT"
)

type QuizOption struct {
	Slot  string `json:"slot"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

// QuizPair - один вопрос викторины: два варианта текста для одной книги,
// ровно один из них с лейблом Original. CorrectLabel всегда производное
// значение - слот варианта с лейблом Original.
type QuizPair struct {
	BookID       int          `json:"book_id"`
	Title        string       `json:"title"`
	Author       string       `json:"author"`
	Options      []QuizOption `json:"options"`
	CorrectLabel string       `json:"correct_label"`
}
