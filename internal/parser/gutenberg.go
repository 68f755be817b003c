package parser

import (
	"regexp"
	"sort"
	"strings"
)

var (
	nonAlnumRe  = regexp.MustCompile(`[^a-z0-9]+`)
	wordRe      = regexp.MustCompile(`[A-Za-z']+`)
	nameTokenRe = regexp.MustCompile(`[A-Za-z]+`)
)

var startMarkers = []string{
	"*** start of this project gutenberg ebook",
	"***start of the project gutenberg ebook",
	"*** start of the project gutenberg ebook",
}

var endMarkers = []string{
	"*** end of this project gutenberg ebook",
	"***end of the project gutenberg ebook",
	"*** end of the project gutenberg ebook",
}

var preferredTextFormats = []string{
	"text/plain; charset=utf-8",
	"text/plain; charset=us-ascii",
	"text/plain; charset=iso-8859-1",
	"text/plain",
}

var textSuffixes = []string{
	".txt",
	".txt?download=1",
	".txt.utf-8",
	".txt.utf-8?download=1",
}

var defaultDescriptionWords = []string{
	"literary", "fiction", "classic", "character", "driven",
	"story", "public", "domain", "novel", "themes",
}

// NormalizeTitle приводит название к виду для сравнения: нижний регистр,
// только буквы и цифры, одиночные пробелы.
func NormalizeTitle(value string) string {
	cleaned := nonAlnumRe.ReplaceAllString(strings.ToLower(value), " ")
	return strings.Join(strings.Fields(cleaned), " ")
}

// AuthorMatches - каталог пишет авторов как "Melville, Herman", конфиг как
// "Herman Melville", поэтому сравниваем множества токенов имен.
func AuthorMatches(target, candidate string) bool {
	targetTokens := nameTokens(target)
	candidateTokens := nameTokens(candidate)

	for token := range targetTokens {
		if !candidateTokens[token] {
			return false
		}
	}
	return true
}

func nameTokens(name string) map[string]bool {
	tokens := map[string]bool{}
	for _, token := range nameTokenRe.FindAllString(strings.ToLower(name), -1) {
		tokens[token] = true
	}
	return tokens
}

func looksLikeText(url string) bool {
	for _, suffix := range textSuffixes {
		if strings.HasSuffix(url, suffix) {
			return true
		}
	}
	return false
}

// BestTextUrl выбирает plain-text ссылку из форматов каталога, сначала по
// списку предпочтительных mime типов, затем любой text/plain.
func BestTextUrl(formats map[string]string) string {
	for _, key := range preferredTextFormats {
		if url, ok := formats[key]; ok && looksLikeText(url) {
			return url
		}
	}

	keys := make([]string, 0, len(formats))
	for key := range formats {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.HasPrefix(key, "text/plain") && looksLikeText(formats[key]) {
			return formats[key]
		}
	}

	return ""
}

// StripGutenbergHeaders отрезает служебную обвязку Project Gutenberg
// до маркера начала и после маркера конца книги.
func StripGutenbergHeaders(text string) string {
	lower := strings.ToLower(text)

	start := 0
	for _, marker := range startMarkers {
		if loc := strings.Index(lower, marker); loc != -1 {
			start = loc + len(marker)
			break
		}
	}

	end := len(text)
	for _, marker := range endMarkers {
		if loc := strings.Index(lower, marker); loc != -1 {
			end = loc
			break
		}
	}

	if start > end {
		return ""
	}

	return strings.TrimSpace(text[start:end])
}

// ExtractOpening набирает абзацы с начала текста, пока суммарное число слов
// не дойдет до maxWords. Последний абзац не обрезается.
func ExtractOpening(text string, maxWords int) string {
	clean := strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))

	var selected []string
	wordTotal := 0
	for _, para := range strings.Split(clean, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		wordTotal += len(strings.Fields(para))
		selected = append(selected, para)
		if wordTotal >= maxWords {
			break
		}
	}

	return strings.Join(selected, "\n\n")
}

// PaddedDescription собирает ровно десять слов-тем из subjects каталога,
// добивая дефолтными словами при нехватке.
func PaddedDescription(subjects []string) string {
	var tokens []string
	for _, subject := range subjects {
		for _, token := range wordRe.FindAllString(subject, -1) {
			tokens = append(tokens, strings.ToLower(token))
		}
	}

	for len(tokens) < 10 {
		tokens = append(tokens, defaultDescriptionWords[len(tokens)%len(defaultDescriptionWords)])
	}

	return strings.Join(tokens[:10], " ")
}
