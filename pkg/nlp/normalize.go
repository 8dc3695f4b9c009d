package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// NormalizeText приводит текст к упрощённому виду для сравнения:
// - нижний регистр
// - заменяет все не-буквенно-цифровые символы на пробелы
// - схлопывает пробелы
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// MatchesAny сообщает, встречается ли запрос подстрокой хотя бы в одном из полей.
// Сравнение идёт по нормализованному виду, так что "john@x" найдёт "John@X.com".
// Пустой запрос совпадает со всем.
func MatchesAny(query string, fields ...string) bool {
	q := NormalizeText(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(NormalizeText(f), q) {
			return true
		}
	}
	return false
}
