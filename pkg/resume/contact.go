package resume

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	// Most specific first; the first pattern with any match wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`),
		regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
	}

	reLineSplit = regexp.MustCompile(`[\n,;.]`)
	reNonDigit  = regexp.MustCompile(`\D`)

	nameDisqualifiers = []*regexp.Regexp{
		regexp.MustCompile(`@`),
		regexp.MustCompile(`(?i)phone|tel|mobile|cell|fax`),
		regexp.MustCompile(`(?i)resume|cv|curriculum`),
		regexp.MustCompile(`(?i)experience|education|skills|summary|objective`),
		regexp.MustCompile(`(?i)linkedin|github|portfolio|website`),
		regexp.MustCompile(`(?i)address|street|city|state|zip`),
		regexp.MustCompile(`^\d`),
		regexp.MustCompile(`[^\w\s-]`),
	}
	reCapitalized = regexp.MustCompile(`^[A-Z][a-z]+$`)
	reLettersOnly = regexp.MustCompile(`^[A-Za-z\s]+$`)
)

const (
	strictNameLines = 15
	looseNameLines  = 10
)

// ExtractContact guesses name, email and phone from resume text.
// It never fails: fields that cannot be found are left nil.
func ExtractContact(text string) Contact {
	var c Contact
	if m := reEmail.FindString(text); m != "" {
		c.Email = &m
	}
	if p, ok := extractPhone(text); ok {
		c.Phone = &p
	}
	if n, ok := extractName(text); ok {
		c.Name = &n
	}
	return c
}

func extractPhone(text string) (string, bool) {
	for _, re := range phonePatterns {
		m := re.FindString(text)
		if m == "" {
			continue
		}
		original := strings.TrimSpace(m)
		digits := reNonDigit.ReplaceAllString(original, "")
		if len(digits) == 11 && digits[0] == '1' {
			digits = digits[1:]
		}
		if len(digits) == 10 {
			return digits, true
		}
		return original, true
	}
	return "", false
}

func extractName(text string) (string, bool) {
	lines := splitLines(text)

	for _, line := range head(lines, strictNameLines) {
		if isNameLine(line) {
			return line, true
		}
	}
	for _, line := range head(lines, looseNameLines) {
		n := utf8.RuneCountInString(line)
		if n > 2 && n < 50 && reLettersOnly.MatchString(line) && len(strings.Split(line, " ")) >= 2 {
			return line, true
		}
	}
	return "", false
}

func splitLines(text string) []string {
	parts := reLineSplit.Split(text, -1)
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}

func head(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

// isNameLine requires 2-4 words with at least min(2, words) of them
// capitalised, after every disqualifier has been ruled out.
func isNameLine(line string) bool {
	for _, re := range nameDisqualifiers {
		if re.MatchString(line) {
			return false
		}
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	capitalized := 0
	for _, w := range words {
		if reCapitalized.MatchString(w) {
			capitalized++
		}
	}
	return capitalized >= min(2, len(words))
}
