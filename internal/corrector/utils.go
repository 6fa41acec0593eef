package corrector

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	punctRe = regexp.MustCompile(`[.,:;"?\\]`)
	braceRe = regexp.MustCompile(`\{.*\}`)
)

// CleanText replaces sentence punctuation with spaces and drops
// brace-delimited payloads, leaving a whitespace-tokenizable string.
func CleanText(text string) string {
	clean := punctRe.ReplaceAllString(text, " ")
	clean = braceRe.ReplaceAllString(clean, "")
	return strings.TrimSpace(clean)
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// replaceToken substitutes a whole whitespace-delimited token, leaving
// any other occurrence of the same character sequence alone.
func replaceToken(text, token, replacement string) string {
	re := regexp.MustCompile(" " + regexp.QuoteMeta(token) + " ")
	return strings.TrimSpace(re.ReplaceAllString(" "+text+" ", " "+replacement+" "))
}

func isTitle(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) == string(r[0]) && strings.ToLower(string(r[1:])) == string(r[1:])
}

func isUpper(s string) bool { return strings.ToUpper(s) == s }

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

// matchCase shapes a lower-cased replacement after the casing of the
// token it replaces.
func matchCase(original, replacement string) string {
	if isTitle(original) {
		return title(replacement)
	}
	if isUpper(original) {
		return strings.ToUpper(replacement)
	}
	return replacement
}
