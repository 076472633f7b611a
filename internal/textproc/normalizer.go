// Package textproc turns raw page text into the bounded plain text that is fed to the quiz prompt.
package textproc

import (
	"regexp"
	"strings"
)

// DefaultMaxContentLength is the character budget used when no explicit limit is configured.
const DefaultMaxContentLength = 50000

// Ellipsis is appended to text cut by Truncate.
const Ellipsis = "..."

var markupTag = regexp.MustCompile(`<[^>]*>`)

// StripMarkup removes every <...> tag from raw.
func StripMarkup(raw string) string {
	return markupTag.ReplaceAllString(raw, "")
}

// NormalizeWhitespace collapses every whitespace run into a single space and trims both ends.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Truncate cuts text to maxLength characters and appends Ellipsis when it is longer.
// Lengths are counted in runes so multi-byte text is never split inside a character.
func Truncate(text string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	// cheap path: byte length bounds rune length
	if len(text) <= maxLength {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + Ellipsis
}

// CleanPageContent strips markup, normalizes whitespace and truncates, in that order.
func CleanPageContent(raw string, maxLength int) string {
	text := StripMarkup(raw)
	text = NormalizeWhitespace(text)
	return Truncate(text, maxLength)
}
