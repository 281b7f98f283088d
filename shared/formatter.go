package shared

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TruncateText cuts text to at most maxLen runes. It prefers the last sentence end past the
// middle of the limit, falls back to the last word boundary, and never splits a word.
// A single word longer than maxLen yields an empty string.
func TruncateText(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	runes := []rune(text)
	window := runes[:maxLen]

	// Sentence end: punctuation followed by whitespace, or punctuation at the very edge of the
	// window when the next rune is whitespace.
	sentenceEnd := -1
	for i := len(window) - 1; i >= 0; i-- {
		if !isSentencePunct(window[i]) {
			continue
		}
		next := runes[i+1]
		if unicode.IsSpace(next) {
			sentenceEnd = i + 1
			break
		}
	}
	if sentenceEnd > maxLen/2 {
		return strings.TrimRightFunc(string(runes[:sentenceEnd]), unicode.IsSpace)
	}

	// The cut already lands on a word boundary
	if unicode.IsSpace(runes[maxLen]) {
		return strings.TrimRightFunc(string(window), unicode.IsSpace)
	}
	for i := len(window) - 1; i >= 0; i-- {
		if unicode.IsSpace(window[i]) {
			return strings.TrimRightFunc(string(runes[:i]), unicode.IsSpace)
		}
	}
	return ""
}

func isSentencePunct(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

// TruncateWithEllipsis shortens text for log lines and console output.
func TruncateWithEllipsis(text string, maxLen int) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	lastSpaceIx := -1
	count := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		count++
		if count > maxLen {
			if lastSpaceIx < 0 {
				return string([]rune(text)[:maxLen]) + "…"
			}
			return text[:lastSpaceIx] + "…"
		}
	}
	return text
}

// OneLine collapses all whitespace runs, newlines included, into single spaces.
func OneLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
