package logic

import (
	"bluebot/shared"
	"github.com/microcosm-cc/bluemonday"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reMarkdown = regexp.MustCompile("[*_`~#>]")
	reEmoji    = regexp.MustCompile("[\U0001F600-\U0001F6FF☀-⛿✀-➿]")
	reDashes   = regexp.MustCompile("-+")
)

// Quotes that models like to wrap their answer in
var quotePairs = map[rune]rune{'"': '"', '“': '”', '«': '»', '\'': '\''}

const doubleQuotes = "\"“”«»"

func stripHtml(htm string) string {
	p := bluemonday.StrictPolicy()
	plain := p.Sanitize(htm)
	plain = html.UnescapeString(plain)
	plain = strings.TrimSpace(plain)
	return plain
}

// trimQuotes drops matching quote pairs around the whole text, then stray double quotes
// at either end. A lone apostrophe is left alone.
func trimQuotes(text string) string {
	for {
		text = strings.TrimSpace(text)
		first, size := utf8.DecodeRuneInString(text)
		closer, ok := quotePairs[first]
		if !ok || len(text) <= size || !strings.HasSuffix(text, string(closer)) {
			break
		}
		text = text[size : len(text)-utf8.RuneLen(closer)]
	}
	return strings.TrimSpace(strings.Trim(text, doubleQuotes))
}

func stripDecorations(text string) string {
	text = reMarkdown.ReplaceAllString(text, "")
	text = reEmoji.ReplaceAllString(text, "")
	return text
}

// cleanPostText removes markup and emoji, then truncates to maxLen.
func cleanPostText(text string, maxLen int) string {
	text = stripHtml(text)
	text = stripDecorations(text)
	text = trimQuotes(text)
	if maxLen > 0 {
		text = shared.TruncateText(text, maxLen)
	}
	return text
}

// cleanReplyText is cleanPostText plus dash removal and a single line.
func cleanReplyText(text string, maxLen int) string {
	text = stripHtml(text)
	text = stripDecorations(text)
	text = reDashes.ReplaceAllString(text, " ")
	text = shared.OneLine(text)
	text = trimQuotes(text)
	if maxLen > 0 {
		text = shared.TruncateText(text, maxLen)
	}
	return text
}
