package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Word is a single registry entry
type Word struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

var lower = cases.Lower(language.Und)

// NormalizeText returns the stored form of text: surrounding whitespace
// removed and lowercased. An empty result means the input is not a word.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return lower.String(text)
}
