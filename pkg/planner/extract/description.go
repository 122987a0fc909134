package extract

import (
	"regexp"
	"strings"
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

var descriptiveWords = []string{
	"celebrate", "honor", "commemorate", "enjoy", "fun",
	"special", "important", "memorable",
}

// Description returns the first sentence of 20 to 200 characters that
// carries at least one descriptive word, or "" when none does.
func Description(text string) string {
	for _, sentence := range sentenceSplitRe.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= 20 || len(sentence) >= 200 {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, word := range descriptiveWords {
			if strings.Contains(lower, word) {
				return sentence
			}
		}
	}
	return ""
}
