package extract

import (
	"regexp"
	"strings"
)

var (
	// "for 'Sarah's 30th'", "called \"Summer Gala\"" and similar keyword-introduced
	// quoted names.
	quotedTitleRe = regexp.MustCompile(`(?i)(?:for|called|named|titled|about|regarding)\s+["']([^"']+)["']`)

	// A capitalized phrase directly in front of a known event noun, e.g.
	// "Annual Charity Gala event" or "Spring Cleanup party".
	capitalizedTitleRe = regexp.MustCompile(`\b([A-Z][a-zA-Z ]{2,30})\s+(?:event|party|meeting|celebration|gathering)\b`)
)

// Bare determiners in front of an event noun are not names.
var titleStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "my": true, "our": true,
	"this": true, "that": true, "your": true,
}

// Title returns the first phrase in the text that names the event, or ""
// when nothing qualifies.
func Title(text string) string {
	if m := quotedTitleRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := capitalizedTitleRe.FindStringSubmatch(text); m != nil {
		candidate := strings.TrimSpace(m[1])
		if !titleStopwords[strings.ToLower(candidate)] {
			return candidate
		}
	}
	return ""
}
