package extract

import (
	"regexp"
	"strings"
)

const (
	locationMinLen = 4
	locationMaxLen = 100
)

var locationRes = []*regexp.Regexp{
	// Prepositional phrase naming a capitalized place: "at Central Park".
	regexp.MustCompile(`\b(?:at|in|on|near|by|around)\s+([A-Z][a-zA-Z ,]+?)(?:\s+(?:on|at|for|with)\s|[,.!?]|$)`),
	// Explicit labels: "venue: The Grand Ballroom".
	regexp.MustCompile(`(?i)(?:venue|location|place|address):\s*([^,.!?]+)`),
	// Street addresses: "123 Main Street".
	regexp.MustCompile(`\b(\d+\s+[A-Z][a-zA-Z ]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Drive|Dr|Lane|Ln|Way|Place|Pl|Court|Ct))\b`),
	// Named venues: "Sunset Hotel", "Riverside Park".
	regexp.MustCompile(`\b([A-Z][a-zA-Z ]+(?:Hotel|Restaurant|Cafe|Bar|Club|Center|Centre|Hall|Room|Building|Park|Beach|Lake|River|Mountain|Hill))\b`),
}

var leadingPrepositionRe = regexp.MustCompile(`(?i)^(?:at|in|on|near|by|around)\s+`)

// Location returns the first plausible venue phrase in the text, or "" when
// nothing inside the accepted length bounds is found.
func Location(text string) string {
	for _, re := range locationRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		loc := strings.TrimSpace(m[1])
		loc = leadingPrepositionRe.ReplaceAllString(loc, "")
		if len(loc) >= locationMinLen && len(loc) <= locationMaxLen {
			return loc
		}
	}
	return ""
}
