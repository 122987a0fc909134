package extract

import (
	"regexp"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var ordinalRe = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)\b`)

// Explicit calendar-date shapes handed to dateparse.
var explicitDateRes = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(?:,?\s+\d{4})?\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:january|february|march|april|may|june|july|august|september|october|november|december)(?:,?\s+\d{4})?\b`),
}

var nlParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// Dates scans the text for date expressions. The first parseable date
// becomes the start; a second, distinct one becomes the end. A start found
// earlier in the scan is never displaced by a later match.
func Dates(text string, ref time.Time) (start, end *time.Time) {
	normalized := ordinalRe.ReplaceAllString(text, "$1")

	take := func(t time.Time) {
		if start == nil {
			v := t
			start = &v
			return
		}
		if end == nil && !t.Equal(*start) {
			v := t
			end = &v
		}
	}

	for _, re := range explicitDateRes {
		for _, frag := range re.FindAllString(normalized, -1) {
			if t, err := dateparse.ParseAny(frag); err == nil {
				take(t)
			}
			if end != nil {
				return start, end
			}
		}
	}
	if start != nil {
		return start, end
	}

	// Relative expressions like "next Friday" or "tomorrow at 3pm".
	rest := normalized
	for i := 0; i < 2; i++ {
		r, err := nlParser.Parse(rest, ref)
		if err != nil || r == nil {
			break
		}
		take(r.Time)
		rest = rest[r.Index+len(r.Text):]
	}

	return start, end
}
