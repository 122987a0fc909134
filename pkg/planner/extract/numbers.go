package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var guestRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:for|with|about|around|approximately)\s+(\d+)\s+(?:people|guests|attendees|participants)`),
	regexp.MustCompile(`(?i)(\d+)\s+(?:person|people|guest|guests|attendee|attendees|participant|participants)`),
	regexp.MustCompile(`(?i)(?:guest|attendee|participant)\s+(?:count|number):\s*(\d+)`),
}

var durationRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:for|lasting|duration|length):?\s*(\d+)\s*(hours?|hrs?|minutes?|mins?)`),
	regexp.MustCompile(`(?i)(\d+)\s*(hours?|hrs?|minutes?|mins?)\s*(?:long|duration|event)`),
}

// Numbers extracts the guest count and the duration phrase. Either may be
// absent; a zero count means no guest figure was found.
func Numbers(text string) (guestCount int, duration string) {
	for _, re := range guestRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				guestCount = n
				break
			}
		}
	}

	for _, re := range durationRes {
		if m := re.FindStringSubmatch(text); m != nil {
			unit := strings.ToLower(m[2])
			if strings.HasPrefix(unit, "hour") || strings.HasPrefix(unit, "hr") {
				duration = fmt.Sprintf("%s hours", m[1])
			} else {
				duration = fmt.Sprintf("%s minutes", m[1])
			}
			break
		}
	}

	return guestCount, duration
}
