package extract

import "strings"

// eventTypeTable maps categories to their trigger keywords. Order matters:
// the first category with a keyword present in the text wins.
var eventTypeTable = []struct {
	category string
	keywords []string
}{
	{"birthday", []string{"birthday", "bday", "birth day"}},
	{"wedding", []string{"wedding", "marriage", "matrimony"}},
	{"meeting", []string{"meeting", "conference", "discussion"}},
	{"party", []string{"party", "celebration", "bash"}},
	{"dinner", []string{"dinner", "supper", "evening meal"}},
	{"lunch", []string{"lunch", "luncheon", "midday meal"}},
	{"breakfast", []string{"breakfast", "morning meal"}},
	{"workshop", []string{"workshop", "seminar", "training"}},
	{"concert", []string{"concert", "performance", "show"}},
	{"sports", []string{"game", "match", "tournament", "competition"}},
	{"social", []string{"gathering", "get-together", "meetup", "hangout"}},
}

// EventType returns the recognized category for the text, or "" when no
// keyword matches.
func EventType(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range eventTypeTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return ""
}
