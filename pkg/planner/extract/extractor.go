// Package extract mines event fields out of free-form chat text. Every
// extractor is a pure function: no state, no I/O, and absence of a match is
// the normal case, never an error.
package extract

import "time"

// Fields holds the zero-or-one candidate value each extractor produced for a
// single piece of text. Zero values mean "nothing found this turn".
type Fields struct {
	Title       string
	EventType   string
	StartDate   *time.Time
	EndDate     *time.Time
	Location    string
	GuestCount  int
	Duration    string
	Description string
}

// IsEmpty reports whether no extractor found anything.
func (f Fields) IsEmpty() bool {
	return f.Title == "" && f.EventType == "" && f.StartDate == nil &&
		f.EndDate == nil && f.Location == "" && f.GuestCount == 0 &&
		f.Duration == "" && f.Description == ""
}

// All runs every extractor over the text. The extractors are independent of
// one another; ref anchors relative date expressions like "next Friday".
func All(text string, ref time.Time) Fields {
	start, end := Dates(text, ref)
	guests, duration := Numbers(text)

	return Fields{
		Title:       Title(text),
		EventType:   EventType(text),
		StartDate:   start,
		EndDate:     end,
		Location:    Location(text),
		GuestCount:  guests,
		Duration:    duration,
		Description: Description(text),
	}
}
