package entity

import "time"

// EventDraft is the partially-filled event record accumulated across a
// conversation. Every field is optional until commit time; the zero value
// of a field means "not gathered yet".
type EventDraft struct {
	Title        string
	EventType    string
	StartDate    *time.Time
	EndDate      *time.Time
	Location     string
	GuestCount   int
	DurationText string
	Description  string
}

// IsEmpty reports whether no field has ever been set (the cold-start state).
func (d EventDraft) IsEmpty() bool {
	return d.Title == "" &&
		d.EventType == "" &&
		d.StartDate == nil &&
		d.EndDate == nil &&
		d.Location == "" &&
		d.GuestCount == 0 &&
		d.DurationText == "" &&
		d.Description == ""
}

// IsComplete reports whether the draft satisfies the commit precondition.
func (d EventDraft) IsComplete() bool {
	return d.Title != "" && d.StartDate != nil
}

// EventPreview is a read-only projection of the draft shown alongside
// assistant messages. Built only when both title and start date are known.
type EventPreview struct {
	Title        string     `json:"title"`
	Date         *time.Time `json:"date"`
	Location     string     `json:"location"`
	EventType    string     `json:"type"`
	Description  string     `json:"description"`
	DurationText string     `json:"duration,omitempty"`
	GuestCount   int        `json:"guest_count,omitempty"`
}
