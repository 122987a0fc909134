package planner

import (
	"event-planner-be/internal/constant"
	"event-planner-be/internal/entity"
)

var (
	titleSuggestions = []string{
		"What should we call your event?",
		"Tell me more about the occasion",
		"What type of event is this?",
	}
	dateSuggestions = []string{
		"When would you like to have this event?",
		"What date works best?",
		"Any specific time in mind?",
	}
	locationSuggestions = []string{
		"Where will this event take place?",
		"Do you have a venue in mind?",
		"Indoor or outdoor event?",
	}
	guestSuggestions = []string{
		"How many people will attend?",
		"What's the expected guest count?",
		"Small gathering or large event?",
	}
	confirmSuggestions = []string{
		"Shall we create this event?",
		"Any other details to add?",
		"Ready to finalize?",
	}
)

// NextSuggestions picks the follow-up prompts for the current draft. It asks
// for the highest-priority missing field; a draft with no fields at all gets
// the capability menu instead of a field question.
func NextSuggestions(draft entity.EventDraft) []string {
	if draft.IsEmpty() {
		return constant.ColdStartSuggestions
	}

	switch {
	case draft.Title == "":
		return titleSuggestions
	case draft.StartDate == nil:
		return dateSuggestions
	case draft.Location == "":
		return locationSuggestions
	case draft.GuestCount == 0:
		return guestSuggestions
	default:
		return confirmSuggestions
	}
}

// BuildPreview projects the draft into the read-only preview shown alongside
// assistant messages. No partial previews: nil until both the title and the
// start date are known.
func BuildPreview(draft entity.EventDraft) *entity.EventPreview {
	if draft.Title == "" || draft.StartDate == nil {
		return nil
	}

	return &entity.EventPreview{
		Title:        draft.Title,
		Date:         draft.StartDate,
		Location:     draft.Location,
		EventType:    draft.EventType,
		Description:  draft.Description,
		DurationText: draft.DurationText,
		GuestCount:   draft.GuestCount,
	}
}
