package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"event-planner-be/internal/constant"
	"event-planner-be/internal/entity"
)

// BuildSystemPrompt renders the generation prompt with a JSON snapshot of
// the draft and the caller's recent events as context.
func BuildSystemPrompt(draft entity.EventDraft, recentEvents []entity.Event) string {
	snapshot := map[string]interface{}{}
	if draft.Title != "" {
		snapshot["title"] = draft.Title
	}
	if draft.EventType != "" {
		snapshot["event_type"] = draft.EventType
	}
	if draft.StartDate != nil {
		snapshot["start_date"] = draft.StartDate.Format("2006-01-02 15:04")
	}
	if draft.EndDate != nil {
		snapshot["end_date"] = draft.EndDate.Format("2006-01-02 15:04")
	}
	if draft.Location != "" {
		snapshot["location"] = draft.Location
	}
	if draft.GuestCount > 0 {
		snapshot["guest_count"] = draft.GuestCount
	}
	if draft.DurationText != "" {
		snapshot["duration"] = draft.DurationText
	}
	if draft.Description != "" {
		snapshot["description"] = draft.Description
	}

	draftJSON := "{}"
	if len(snapshot) > 0 {
		if b, err := json.MarshalIndent(snapshot, "", "  "); err == nil {
			draftJSON = string(b)
		}
	}

	recentText := "None yet."
	if len(recentEvents) > 0 {
		var lines []string
		for _, ev := range recentEvents {
			line := fmt.Sprintf("- %s (%s) on %s", ev.Title, ev.EventType, ev.StartDate.Format("2006-01-02"))
			if ev.Location != "" {
				line += " at " + ev.Location
			}
			lines = append(lines, line)
		}
		recentText = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(constant.EventCreationSystemPrompt, draftJSON, recentText)
}
