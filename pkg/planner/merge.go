// Package planner holds the pure conversation-planning logic: folding
// extracted fields into the draft, deciding what to ask next, and building
// the generation prompt. Nothing here touches storage or the network.
package planner

import (
	"event-planner-be/internal/entity"
	"event-planner-be/pkg/planner/extract"
)

// Merge folds one turn's extraction results into the draft. The draft is
// taken and returned by value, so callers always keep the previous version
// intact. A non-empty extracted value overwrites; an absent one never clears
// a field that was set on an earlier turn.
func Merge(draft entity.EventDraft, fields extract.Fields) (entity.EventDraft, bool) {
	changed := false

	if fields.Title != "" && fields.Title != draft.Title {
		draft.Title = fields.Title
		changed = true
	}
	if fields.EventType != "" && fields.EventType != draft.EventType {
		draft.EventType = fields.EventType
		changed = true
	}
	if fields.StartDate != nil && (draft.StartDate == nil || !draft.StartDate.Equal(*fields.StartDate)) {
		v := *fields.StartDate
		draft.StartDate = &v
		changed = true
	}
	if fields.EndDate != nil && (draft.EndDate == nil || !draft.EndDate.Equal(*fields.EndDate)) {
		v := *fields.EndDate
		draft.EndDate = &v
		changed = true
	}
	if fields.Location != "" && fields.Location != draft.Location {
		draft.Location = fields.Location
		changed = true
	}
	if fields.GuestCount > 0 && fields.GuestCount != draft.GuestCount {
		draft.GuestCount = fields.GuestCount
		changed = true
	}
	if fields.Duration != "" && fields.Duration != draft.DurationText {
		draft.DurationText = fields.Duration
		changed = true
	}
	if fields.Description != "" && fields.Description != draft.Description {
		draft.Description = fields.Description
		changed = true
	}

	return draft, changed
}
