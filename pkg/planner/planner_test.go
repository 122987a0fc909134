package planner

import (
	"strings"
	"testing"
	"time"

	"event-planner-be/internal/constant"
	"event-planner-be/internal/entity"
	"event-planner-be/pkg/planner/extract"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestMergeSetsNewFields(t *testing.T) {
	draft := entity.EventDraft{}
	fields := extract.Fields{
		Title:      "John's BBQ",
		EventType:  "party",
		StartDate:  datePtr(2024, time.December, 15),
		Location:   "Central Park",
		GuestCount: 25,
		Duration:   "3 hours",
	}

	merged, changed := Merge(draft, fields)

	if !changed {
		t.Fatal("changed = false, want true")
	}
	if merged.Title != "John's BBQ" || merged.EventType != "party" {
		t.Errorf("unexpected merge result: %+v", merged)
	}
	if merged.StartDate == nil || merged.StartDate.Day() != 15 {
		t.Errorf("StartDate = %v, want December 15", merged.StartDate)
	}
	if merged.GuestCount != 25 || merged.DurationText != "3 hours" {
		t.Errorf("numbers not merged: %+v", merged)
	}
}

func TestMergeNeverUnsetsFields(t *testing.T) {
	draft := entity.EventDraft{
		Title:      "John's BBQ",
		EventType:  "party",
		StartDate:  datePtr(2024, time.December, 15),
		Location:   "Central Park",
		GuestCount: 25,
	}

	merged, changed := Merge(draft, extract.Fields{})

	if changed {
		t.Error("changed = true for empty extraction, want false")
	}
	if merged != draft {
		t.Errorf("empty extraction mutated the draft: %+v vs %+v", merged, draft)
	}
}

func TestMergeOverwritesWithNonEmpty(t *testing.T) {
	draft := entity.EventDraft{Title: "Old Title", Location: "Old Place"}

	merged, changed := Merge(draft, extract.Fields{Title: "New Title"})

	if !changed {
		t.Fatal("changed = false, want true")
	}
	if merged.Title != "New Title" {
		t.Errorf("Title = %q, want %q", merged.Title, "New Title")
	}
	if merged.Location != "Old Place" {
		t.Errorf("Location = %q, untouched field changed", merged.Location)
	}
	// Copy-on-write: the caller's draft is untouched.
	if draft.Title != "Old Title" {
		t.Errorf("input draft mutated: %+v", draft)
	}
}

func TestMergeUnchangedValueReportsNoChange(t *testing.T) {
	draft := entity.EventDraft{Title: "Same"}

	_, changed := Merge(draft, extract.Fields{Title: "Same"})

	if changed {
		t.Error("changed = true for identical value, want false")
	}
}

func TestNextSuggestionsColdStart(t *testing.T) {
	got := NextSuggestions(entity.EventDraft{})

	if len(got) != len(constant.ColdStartSuggestions) {
		t.Fatalf("got %d suggestions, want %d", len(got), len(constant.ColdStartSuggestions))
	}
	for i, s := range constant.ColdStartSuggestions {
		if got[i] != s {
			t.Errorf("suggestion[%d] = %q, want %q", i, got[i], s)
		}
	}
}

func TestNextSuggestionsPriorityScan(t *testing.T) {
	tests := []struct {
		name     string
		draft    entity.EventDraft
		wantWord string
	}{
		{
			name:     "title only asks for date",
			draft:    entity.EventDraft{Title: "John's BBQ"},
			wantWord: "date",
		},
		{
			name:     "missing title asks for title",
			draft:    entity.EventDraft{EventType: "party"},
			wantWord: "call",
		},
		{
			name: "title and date ask for location",
			draft: entity.EventDraft{
				Title:     "John's BBQ",
				StartDate: datePtr(2024, time.December, 15),
			},
			wantWord: "take place",
		},
		{
			name: "everything but guests asks for count",
			draft: entity.EventDraft{
				Title:     "John's BBQ",
				StartDate: datePtr(2024, time.December, 15),
				Location:  "Central Park",
			},
			wantWord: "attend",
		},
		{
			name: "complete draft asks for confirmation",
			draft: entity.EventDraft{
				Title:      "John's BBQ",
				StartDate:  datePtr(2024, time.December, 15),
				Location:   "Central Park",
				GuestCount: 25,
			},
			wantWord: "create this event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextSuggestions(tt.draft)
			if len(got) < 2 || len(got) > 4 {
				t.Fatalf("got %d suggestions, want 2-4", len(got))
			}
			joined := strings.ToLower(strings.Join(got, " "))
			if !strings.Contains(joined, tt.wantWord) {
				t.Errorf("suggestions %v do not mention %q", got, tt.wantWord)
			}
		})
	}
}

func TestBuildPreviewGating(t *testing.T) {
	if p := BuildPreview(entity.EventDraft{Title: "John's BBQ"}); p != nil {
		t.Errorf("preview without start date = %+v, want nil", p)
	}
	if p := BuildPreview(entity.EventDraft{StartDate: datePtr(2024, time.December, 15)}); p != nil {
		t.Errorf("preview without title = %+v, want nil", p)
	}

	draft := entity.EventDraft{
		Title:      "John's BBQ",
		StartDate:  datePtr(2024, time.December, 15),
		Location:   "Central Park",
		EventType:  "party",
		GuestCount: 25,
	}
	p := BuildPreview(draft)
	if p == nil {
		t.Fatal("preview = nil for complete draft")
	}
	if p.Title != draft.Title || p.Date == nil || !p.Date.Equal(*draft.StartDate) {
		t.Errorf("preview mismatch: %+v", p)
	}
	if p.GuestCount != 25 || p.EventType != "party" {
		t.Errorf("preview fields not projected: %+v", p)
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	draft := entity.EventDraft{
		Title:     "John's BBQ",
		StartDate: datePtr(2024, time.December, 15),
	}
	recent := []entity.Event{
		{
			Title:     "Team Offsite",
			EventType: "meeting",
			StartDate: time.Date(2024, time.October, 3, 9, 0, 0, 0, time.UTC),
			Location:  "Lakeside Hall",
		},
	}

	prompt := BuildSystemPrompt(draft, recent)

	if !strings.Contains(prompt, "John's BBQ") {
		t.Error("prompt missing draft title")
	}
	if !strings.Contains(prompt, "Team Offsite") || !strings.Contains(prompt, "Lakeside Hall") {
		t.Error("prompt missing recent-events context")
	}

	empty := BuildSystemPrompt(entity.EventDraft{}, nil)
	if !strings.Contains(empty, "{}") || !strings.Contains(empty, "None yet.") {
		t.Error("empty prompt should carry empty snapshot and placeholder context")
	}
}
