package extract

import (
	"strings"
	"testing"
	"time"
)

var refTime = time.Date(2024, 11, 1, 10, 0, 0, 0, time.UTC)

func TestAllBirthdayScenario(t *testing.T) {
	text := "Let's plan a birthday party for Sarah on December 15th, 2024 at Central Park for 25 people for 3 hours"

	fields := All(text, refTime)

	if fields.EventType != "birthday" {
		t.Errorf("EventType = %q, want %q", fields.EventType, "birthday")
	}
	if !strings.Contains(fields.Location, "Central Park") {
		t.Errorf("Location = %q, want it to contain %q", fields.Location, "Central Park")
	}
	if fields.GuestCount != 25 {
		t.Errorf("GuestCount = %d, want 25", fields.GuestCount)
	}
	if !strings.Contains(fields.Duration, "3 hours") {
		t.Errorf("Duration = %q, want it to contain %q", fields.Duration, "3 hours")
	}
	if fields.StartDate == nil {
		t.Fatal("StartDate = nil, want December 15 2024")
	}
	if fields.StartDate.Year() != 2024 || fields.StartDate.Month() != time.December || fields.StartDate.Day() != 15 {
		t.Errorf("StartDate = %v, want 2024-12-15", fields.StartDate)
	}
}

func TestAllIsIdempotent(t *testing.T) {
	text := "A dinner at Sunset Restaurant for 12 guests to celebrate our anniversary together"

	first := All(text, refTime)
	second := All(text, refTime)

	if first.Title != second.Title || first.EventType != second.EventType ||
		first.Location != second.Location || first.GuestCount != second.GuestCount ||
		first.Duration != second.Duration || first.Description != second.Description {
		t.Errorf("repeated extraction diverged: %+v vs %+v", first, second)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "quoted after called",
			text: `We're having a party called "Summer Bash" next month`,
			want: "Summer Bash",
		},
		{
			name: "quoted after for",
			text: `Planning something for 'Spring Fundraiser' this June`,
			want: "Spring Fundraiser",
		},
		{
			name: "capitalized phrase before event noun",
			text: "Don't miss the Annual Charity Gala event this winter",
			want: "Annual Charity Gala",
		},
		{
			name: "no title",
			text: "let's figure out the details later",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.text); got != tt.want {
				t.Errorf("Title(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "prepositional phrase",
			text: "We'll meet at Riverside Gardens for the afternoon",
			want: "Riverside Gardens",
		},
		{
			name: "venue label",
			text: "venue: The Grand Ballroom",
			want: "The Grand Ballroom",
		},
		{
			name: "street address",
			text: "The office is 42 Baker Street downtown",
			want: "42 Baker Street",
		},
		{
			name: "named venue noun",
			text: "dinner reservation made for Sunset Hotel tonight",
			want: "Sunset Hotel",
		},
		{
			name: "too short is rejected",
			text: "see you at Rio!",
			want: "",
		},
		{
			name: "no location",
			text: "we still need somewhere to hold it",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Location(tt.text); got != tt.want {
				t.Errorf("Location(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantGuests   int
		wantDuration string
	}{
		{
			name:         "guests and duration",
			text:         "for 25 people for 3 hours",
			wantGuests:   25,
			wantDuration: "3 hours",
		},
		{
			name:       "bare guest count",
			text:       "expecting 40 guests",
			wantGuests: 40,
		},
		{
			name:         "minutes normalized",
			text:         "the ceremony is 45 mins long",
			wantDuration: "45 minutes",
		},
		{
			name: "nothing numeric",
			text: "we have not decided yet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guests, duration := Numbers(tt.text)
			if guests != tt.wantGuests {
				t.Errorf("guests = %d, want %d", guests, tt.wantGuests)
			}
			if duration != tt.wantDuration {
				t.Errorf("duration = %q, want %q", duration, tt.wantDuration)
			}
		})
	}
}

func TestEventType(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"it's her bday next week", "birthday"},
		{"our wedding is in June", "wedding"},
		{"team meeting on Monday", "meeting"},
		{"throwing a huge bash", "party"},
		{"a small get-together with friends", "social"},
		{"nothing eventful here", ""},
		// birthday outranks party when both keywords appear
		{"a birthday party for Sarah", "birthday"},
	}

	for _, tt := range tests {
		if got := EventType(tt.text); got != tt.want {
			t.Errorf("EventType(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDescription(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "descriptive sentence picked",
			text: "Hello. We want to celebrate Sarah's big promotion with everyone! See you there.",
			want: "We want to celebrate Sarah's big promotion with everyone",
		},
		{
			name: "too short is skipped",
			text: "So much fun! ok",
			want: "",
		},
		{
			name: "no descriptive word",
			text: "The meeting room has been booked for Tuesday afternoon already.",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Description(tt.text); got != tt.want {
				t.Errorf("Description(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDates(t *testing.T) {
	t.Run("explicit date", func(t *testing.T) {
		start, end := Dates("the show is on December 15th, 2024", refTime)
		if start == nil {
			t.Fatal("start = nil")
		}
		if start.Year() != 2024 || start.Month() != time.December || start.Day() != 15 {
			t.Errorf("start = %v, want 2024-12-15", start)
		}
		if end != nil {
			t.Errorf("end = %v, want nil", end)
		}
	})

	t.Run("slash date", func(t *testing.T) {
		start, _ := Dates("deadline 12/15/2024 sharp", refTime)
		if start == nil {
			t.Fatal("start = nil")
		}
		if start.Year() != 2024 || start.Month() != time.December || start.Day() != 15 {
			t.Errorf("start = %v, want 2024-12-15", start)
		}
	})

	t.Run("two distinct dates fill start and end", func(t *testing.T) {
		start, end := Dates("from January 10, 2025 until January 12, 2025", refTime)
		if start == nil || end == nil {
			t.Fatalf("start = %v, end = %v, want both set", start, end)
		}
		if start.Day() != 10 || end.Day() != 12 {
			t.Errorf("start day = %d, end day = %d, want 10 and 12", start.Day(), end.Day())
		}
	})

	t.Run("first date wins for start", func(t *testing.T) {
		start, _ := Dates("March 3, 2025 or maybe March 20, 2025", refTime)
		if start == nil {
			t.Fatal("start = nil")
		}
		if start.Day() != 3 {
			t.Errorf("start day = %d, want 3", start.Day())
		}
	})

	t.Run("relative expression", func(t *testing.T) {
		start, _ := Dates("let's do it tomorrow", refTime)
		if start == nil {
			t.Fatal("start = nil")
		}
		if start.Day() != refTime.Day()+1 {
			t.Errorf("start = %v, want the day after %v", start, refTime)
		}
	})

	t.Run("no date", func(t *testing.T) {
		start, end := Dates("somewhere nice, sometime", refTime)
		if start != nil || end != nil {
			t.Errorf("start = %v, end = %v, want both nil", start, end)
		}
	})
}
