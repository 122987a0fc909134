package store

// Session represents the active conversation state kept in memory. It is a
// hot copy of what lives in the database, so a lost entry only costs a
// re-read, never data.
type Session struct {
	ID     string `json:"id"` // ChatSessionID
	UserID string `json:"user_id"`
	State  string `json:"state"` // "GATHERING" | "READY"

	// Snapshot of the draft as last persisted, keyed by field name.
	DraftSnapshot map[string]interface{} `json:"draft_snapshot"`

	// Suggestions offered on the last assistant turn.
	LastSuggestions []string `json:"last_suggestions"`

	// Metadata for last interaction
	LastMessage string `json:"last_message"`
	TurnCount   int    `json:"turn_count"`
}

const (
	// StateGathering means the draft is still missing required fields.
	StateGathering = "GATHERING"
	// StateReady means the draft could be committed as-is.
	StateReady = "READY"
)
