package model

// ParsedInput is the tagged result of the natural-language parser.
// Data is never trusted as well-formed: every field may be absent or
// malformed, and the service layer applies the same defaulting rules as a
// manual create request.
type ParsedInput struct {
	Type       string     `json:"type"`
	Data       ParsedData `json:"data"`
	Confidence float64    `json:"confidence,omitempty"`
}

// ParsedInput.Type values.
const (
	ParsedTypeTodo  = "todo"
	ParsedTypeEvent = "event"
)

// ParsedData holds the loosely-typed fields the parser may emit.
// Timestamps arrive as ISO 8601 strings because the parser has no notion of
// our time types.
type ParsedData struct {
	Title string `json:"title,omitempty"`

	// Event fields
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	IsAllDay  bool   `json:"isAllDay,omitempty"`
	Location  string `json:"location,omitempty"`
	EventType string `json:"eventType,omitempty"`

	// Todo fields
	Priority   string `json:"priority,omitempty"`
	AssignedTo string `json:"assignedTo,omitempty"`
}
