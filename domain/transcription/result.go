package transcription

import "time"

// UnknownLanguage is the language reported when the model does not identify one.
const UnknownLanguage = "unknown"

// Segment is one timed span of recognized speech.
type Segment struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// Result is the completed transcription returned to the caller. Adapters map
// their tool-specific output into this shape so the rest of the code never
// sees a tool's raw response.
type Result struct {
	Text     string
	Language string
	Segments []Segment
}
