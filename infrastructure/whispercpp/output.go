package whispercpp

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"mediascribe/domain/transcription"
)

// outputFile is the subset of whisper.cpp's -oj output this adapter reads.
// Offsets are milliseconds from the start of the audio.
type outputFile struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []outputSegment `json:"transcription"`
}

type outputSegment struct {
	Offsets struct {
		From int64 `json:"from"`
		To   int64 `json:"to"`
	} `json:"offsets"`
	Text string `json:"text"`
}

// mapOutput converts raw whisper.cpp JSON into the domain result. Missing
// fields get defaults: empty text, "unknown" language, no segments.
func mapOutput(data []byte) (*transcription.Result, error) {
	var out outputFile
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("cannot parse whisper.cpp output: %v", err)
	}

	segments := make([]transcription.Segment, 0, len(out.Transcription))
	var text strings.Builder
	for _, seg := range out.Transcription {
		segments = append(segments, transcription.Segment{
			Start: time.Duration(seg.Offsets.From) * time.Millisecond,
			End:   time.Duration(seg.Offsets.To) * time.Millisecond,
			Text:  strings.TrimSpace(seg.Text),
		})
		text.WriteString(seg.Text)
	}

	language := out.Result.Language
	if language == "" {
		language = transcription.UnknownLanguage
	}

	return &transcription.Result{
		Text:     strings.TrimSpace(text.String()),
		Language: language,
		Segments: segments,
	}, nil
}
