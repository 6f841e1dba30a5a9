package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mediascribe/domain/transcription"
)

// WriteText writes a plain-text transcript with a short header naming the
// source and the detected language.
func WriteText(path, sourceName string, result *transcription.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Transcript for %s ---\n", sourceName)
	fmt.Fprintf(&b, "Detected Language: %s\n", result.Language)
	b.WriteString(strings.Repeat("-", 40) + "\n\n")
	b.WriteString(strings.TrimSpace(result.Text))
	b.WriteString("\n")

	return write(path, b.String())
}

// WriteSRT writes the result's segments in SubRip subtitle format.
func WriteSRT(path string, result *transcription.Result) error {
	var b strings.Builder
	for i, seg := range result.Segments {
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", srtTimestamp(seg.Start), srtTimestamp(seg.End))
		b.WriteString(strings.TrimSpace(seg.Text))
		b.WriteString("\n\n")
	}

	return write(path, b.String())
}

func write(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create transcript directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}

// srtTimestamp renders a duration as HH:MM:SS,mmm.
func srtTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	ms := d / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
