package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mediascribe/domain/transcription"
)

func TestWriteText(t *testing.T) {
	result := &transcription.Result{
		Text:     "  Hello world.  ",
		Language: "en",
	}
	path := filepath.Join(t.TempDir(), "out", "lecture.txt")

	if err := WriteText(path, "lecture.mp3", result); err != nil {
		t.Fatalf("WriteText() unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)

	if !strings.Contains(got, "--- Transcript for lecture.mp3 ---") {
		t.Errorf("missing header in output:\n%s", got)
	}
	if !strings.Contains(got, "Detected Language: en") {
		t.Errorf("missing language line in output:\n%s", got)
	}
	if !strings.Contains(got, "Hello world.") {
		t.Errorf("missing transcript body in output:\n%s", got)
	}
	if strings.Contains(got, "  Hello world.  ") {
		t.Errorf("transcript body not trimmed:\n%s", got)
	}
}

func TestWriteSRT(t *testing.T) {
	result := &transcription.Result{
		Segments: []transcription.Segment{
			{Start: 500 * time.Millisecond, End: 2250 * time.Millisecond, Text: " Hello world. "},
			{Start: 2250 * time.Millisecond, End: time.Hour + 3*time.Second, Text: "Goodbye."},
		},
	}
	path := filepath.Join(t.TempDir(), "lecture.srt")

	if err := WriteSRT(path, result); err != nil {
		t.Fatalf("WriteSRT() unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := "1\n" +
		"00:00:00,500 --> 00:00:02,250\n" +
		"Hello world.\n\n" +
		"2\n" +
		"00:00:02,250 --> 01:00:03,000\n" +
		"Goodbye.\n\n"
	if string(data) != want {
		t.Errorf("WriteSRT() output mismatch.\ngot:\n%s\nwant:\n%s", data, want)
	}
}

func TestSRTTimestamp(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "zero", d: 0, want: "00:00:00,000"},
		{name: "negative clamps to zero", d: -time.Second, want: "00:00:00,000"},
		{name: "sub-second", d: 42 * time.Millisecond, want: "00:00:00,042"},
		{name: "hours", d: 2*time.Hour + 15*time.Minute + 9*time.Second + 7*time.Millisecond, want: "02:15:09,007"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := srtTimestamp(tt.d); got != tt.want {
				t.Errorf("srtTimestamp(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
