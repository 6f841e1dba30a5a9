package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func newCapturedLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(attrHandler{slog.NewJSONHandler(buf, nil)})
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var record map[string]any
	if err := json.Unmarshal(lines[len(lines)-1], &record); err != nil {
		t.Fatalf("cannot parse log record: %v", err)
	}
	return record
}

func TestContextAttrsAppearInRecords(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newCapturedLogger(buf)

	ctx := ContextAttrs(context.Background(), slog.String("request_id", "abc-123"))
	logger.InfoContext(ctx, "extracting audio", "source", "/videos/talk.mp4")

	record := lastRecord(t, buf)
	if record["request_id"] != "abc-123" {
		t.Errorf("request_id = %v, want abc-123", record["request_id"])
	}
	if record["source"] != "/videos/talk.mp4" {
		t.Errorf("source = %v, want the call-site attribute", record["source"])
	}
}

func TestContextAttrsAccumulate(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newCapturedLogger(buf)

	ctx := ContextAttrs(context.Background(), slog.String("request_id", "abc-123"))
	ctx = ContextAttrs(ctx, slog.String("stage", "transcribe"))
	logger.InfoContext(ctx, "working")

	record := lastRecord(t, buf)
	if record["request_id"] != "abc-123" || record["stage"] != "transcribe" {
		t.Errorf("record = %v, want both accumulated attributes", record)
	}
}

func TestContextAttrsDoNotLeakToParent(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newCapturedLogger(buf)

	parent := ContextAttrs(context.Background(), slog.String("request_id", "abc-123"))
	_ = ContextAttrs(parent, slog.String("stage", "transcribe"))

	logger.InfoContext(parent, "working")

	record := lastRecord(t, buf)
	if _, ok := record["stage"]; ok {
		t.Errorf("parent context picked up a child attribute: %v", record)
	}
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	if !New(true).Enabled(context.Background(), slog.LevelDebug) {
		t.Error("verbose logger should enable debug records")
	}
	if New(false).Enabled(context.Background(), slog.LevelDebug) {
		t.Error("default logger should not enable debug records")
	}
}
