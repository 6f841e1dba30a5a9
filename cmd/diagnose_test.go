package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mediascribe/infrastructure/config"
	"mediascribe/infrastructure/diagnostics"
)

func TestRunDiagnoseWithDependencies(t *testing.T) {
	binDir := t.TempDir()
	for _, name := range []string{"ffmpeg", "whisper-cli"} {
		if err := os.WriteFile(filepath.Join(binDir, name), []byte("x"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	modelDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(modelDir, "ggml-base.bin"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Audio.FFmpegPath = filepath.Join(binDir, "ffmpeg")
	cfg.Transcription.WhisperPath = filepath.Join(binDir, "whisper-cli")
	cfg.Transcription.ModelPath = modelDir
	cfg.Paths.TranscriptDirectory = filepath.Join(t.TempDir(), "transcripts")

	out := &bytes.Buffer{}
	if err := RunDiagnoseWithDependencies(diagnostics.NewChecker(), cfg, out); err != nil {
		t.Fatalf("RunDiagnoseWithDependencies() unexpected error: %v\noutput:\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "All checks passed.") {
		t.Errorf("missing pass summary in output:\n%s", out.String())
	}
	if strings.Contains(out.String(), "[FAIL]") {
		t.Errorf("unexpected failure line in output:\n%s", out.String())
	}
}

func TestRunDiagnoseWithFailures(t *testing.T) {
	cfg := config.Default()
	cfg.Audio.FFmpegPath = filepath.Join(t.TempDir(), "missing-ffmpeg")
	cfg.Transcription.ModelPath = filepath.Join(t.TempDir(), "missing-models")
	cfg.Paths.TranscriptDirectory = t.TempDir()

	out := &bytes.Buffer{}
	err := RunDiagnoseWithDependencies(diagnostics.NewChecker(), cfg, out)
	if err == nil {
		t.Fatalf("RunDiagnoseWithDependencies() expected error, output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "[FAIL]") {
		t.Errorf("missing failure line in output:\n%s", out.String())
	}
}
