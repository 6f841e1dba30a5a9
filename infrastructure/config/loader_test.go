package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	content := `audio:
  format: ogg
  quality_flags: ["-b:a", "192k"]
transcription:
  engine: openai
  openai_model: whisper-1
paths:
  transcript_directory: /data/transcripts
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Audio.Format != "ogg" {
		t.Errorf("Audio.Format = %q, want ogg", cfg.Audio.Format)
	}
	if len(cfg.Audio.QualityFlags) != 2 || cfg.Audio.QualityFlags[0] != "-b:a" {
		t.Errorf("Audio.QualityFlags = %v", cfg.Audio.QualityFlags)
	}
	if cfg.Transcription.Engine != EngineOpenAI {
		t.Errorf("Transcription.Engine = %q, want openai", cfg.Transcription.Engine)
	}
	if cfg.Paths.TranscriptDirectory != "/data/transcripts" {
		t.Errorf("Paths.TranscriptDirectory = %q", cfg.Paths.TranscriptDirectory)
	}

	// Unset values still get defaults.
	if cfg.Transcription.Device != "cpu" {
		t.Errorf("Transcription.Device = %q, want default cpu", cfg.Transcription.Device)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("audio: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Audio.Format != "mp3" {
		t.Errorf("Audio.Format = %q, want mp3", cfg.Audio.Format)
	}
	if len(cfg.Audio.QualityFlags) != 2 || cfg.Audio.QualityFlags[0] != "-q:a" || cfg.Audio.QualityFlags[1] != "0" {
		t.Errorf("Audio.QualityFlags = %v, want [-q:a 0]", cfg.Audio.QualityFlags)
	}
	if cfg.Transcription.Engine != EngineWhisperCPP {
		t.Errorf("Transcription.Engine = %q, want whisper-cpp", cfg.Transcription.Engine)
	}
	if cfg.Transcription.ModelPath != "models" {
		t.Errorf("Transcription.ModelPath = %q, want models", cfg.Transcription.ModelPath)
	}
	if cfg.Paths.TranscriptDirectory != "transcripts" {
		t.Errorf("Paths.TranscriptDirectory = %q, want transcripts", cfg.Paths.TranscriptDirectory)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Audio.Format = "flac"
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if loaded.Audio.Format != "flac" {
		t.Errorf("round-tripped Audio.Format = %q, want flac", loaded.Audio.Format)
	}
}
