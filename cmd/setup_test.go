package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"mediascribe/infrastructure/config"
)

// mockPrompter returns scripted answers keyed by the prompt message
type mockPrompter struct {
	inputs   map[string]string
	selects  map[string]string
	confirms map[string]bool
}

func (m *mockPrompter) Input(message, defaultValue string) (string, error) {
	if v, ok := m.inputs[message]; ok {
		return v, nil
	}
	return defaultValue, nil
}

func (m *mockPrompter) Select(message string, options []string, defaultValue string) (string, error) {
	if v, ok := m.selects[message]; ok {
		return v, nil
	}
	return defaultValue, nil
}

func (m *mockPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	if v, ok := m.confirms[message]; ok {
		return v, nil
	}
	return defaultValue, nil
}

func TestRunSetupWithPrompter(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config", "config.yaml")
	prompter := &mockPrompter{
		inputs: map[string]string{
			"Output audio format?":  "ogg",
			"ffmpeg quality flags?": "-b:a 192k",
			"Model file or directory?": "/models/ggml-base.bin",
		},
		selects: map[string]string{
			"Transcription engine?": config.EngineWhisperCPP,
			"Compute device?":       "cuda",
		},
	}

	oldOutput := DefaultOutput
	DefaultOutput = &bytes.Buffer{}
	defer func() { DefaultOutput = oldOutput }()

	if err := RunSetupWithPrompter(prompter, configPath); err != nil {
		t.Fatalf("RunSetupWithPrompter() unexpected error: %v", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Audio.Format != "ogg" {
		t.Errorf("Audio.Format = %q, want ogg", cfg.Audio.Format)
	}
	if len(cfg.Audio.QualityFlags) != 2 || cfg.Audio.QualityFlags[0] != "-b:a" {
		t.Errorf("Audio.QualityFlags = %v, want [-b:a 192k]", cfg.Audio.QualityFlags)
	}
	if cfg.Transcription.ModelPath != "/models/ggml-base.bin" {
		t.Errorf("Transcription.ModelPath = %q", cfg.Transcription.ModelPath)
	}
	if cfg.Transcription.Device != "cuda" {
		t.Errorf("Transcription.Device = %q, want cuda", cfg.Transcription.Device)
	}
}

func TestRunSetupDeclinedOverwrite(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("audio:\n  format: mp3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	prompter := &mockPrompter{
		confirms: map[string]bool{
			"config.yaml already exists. Overwrite?": false,
		},
		inputs: map[string]string{
			"Output audio format?": "ogg",
		},
	}

	oldOutput := DefaultOutput
	out := &bytes.Buffer{}
	DefaultOutput = out
	defer func() { DefaultOutput = oldOutput }()

	if err := RunSetupWithPrompter(prompter, configPath); err != nil {
		t.Fatalf("RunSetupWithPrompter() unexpected error: %v", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Audio.Format != "mp3" {
		t.Errorf("existing config was modified, Audio.Format = %q", cfg.Audio.Format)
	}
}
