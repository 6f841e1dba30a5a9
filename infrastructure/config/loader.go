package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Transcription engine identifiers
const (
	EngineWhisperCPP = "whisper-cpp"
	EngineOpenAI     = "openai"
)

// Config represents the complete application configuration
type Config struct {
	Audio         AudioConfig         `yaml:"audio"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Paths         PathsConfig         `yaml:"paths"`
}

// AudioConfig contains audio extraction settings
type AudioConfig struct {
	// Format is the output audio format suffix, e.g. "mp3"
	Format string `yaml:"format"`
	// QualityFlags are passed to ffmpeg verbatim, in order
	QualityFlags []string `yaml:"quality_flags"`
	// FFmpegPath overrides PATH resolution of the ffmpeg binary
	FFmpegPath string `yaml:"ffmpeg_path"`
}

// TranscriptionConfig contains speech-to-text settings
type TranscriptionConfig struct {
	// Engine selects the transcription adapter: whisper-cpp or openai
	Engine string `yaml:"engine"`
	// WhisperPath overrides PATH resolution of the whisper.cpp binary
	WhisperPath string `yaml:"whisper_path"`
	// ModelPath is a ggml/gguf model file, or a directory holding one
	ModelPath string `yaml:"model_path"`
	// Device is the compute device the model runs on: cpu or cuda
	Device string `yaml:"device"`
	// Language forces a transcription language; empty means auto-detect
	Language string `yaml:"language"`
	// OpenAIModel is the model identifier used by the openai engine
	OpenAIModel string `yaml:"openai_model"`
}

// PathsConfig contains output directory settings
type PathsConfig struct {
	TranscriptDirectory string `yaml:"transcript_directory"`
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Audio.Format == "" {
		c.Audio.Format = "mp3"
	}
	if len(c.Audio.QualityFlags) == 0 {
		// -q:a 0 selects the highest VBR quality ffmpeg offers
		c.Audio.QualityFlags = []string{"-q:a", "0"}
	}
	if c.Transcription.Engine == "" {
		c.Transcription.Engine = EngineWhisperCPP
	}
	if c.Transcription.ModelPath == "" {
		c.Transcription.ModelPath = "models"
	}
	if c.Transcription.Device == "" {
		c.Transcription.Device = "cpu"
	}
	if c.Paths.TranscriptDirectory == "" {
		c.Paths.TranscriptDirectory = "transcripts"
	}
}

// Load reads and parses the configuration from the specified YAML file,
// applying defaults for any unset values
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Save writes the configuration to the specified YAML file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
