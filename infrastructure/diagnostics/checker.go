package diagnostics

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"mediascribe/infrastructure/config"
	"mediascribe/infrastructure/whispercpp"
)

// Status of one diagnostic item
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// Item is the outcome of one environment check.
type Item struct {
	Name    string
	Status  Status
	Message string
	Hint    string
}

// Report is the combined outcome of all checks.
type Report struct {
	GeneratedAt time.Time
	HasFailures bool
	Items       []Item
}

// Checker validates external tools and required filesystem paths.
type Checker struct {
	lookPath   func(string) (string, error)
	stat       func(string) (os.FileInfo, error)
	readDir    func(string) ([]os.DirEntry, error)
	mkdirAll   func(string, os.FileMode) error
	createTemp func(string, string) (*os.File, error)
	remove     func(string) error
}

// NewChecker builds a checker using real OS dependencies.
func NewChecker() *Checker {
	return &Checker{
		lookPath:   exec.LookPath,
		stat:       os.Stat,
		readDir:    os.ReadDir,
		mkdirAll:   os.MkdirAll,
		createTemp: os.CreateTemp,
		remove:     os.Remove,
	}
}

// Run executes all startup checks and returns a combined report.
func (c *Checker) Run(cfg *config.Config) Report {
	items := []Item{
		c.checkTool("ffmpeg", cfg.Audio.FFmpegPath, "Install ffmpeg or set audio.ffmpeg_path in the config."),
	}

	if cfg.Transcription.Engine == config.EngineOpenAI {
		items = append(items, c.checkAPIKey())
	} else {
		items = append(items,
			c.checkTool(whispercpp.DefaultBinary, cfg.Transcription.WhisperPath, "Install whisper.cpp or set transcription.whisper_path in the config."),
			c.checkModelPath(cfg.Transcription.ModelPath),
		)
	}

	items = append(items, c.checkOutputDir(cfg.Paths.TranscriptDirectory))

	hasFailures := false
	for _, item := range items {
		if item.Status == StatusFail {
			hasFailures = true
			break
		}
	}

	return Report{
		GeneratedAt: time.Now().UTC(),
		HasFailures: hasFailures,
		Items:       items,
	}
}

// checkTool verifies a required CLI executable, either at its configured
// path or on PATH.
func (c *Checker) checkTool(name, configuredPath, hint string) Item {
	if configuredPath != "" {
		if _, err := c.stat(configuredPath); err != nil {
			return Item{
				Name:    name,
				Status:  StatusFail,
				Message: fmt.Sprintf("Configured path does not exist: %s", configuredPath),
				Hint:    hint,
			}
		}
		return Item{
			Name:    name,
			Status:  StatusPass,
			Message: fmt.Sprintf("Found at %s", configuredPath),
		}
	}

	path, err := c.lookPath(name)
	if err != nil {
		return Item{
			Name:    name,
			Status:  StatusFail,
			Message: fmt.Sprintf("Tool not found in PATH: %s", name),
			Hint:    hint,
		}
	}

	return Item{
		Name:    name,
		Status:  StatusPass,
		Message: fmt.Sprintf("Found at %s", path),
	}
}

// checkModelPath validates the configured model file or model directory.
func (c *Checker) checkModelPath(modelPath string) Item {
	item := Item{Name: "Model path"}

	info, err := c.stat(modelPath)
	if err != nil {
		item.Status = StatusFail
		item.Message = fmt.Sprintf("Cannot access model path: %s", modelPath)
		item.Hint = "Download a ggml model and set transcription.model_path to the file or its directory."
		return item
	}

	if !info.IsDir() {
		item.Status = StatusPass
		item.Message = fmt.Sprintf("Model file: %s", modelPath)
		return item
	}

	entries, err := c.readDir(modelPath)
	if err != nil {
		item.Status = StatusFail
		item.Message = fmt.Sprintf("Cannot read model directory: %s", modelPath)
		return item
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".bin", ".gguf":
			item.Status = StatusPass
			item.Message = fmt.Sprintf("Model directory %s contains %s", modelPath, entry.Name())
			return item
		}
	}

	item.Status = StatusFail
	item.Message = fmt.Sprintf("No .bin or .gguf model files found in: %s", modelPath)
	item.Hint = "Download a ggml model into the model directory."
	return item
}

// checkAPIKey verifies the OpenAI engine has a key to work with.
func (c *Checker) checkAPIKey() Item {
	if os.Getenv("OPENAI_API_KEY") == "" {
		return Item{
			Name:    "OpenAI API key",
			Status:  StatusFail,
			Message: "OPENAI_API_KEY is not set",
			Hint:    "Export OPENAI_API_KEY or add it to a .env file.",
		}
	}
	return Item{
		Name:    "OpenAI API key",
		Status:  StatusPass,
		Message: "OPENAI_API_KEY is set",
	}
}

// checkOutputDir verifies the transcript directory exists (creating it) and
// is writable.
func (c *Checker) checkOutputDir(dir string) Item {
	item := Item{Name: "Transcript directory"}

	if err := c.mkdirAll(dir, 0o755); err != nil {
		item.Status = StatusFail
		item.Message = fmt.Sprintf("Cannot create transcript directory: %s", dir)
		return item
	}

	f, err := c.createTemp(dir, ".mediascribe-*")
	if err != nil {
		item.Status = StatusFail
		item.Message = fmt.Sprintf("Transcript directory is not writable: %s", dir)
		return item
	}
	name := f.Name()
	_ = f.Close()
	_ = c.remove(name)

	item.Status = StatusPass
	item.Message = fmt.Sprintf("Writable: %s", dir)
	return item
}
