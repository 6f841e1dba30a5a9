package whispercpp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"mediascribe/domain/transcription"
	"mediascribe/infrastructure/command"
	"mediascribe/infrastructure/config"
)

// DefaultBinary is the whisper.cpp CLI binary looked up on PATH when no
// explicit path is configured.
const DefaultBinary = "whisper-cli"

// Transcriber implements transcription.Transcriber using the whisper.cpp
// command-line tool and a local ggml/gguf model. Both the binary and the
// model file are resolved at construction time, mirroring the extraction
// adapter: an unusable environment fails fast.
type Transcriber struct {
	binaryPath string
	modelPath  string
	device     string
	language   string
	runner     command.Runner
	logger     *slog.Logger

	mkdirTemp func(dir, pattern string) (string, error)
	removeAll func(path string) error
	readFile  func(name string) ([]byte, error)
}

// TranscriberOption is a functional option for configuring Transcriber
type TranscriberOption func(*Transcriber)

// WithRunner sets a custom command runner (for testing)
func WithRunner(runner command.Runner) TranscriberOption {
	return func(t *Transcriber) {
		t.runner = runner
	}
}

// WithLogger sets the logger used for command diagnostics
func WithLogger(logger *slog.Logger) TranscriberOption {
	return func(t *Transcriber) {
		t.logger = logger
	}
}

// NewTranscriber creates a whisper.cpp-backed transcriber. It returns
// transcription.ErrModelLoad when the binary or the model cannot be
// resolved.
func NewTranscriber(cfg config.TranscriptionConfig, opts ...TranscriberOption) (*Transcriber, error) {
	return newTranscriber(exec.LookPath, os.Stat, os.ReadDir, cfg, opts...)
}

func newTranscriber(
	lookPath func(string) (string, error),
	stat func(string) (os.FileInfo, error),
	readDir func(string) ([]os.DirEntry, error),
	cfg config.TranscriptionConfig,
	opts ...TranscriberOption,
) (*Transcriber, error) {
	t := &Transcriber{
		binaryPath: cfg.WhisperPath,
		device:     cfg.Device,
		language:   cfg.Language,
		runner:     &command.ExecRunner{},
		logger:     slog.Default(),
		mkdirTemp:  os.MkdirTemp,
		removeAll:  os.RemoveAll,
		readFile:   os.ReadFile,
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.binaryPath == "" {
		path, err := lookPath(DefaultBinary)
		if err != nil {
			return nil, fmt.Errorf("%w: %s not found on PATH; install whisper.cpp or set transcription.whisper_path", transcription.ErrModelLoad, DefaultBinary)
		}
		t.binaryPath = path
	}

	modelPath, err := resolveModelPath(stat, readDir, cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", transcription.ErrModelLoad, err)
	}
	t.modelPath = modelPath

	return t, nil
}

// resolveModelPath accepts a model file directly, or a directory from which
// the first ggml/gguf model (sorted by name) is picked.
func resolveModelPath(
	stat func(string) (os.FileInfo, error),
	readDir func(string) ([]os.DirEntry, error),
	rawPath string,
) (string, error) {
	modelPath := strings.TrimSpace(rawPath)
	if modelPath == "" {
		return "", fmt.Errorf("model path is required")
	}

	info, err := stat(modelPath)
	if err != nil {
		return "", fmt.Errorf("cannot access model path: %s", modelPath)
	}
	if !info.IsDir() {
		return modelPath, nil
	}

	entries, err := readDir(modelPath)
	if err != nil {
		return "", fmt.Errorf("cannot read model directory: %s", modelPath)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".bin" || ext == ".gguf" {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no .bin or .gguf model files found in: %s", modelPath)
	}

	sort.Strings(names)
	return filepath.Join(modelPath, names[0]), nil
}

// Transcribe implements transcription.Transcriber. Reduced precision (GPU
// inference) is decided from the adapter's configured device, not from the
// job's own preference; a mismatch is logged rather than honored.
func (t *Transcriber) Transcribe(ctx context.Context, job *transcription.Job) (*transcription.Result, error) {
	useGPU := t.device == "cuda"
	if useGPU != job.UseReducedPrecision {
		t.logger.DebugContext(ctx, "overriding requested precision from device capability",
			"device", t.device, "requested_reduced_precision", job.UseReducedPrecision)
	}
	if !useGPU {
		t.logger.DebugContext(ctx, "running transcription on CPU; this may be slow")
	}

	tempDir, err := t.mkdirTemp("", "mediascribe-*")
	if err != nil {
		return nil, fmt.Errorf("%w: cannot create temporary workspace: %v", transcription.ErrTranscriptionFailed, err)
	}
	defer func() { _ = t.removeAll(tempDir) }()

	language := job.Language
	if language == "" {
		language = t.language
	}

	outBase := filepath.Join(tempDir, "transcript")
	args := buildArgs(t.modelPath, job.SourceAudioPath, outBase, language, useGPU)

	t.logger.DebugContext(ctx, "running whisper.cpp", "binary", t.binaryPath, "args", args)

	result, err := t.runner.Run(ctx, t.binaryPath, args...)
	if err != nil {
		stderr := strings.TrimSpace(result.Stderr)
		if stderr == "" {
			return nil, fmt.Errorf("%w: %v", transcription.ErrTranscriptionFailed, err)
		}
		return nil, fmt.Errorf("%w: exit code %d: %s", transcription.ErrTranscriptionFailed, result.ExitCode, stderr)
	}

	data, err := t.readFile(outBase + ".json")
	if err != nil {
		return nil, fmt.Errorf("%w: whisper.cpp completed but produced no JSON output: %v", transcription.ErrTranscriptionFailed, err)
	}

	mapped, err := mapOutput(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", transcription.ErrTranscriptionFailed, err)
	}
	return mapped, nil
}

// buildArgs builds whisper.cpp args for JSON transcript export.
func buildArgs(modelPath, audioPath, outBase, language string, useGPU bool) []string {
	args := []string{
		"-m", modelPath,
		"-f", audioPath,
		"-of", outBase,
		"-oj",
	}

	if lang := normalizeLanguage(language); lang != "" {
		args = append(args, "-l", lang)
	}
	if !useGPU {
		args = append(args, "--no-gpu")
	}

	return args
}

// normalizeLanguage maps "auto" and empty language to no CLI override.
func normalizeLanguage(raw string) string {
	lang := strings.TrimSpace(raw)
	if lang == "" || strings.EqualFold(lang, "auto") {
		return ""
	}
	return lang
}

// Ensure Transcriber implements transcription.Transcriber
var _ transcription.Transcriber = (*Transcriber)(nil)
