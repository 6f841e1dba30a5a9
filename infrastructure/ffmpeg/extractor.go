package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"mediascribe/domain/extraction"
	"mediascribe/infrastructure/command"
)

// DefaultTimeout bounds one ffmpeg invocation.
const DefaultTimeout = 600 * time.Second

// Extractor implements extraction.AudioExtractor using the ffmpeg
// command-line tool. The binary is resolved at construction time, so a
// missing installation fails fast instead of at the first extraction.
type Extractor struct {
	ffmpegPath string
	runner     command.Runner
	timeout    time.Duration
	logger     *slog.Logger
}

// ExtractorOption is a functional option for configuring Extractor
type ExtractorOption func(*Extractor)

// WithFFmpegPath sets a custom ffmpeg executable path, skipping PATH lookup.
// An empty path is ignored.
func WithFFmpegPath(path string) ExtractorOption {
	return func(e *Extractor) {
		e.ffmpegPath = path
	}
}

// WithRunner sets a custom command runner (for testing)
func WithRunner(runner command.Runner) ExtractorOption {
	return func(e *Extractor) {
		e.runner = runner
	}
}

// WithTimeout overrides the execution timeout
func WithTimeout(timeout time.Duration) ExtractorOption {
	return func(e *Extractor) {
		e.timeout = timeout
	}
}

// WithLogger sets the logger used for command diagnostics
func WithLogger(logger *slog.Logger) ExtractorOption {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates a new ffmpeg-based audio extractor. It returns
// extraction.ErrBinaryNotFound when no ffmpeg path is configured and none
// can be found on PATH.
func NewExtractor(opts ...ExtractorOption) (*Extractor, error) {
	return newExtractor(exec.LookPath, opts...)
}

func newExtractor(lookPath func(string) (string, error), opts ...ExtractorOption) (*Extractor, error) {
	e := &Extractor{
		runner:  &command.ExecRunner{},
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.ffmpegPath == "" {
		path, err := lookPath("ffmpeg")
		if err != nil {
			return nil, fmt.Errorf("%w: install ffmpeg or set audio.ffmpeg_path", extraction.ErrBinaryNotFound)
		}
		e.ffmpegPath = path
	}

	return e, nil
}

// Extract implements extraction.AudioExtractor. The argument shape is fixed:
// input path, -vn to drop the video stream, the job's quality flags verbatim,
// output path, -y to overwrite without prompting.
func (e *Extractor) Extract(ctx context.Context, job *extraction.Job) error {
	if err := os.MkdirAll(filepath.Dir(job.DestinationAudioPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	args := make([]string, 0, len(job.QualityFlags)+5)
	args = append(args, "-i", job.SourceVideoPath, "-vn")
	args = append(args, job.QualityFlags...)
	args = append(args, job.DestinationAudioPath, "-y")

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	e.logger.DebugContext(ctx, "running ffmpeg", "binary", e.ffmpegPath, "args", args)

	result, err := e.runner.Run(ctx, e.ffmpegPath, args...)
	if err == nil {
		return nil
	}

	// The binary can vanish between construction and invocation. A PATH
	// lookup fails with exec.ErrNotFound; a stored absolute path fails at
	// fork/exec with os.ErrNotExist before the process ever starts.
	if errors.Is(err, exec.ErrNotFound) ||
		(result.ExitCode == -1 && errors.Is(err, os.ErrNotExist)) {
		return fmt.Errorf("%w: %s", extraction.ErrBinaryNotFound, e.ffmpegPath)
	}

	cause := err
	if ctx.Err() != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		cause = fmt.Errorf("timed out after %s: %w", e.timeout, err)
	}

	return &extraction.CommandError{
		Kind:     extraction.ErrExecutionFailed,
		ExitCode: result.ExitCode,
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
		Err:      cause,
	}
}

// Ensure Extractor implements extraction.AudioExtractor
var _ extraction.AudioExtractor = (*Extractor)(nil)
