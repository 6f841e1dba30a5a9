package extraction

import (
	"context"
	"time"
)

// AudioExtractor defines the interface for audio extraction operations
// This is a port that can be implemented by different infrastructure adapters
type AudioExtractor interface {
	// Extract extracts the audio track described by the job and writes it to
	// the job's destination path
	Extract(ctx context.Context, job *Job) error
}

// FileChecker defines the interface for checking source files
// This is used to validate that input files exist before extraction
type FileChecker interface {
	// Exists returns true if the path exists
	Exists(path string) bool
	// IsFile returns true if the path is a regular file
	IsFile(path string) bool
}

// VideoInfo describes basic properties of a video source.
type VideoInfo struct {
	FrameCount int
	FPS        float64
	Duration   time.Duration
}

// VideoProber reports metadata about a video file. Implementations may be
// unavailable depending on build configuration.
type VideoProber interface {
	Probe(path string) (*VideoInfo, error)
}
