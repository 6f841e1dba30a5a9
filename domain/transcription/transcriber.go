package transcription

import "context"

// Transcriber defines the interface for speech-to-text operations
// This is a port that can be implemented by different infrastructure adapters
type Transcriber interface {
	// Transcribe converts the audio described by the job into a Result
	Transcribe(ctx context.Context, job *Job) (*Result, error)
}

// FileChecker defines the interface for checking source files
// This is used to validate that input files exist before transcription
type FileChecker interface {
	// Exists returns true if the path exists
	Exists(path string) bool
	// IsFile returns true if the path is a regular file
	IsFile(path string) bool
}
