package transcription

import (
	"context"
	"fmt"

	"mediascribe/domain/transcription"
)

// Service is the transcription use case. It validates the input, builds a
// job with default options, and delegates to the injected transcriber port.
type Service struct {
	transcriber transcription.Transcriber
	files       transcription.FileChecker
}

// NewService creates a new transcription Service
func NewService(transcriber transcription.Transcriber, files transcription.FileChecker) *Service {
	return &Service{
		transcriber: transcriber,
		files:       files,
	}
}

// Execute transcribes audioPath and returns the transcriber's result
// unchanged. The transcriber is never invoked when validation fails.
func (s *Service) Execute(ctx context.Context, audioPath string) (*transcription.Result, error) {
	if !s.files.Exists(audioPath) {
		return nil, fmt.Errorf("%w: %s", transcription.ErrSourceNotFound, audioPath)
	}
	if !s.files.IsFile(audioPath) {
		return nil, fmt.Errorf("%w: not a regular file: %s", transcription.ErrSourceNotFound, audioPath)
	}

	job, err := transcription.NewJob(audioPath)
	if err != nil {
		return nil, err
	}

	return s.transcriber.Transcribe(ctx, job)
}
