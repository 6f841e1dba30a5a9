package extraction

import (
	"context"
	"fmt"

	"mediascribe/domain/extraction"
)

// Service is the audio extraction use case. It validates the input, builds
// the job, and delegates the actual work to the injected extractor port.
type Service struct {
	extractor extraction.AudioExtractor
	files     extraction.FileChecker
}

// NewService creates a new extraction Service
func NewService(extractor extraction.AudioExtractor, files extraction.FileChecker) *Service {
	return &Service{
		extractor: extractor,
		files:     files,
	}
}

// Execute extracts the audio track of videoPath into outputPath using the
// given quality flags and returns the outputPath it was given. The extractor
// is never invoked when validation fails, and extractor errors are propagated
// unchanged.
func (s *Service) Execute(ctx context.Context, videoPath, outputPath string, qualityFlags []string) (string, error) {
	if !s.files.Exists(videoPath) {
		return "", fmt.Errorf("%w: %s", extraction.ErrSourceNotFound, videoPath)
	}
	if !s.files.IsFile(videoPath) {
		return "", fmt.Errorf("%w: not a regular file: %s", extraction.ErrSourceNotFound, videoPath)
	}

	job, err := extraction.NewJob(videoPath, outputPath, qualityFlags)
	if err != nil {
		return "", err
	}

	if err := s.extractor.Extract(ctx, job); err != nil {
		return "", err
	}

	return outputPath, nil
}
