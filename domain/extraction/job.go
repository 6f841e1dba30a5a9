package extraction

import "fmt"

// Job describes one audio extraction to perform. It is built by the
// application layer after validation, handed to the extractor once, and
// discarded afterwards.
type Job struct {
	SourceVideoPath      string
	DestinationAudioPath string
	QualityFlags         []string
}

// NewJob creates a Job with validation. The quality flags are copied so
// later mutation of the caller's slice cannot alter the job.
func NewJob(sourceVideoPath, destinationAudioPath string, qualityFlags []string) (*Job, error) {
	if sourceVideoPath == "" {
		return nil, fmt.Errorf("source video path is required")
	}
	if destinationAudioPath == "" {
		return nil, fmt.Errorf("destination audio path is required")
	}

	flags := make([]string, len(qualityFlags))
	copy(flags, qualityFlags)

	return &Job{
		SourceVideoPath:      sourceVideoPath,
		DestinationAudioPath: destinationAudioPath,
		QualityFlags:         flags,
	}, nil
}
