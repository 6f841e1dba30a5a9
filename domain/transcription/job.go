package transcription

import "fmt"

// Job describes one transcription to perform. An empty Language means the
// model should auto-detect the spoken language.
type Job struct {
	SourceAudioPath     string
	Language            string
	UseReducedPrecision bool
}

// NewJob creates a Job with the default options: auto-detected language and
// reduced precision preferred.
func NewJob(sourceAudioPath string) (*Job, error) {
	if sourceAudioPath == "" {
		return nil, fmt.Errorf("source audio path is required")
	}

	return &Job{
		SourceAudioPath:     sourceAudioPath,
		UseReducedPrecision: true,
	}, nil
}
