package transcription

import "errors"

var (
	// ErrSourceNotFound is returned when the input audio does not exist or
	// is not a regular file
	ErrSourceNotFound = errors.New("source audio not found")

	// ErrModelLoad is returned when the transcription engine cannot be set
	// up: the model name is invalid, the model file or binary is missing,
	// or the device lacks resources
	ErrModelLoad = errors.New("transcription model unavailable")

	// ErrTranscriptionFailed is returned when a transcription attempt fails
	ErrTranscriptionFailed = errors.New("transcription failed")
)
