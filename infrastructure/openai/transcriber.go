package openai

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"mediascribe/domain/transcription"
	"mediascribe/infrastructure/config"

	goopenai "github.com/sashabaranov/go-openai"
)

// transcriptionClient is the slice of the OpenAI client this adapter uses,
// abstracted so tests can substitute a fake.
type transcriptionClient interface {
	CreateTranscription(ctx context.Context, request goopenai.AudioRequest) (goopenai.AudioResponse, error)
}

// Transcriber implements transcription.Transcriber against the OpenAI audio
// API. It is the alternative engine behind the same port the whisper.cpp
// adapter implements.
type Transcriber struct {
	client transcriptionClient
	model  string
	logger *slog.Logger
}

// TranscriberOption is a functional option for configuring Transcriber
type TranscriberOption func(*Transcriber)

// WithClient sets a custom API client (for testing)
func WithClient(client transcriptionClient) TranscriberOption {
	return func(t *Transcriber) {
		t.client = client
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger *slog.Logger) TranscriberOption {
	return func(t *Transcriber) {
		t.logger = logger
	}
}

// NewTranscriber creates an API-backed transcriber. It returns
// transcription.ErrModelLoad when no API key is configured, keeping setup
// failures at construction time like the local engine.
func NewTranscriber(cfg config.TranscriptionConfig, opts ...TranscriberOption) (*Transcriber, error) {
	t := &Transcriber{
		model:  cfg.OpenAIModel,
		logger: slog.Default(),
	}
	if t.model == "" {
		t.model = goopenai.Whisper1
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.client == nil {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", transcription.ErrModelLoad)
		}
		t.client = goopenai.NewClient(apiKey)
	}

	return t, nil
}

// Transcribe implements transcription.Transcriber
func (t *Transcriber) Transcribe(ctx context.Context, job *transcription.Job) (*transcription.Result, error) {
	req := goopenai.AudioRequest{
		Model:    t.model,
		FilePath: job.SourceAudioPath,
		Language: job.Language,
		Format:   goopenai.AudioResponseFormatVerboseJSON,
	}

	t.logger.DebugContext(ctx, "requesting transcription", "model", t.model, "source", job.SourceAudioPath)

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", transcription.ErrTranscriptionFailed, err)
	}

	return mapResponse(resp), nil
}

// mapResponse converts the verbose-JSON API response into the domain result
// with the same defaults the local engine applies.
func mapResponse(resp goopenai.AudioResponse) *transcription.Result {
	language := resp.Language
	if language == "" {
		language = transcription.UnknownLanguage
	}

	segments := make([]transcription.Segment, 0, len(resp.Segments))
	for _, seg := range resp.Segments {
		segments = append(segments, transcription.Segment{
			Start: secondsToDuration(seg.Start),
			End:   secondsToDuration(seg.End),
			Text:  seg.Text,
		})
	}

	return &transcription.Result{
		Text:     resp.Text,
		Language: language,
		Segments: segments,
	}
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// Ensure Transcriber implements transcription.Transcriber
var _ transcription.Transcriber = (*Transcriber)(nil)
