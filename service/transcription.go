package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apptranscription "mediascribe/application/transcription"
	"mediascribe/domain/transcription"
	"mediascribe/infrastructure/config"
	"mediascribe/infrastructure/filesystem"
	"mediascribe/infrastructure/logging"
	"mediascribe/infrastructure/openai"
	"mediascribe/infrastructure/whispercpp"

	"github.com/google/uuid"
)

// TranscribeAudio transcribes audioPath with the configured engine.
//
// A non-nil error means the engine could not be set up (missing binary,
// model, or API key). All other failures are logged and reported as a nil
// result, without distinguishing the cause to the caller.
func TranscribeAudio(ctx context.Context, cfg *config.Config, logger *slog.Logger, audioPath string) (*transcription.Result, error) {
	transcriber, err := NewTranscriber(cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "transcription unavailable", "error", err)
		return nil, err
	}

	return TranscribeAudioWith(ctx, logger, transcriber, filesystem.NewChecker(), audioPath)
}

// NewTranscriber constructs the transcription adapter selected by the
// configuration. Construction loads the model (or validates API access), so
// a returned error always matches transcription.ErrModelLoad.
func NewTranscriber(cfg *config.Config, logger *slog.Logger) (transcription.Transcriber, error) {
	switch cfg.Transcription.Engine {
	case config.EngineOpenAI:
		return openai.NewTranscriber(cfg.Transcription, openai.WithLogger(logger))
	case config.EngineWhisperCPP, "":
		return whispercpp.NewTranscriber(cfg.Transcription, whispercpp.WithLogger(logger))
	default:
		return nil, fmt.Errorf("%w: unknown engine %q", transcription.ErrModelLoad, cfg.Transcription.Engine)
	}
}

// TranscribeAudioWith runs the transcription flow with injected ports. It
// backs TranscribeAudio and lets tests substitute a fake transcriber.
func TranscribeAudioWith(
	ctx context.Context,
	logger *slog.Logger,
	transcriber transcription.Transcriber,
	files transcription.FileChecker,
	audioPath string,
) (*transcription.Result, error) {
	ctx = logging.ContextAttrs(ctx, slog.String("request_id", uuid.NewString()))

	logger.InfoContext(ctx, "transcribing audio", "source", audioPath)

	useCase := apptranscription.NewService(transcriber, files)
	result, err := useCase.Execute(ctx, audioPath)
	if err != nil {
		if errors.Is(err, transcription.ErrModelLoad) {
			logger.ErrorContext(ctx, "transcription unavailable", "error", err)
			return nil, err
		}

		logger.ErrorContext(ctx, "transcription failed", "error", err)
		return nil, nil
	}

	logger.InfoContext(ctx, "transcription complete",
		"language", result.Language,
		"segments", len(result.Segments),
		"characters", len(result.Text))
	return result, nil
}
