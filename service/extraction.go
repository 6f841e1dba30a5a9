// Package service holds the public entry point of each feature. Each
// function wires a freshly constructed adapter into its use case, fills in
// defaults, and applies the error policy of the outer boundary: setup
// failures (missing binary, unusable model) are returned, operational
// failures are logged and reported as a zero result with a nil error.
package service

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	appextraction "mediascribe/application/extraction"
	"mediascribe/domain/extraction"
	"mediascribe/infrastructure/config"
	"mediascribe/infrastructure/ffmpeg"
	"mediascribe/infrastructure/filesystem"
	"mediascribe/infrastructure/logging"

	"github.com/google/uuid"
)

// ExtractAudioFromVideo extracts the audio track of videoPath into
// outputPath. When outputPath is empty it defaults to videoPath with its
// extension replaced by the configured audio format.
//
// A non-nil error means the environment is unusable (the ffmpeg binary
// could not be resolved). All other failures are logged and reported as an
// empty returned path, without distinguishing the cause to the caller.
func ExtractAudioFromVideo(ctx context.Context, cfg *config.Config, logger *slog.Logger, videoPath, outputPath string) (string, error) {
	extractor, err := ffmpeg.NewExtractor(
		ffmpeg.WithFFmpegPath(cfg.Audio.FFmpegPath),
		ffmpeg.WithLogger(logger),
	)
	if err != nil {
		logger.ErrorContext(ctx, "audio extraction unavailable", "error", err)
		return "", err
	}

	return ExtractAudioWith(ctx, cfg, logger, extractor, filesystem.NewChecker(), videoPath, outputPath)
}

// ExtractAudioWith runs the extraction flow with injected ports. It backs
// ExtractAudioFromVideo and lets tests substitute fakes for ffmpeg and the
// filesystem.
func ExtractAudioWith(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	extractor extraction.AudioExtractor,
	files extraction.FileChecker,
	videoPath, outputPath string,
) (string, error) {
	ctx = logging.ContextAttrs(ctx, slog.String("request_id", uuid.NewString()))

	if outputPath == "" {
		outputPath = DefaultOutputPath(videoPath, cfg.Audio.Format)
	}

	logger.InfoContext(ctx, "extracting audio", "source", videoPath, "destination", outputPath)

	useCase := appextraction.NewService(extractor, files)
	result, err := useCase.Execute(ctx, videoPath, outputPath, cfg.Audio.QualityFlags)
	if err != nil {
		// The binary vanishing between construction and invocation is still
		// a setup failure.
		if errors.Is(err, extraction.ErrBinaryNotFound) {
			logger.ErrorContext(ctx, "audio extraction unavailable", "error", err)
			return "", err
		}

		var cmdErr *extraction.CommandError
		if errors.As(err, &cmdErr) {
			logger.ErrorContext(ctx, "audio extraction failed",
				"error", err,
				"exit_code", cmdErr.ExitCode,
				"stdout", cmdErr.Stdout,
				"stderr", cmdErr.Stderr)
		} else {
			logger.ErrorContext(ctx, "audio extraction failed", "error", err)
		}
		return "", nil
	}

	logger.InfoContext(ctx, "audio extraction complete", "destination", result)
	return result, nil
}

// DefaultOutputPath returns videoPath with its extension replaced by the
// given audio format.
func DefaultOutputPath(videoPath, format string) string {
	ext := filepath.Ext(videoPath)
	return strings.TrimSuffix(videoPath, ext) + "." + format
}
