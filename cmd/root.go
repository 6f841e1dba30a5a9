package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"mediascribe/infrastructure/config"
	"mediascribe/infrastructure/logging"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
	logger  *slog.Logger
)

// OutputWriter is where commands print their user-facing output
// (as opposed to log records, which go to the logger)
type OutputWriter interface {
	io.Writer
}

// DefaultOutput is the output writer used in production
var DefaultOutput OutputWriter = os.Stdout

var rootCmd = &cobra.Command{
	Use:   "mediascribe",
	Short: "Extract audio from video files and transcribe speech",
	Long: `mediascribe turns video recordings into audio files and transcripts:

  - Extract the audio track of a video as MP3 (or any ffmpeg format)
  - Transcribe audio with a local whisper.cpp model or the OpenAI API
  - Export transcripts as plain text or SubRip subtitles

Example:
  mediascribe process --source recording.mp4`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = "config/config.yaml"
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// The config file is optional; every setting has a default.
		cfg = config.Default()
	}

	logger = logging.New(verbose)
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg
}

// GetLogger returns the application logger
func GetLogger() *slog.Logger {
	if logger == nil {
		logger = logging.New(false)
	}
	return logger
}
