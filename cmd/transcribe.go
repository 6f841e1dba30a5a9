package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"mediascribe/infrastructure/transcript"
	"mediascribe/service"

	"github.com/spf13/cobra"
)

var (
	transcribeSourcePath string
	transcribeOutputPath string
	transcribeFormat     string
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe an audio file to text",
	Long: `Transcribe an audio file with the configured engine.

The transcript is written to the configured transcript directory, named after
the source file, unless --output is given. --format selects plain text (txt)
or SubRip subtitles (srt).

Example:
  mediascribe transcribe --source talk.mp3
  mediascribe transcribe --source talk.mp3 --format srt --output talk.srt`,
	RunE: runTranscribe,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)
	transcribeCmd.Flags().StringVar(&transcribeSourcePath, "source", "", "Path to source audio file (required)")
	transcribeCmd.Flags().StringVar(&transcribeOutputPath, "output", "", "Path for the transcript file")
	transcribeCmd.Flags().StringVar(&transcribeFormat, "format", "txt", "Transcript format: txt or srt")
	transcribeCmd.MarkFlagRequired("source")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	if transcribeFormat != "txt" && transcribeFormat != "srt" {
		return fmt.Errorf("unknown transcript format %q (expected txt or srt)", transcribeFormat)
	}

	cfg := GetConfig()

	result, err := service.TranscribeAudio(cmd.Context(), cfg, GetLogger(), transcribeSourcePath)
	if err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("transcription failed; see logs for details")
	}

	outputPath := transcribeOutputPath
	if outputPath == "" {
		base := filepath.Base(transcribeSourcePath)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		outputPath = filepath.Join(cfg.Paths.TranscriptDirectory, name+"."+transcribeFormat)
	}

	if transcribeFormat == "srt" {
		err = transcript.WriteSRT(outputPath, result)
	} else {
		err = transcript.WriteText(outputPath, filepath.Base(transcribeSourcePath), result)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(DefaultOutput, "Detected language: %s\n", result.Language)
	fmt.Fprintf(DefaultOutput, "Transcript written to: %s\n", outputPath)
	return nil
}
