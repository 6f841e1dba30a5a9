package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"mediascribe/infrastructure/probe"
	"mediascribe/infrastructure/transcript"
	"mediascribe/service"

	"github.com/spf13/cobra"
)

var (
	processSourcePath string
	processAudioPath  string
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Extract audio from a video and transcribe it",
	Long: `Run the complete workflow on one video:
1. Extract the audio track
2. Transcribe the audio with the configured engine
3. Write the transcript as plain text and SubRip subtitles

Example:
  mediascribe process --source recording.mp4`,
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)
	processCmd.Flags().StringVar(&processSourcePath, "source", "", "Path to source video file (required)")
	processCmd.Flags().StringVar(&processAudioPath, "audio-output", "", "Path for the intermediate audio file")
	processCmd.MarkFlagRequired("source")
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	log := GetLogger()
	ctx := cmd.Context()

	// Probing is informational only; the stub build reports it unavailable.
	if info, err := probe.NewProber().Probe(processSourcePath); err == nil {
		fmt.Fprintf(DefaultOutput, "Source video: %s (%d frames, %.2f fps, %s)\n",
			processSourcePath, info.FrameCount, info.FPS, info.Duration.Round(0))
	} else {
		log.DebugContext(ctx, "video probe skipped", "reason", err)
	}

	fmt.Fprintf(DefaultOutput, "Extracting audio from %s...\n", processSourcePath)
	audioPath, err := service.ExtractAudioFromVideo(ctx, cfg, log, processSourcePath, processAudioPath)
	if err != nil {
		return err
	}
	if audioPath == "" {
		return fmt.Errorf("audio extraction failed; see logs for details")
	}
	fmt.Fprintf(DefaultOutput, "Audio written to: %s\n", audioPath)

	fmt.Fprintf(DefaultOutput, "Transcribing %s...\n", audioPath)
	result, err := service.TranscribeAudio(ctx, cfg, log, audioPath)
	if err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("transcription failed; see logs for details")
	}
	fmt.Fprintf(DefaultOutput, "Detected language: %s\n", result.Language)

	base := filepath.Base(audioPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	textPath := filepath.Join(cfg.Paths.TranscriptDirectory, name+".txt")
	srtPath := filepath.Join(cfg.Paths.TranscriptDirectory, name+".srt")

	if err := transcript.WriteText(textPath, base, result); err != nil {
		return err
	}
	if err := transcript.WriteSRT(srtPath, result); err != nil {
		return err
	}

	fmt.Fprintf(DefaultOutput, "Transcript written to: %s\n", textPath)
	fmt.Fprintf(DefaultOutput, "Subtitles written to: %s\n", srtPath)
	return nil
}
