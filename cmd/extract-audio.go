package cmd

import (
	"fmt"

	"mediascribe/service"

	"github.com/spf13/cobra"
)

var (
	extractSourcePath string
	extractOutputPath string
)

var extractAudioCmd = &cobra.Command{
	Use:   "extract-audio",
	Short: "Extract the audio track from a video file",
	Long: `Extract the audio track from a video file.

Without --output, the audio is written next to the source video with the
extension replaced by the configured format (mp3 by default). An existing
output file is overwritten.

Example:
  mediascribe extract-audio --source recording.mp4
  mediascribe extract-audio --source recording.mp4 --output /tmp/talk.mp3`,
	RunE: runExtractAudio,
}

func init() {
	rootCmd.AddCommand(extractAudioCmd)
	extractAudioCmd.Flags().StringVar(&extractSourcePath, "source", "", "Path to source video file (required)")
	extractAudioCmd.Flags().StringVar(&extractOutputPath, "output", "", "Path for the output audio file")
	extractAudioCmd.MarkFlagRequired("source")
}

func runExtractAudio(cmd *cobra.Command, args []string) error {
	outputPath, err := service.ExtractAudioFromVideo(cmd.Context(), GetConfig(), GetLogger(), extractSourcePath, extractOutputPath)
	if err != nil {
		return err
	}
	if outputPath == "" {
		return fmt.Errorf("audio extraction failed; see logs for details")
	}

	fmt.Fprintf(DefaultOutput, "Successfully created: %s\n", outputPath)
	return nil
}
