package cmd

import (
	"fmt"

	"mediascribe/infrastructure/config"
	"mediascribe/infrastructure/diagnostics"

	"github.com/spf13/cobra"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Check that external tools and paths are usable",
	Long: `Check the environment this configuration needs:

  - the ffmpeg binary
  - the whisper.cpp binary and model (or the OpenAI API key)
  - the transcript directory

Exits non-zero when any check fails.`,
	RunE: runDiagnose,
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	return RunDiagnoseWithDependencies(diagnostics.NewChecker(), GetConfig(), DefaultOutput)
}

// RunDiagnoseWithDependencies runs the diagnose command with injected
// dependencies (for testing)
func RunDiagnoseWithDependencies(checker *diagnostics.Checker, cfg *config.Config, out OutputWriter) error {
	report := checker.Run(cfg)

	for _, item := range report.Items {
		status := "PASS"
		if item.Status == diagnostics.StatusFail {
			status = "FAIL"
		}
		fmt.Fprintf(out, "[%s] %-22s %s\n", status, item.Name, item.Message)
		if item.Hint != "" && item.Status == diagnostics.StatusFail {
			fmt.Fprintf(out, "       %s\n", item.Hint)
		}
	}

	if report.HasFailures {
		return fmt.Errorf("environment checks failed")
	}

	fmt.Fprintln(out, "All checks passed.")
	return nil
}
