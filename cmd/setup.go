package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mediascribe/infrastructure/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// Prompter interface for interactive prompts (allows mocking in tests)
type Prompter interface {
	Input(message string, defaultValue string) (string, error)
	Select(message string, options []string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter using the survey library
type SurveyPrompter struct{}

func (p *SurveyPrompter) Input(message string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (p *SurveyPrompter) Select(message string, options []string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// DefaultPrompter is the prompter used in production
var DefaultPrompter Prompter = &SurveyPrompter{}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and creates config.yaml.

This command guides you through audio extraction settings, the transcription
engine, and output paths.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithPrompter(DefaultPrompter, "config/config.yaml")
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm("config.yaml already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Fprintln(DefaultOutput, "Setup cancelled.")
			return nil
		}
	}

	fmt.Fprintln(DefaultOutput, "Welcome to mediascribe setup!")
	fmt.Fprintln(DefaultOutput)

	cfg := config.Default()

	if err := promptAudio(prompter, cfg); err != nil {
		return err
	}

	if err := promptTranscription(prompter, cfg); err != nil {
		return err
	}

	if err := promptPaths(prompter, cfg); err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Fprintln(DefaultOutput)
	fmt.Fprintf(DefaultOutput, "Configuration saved to %s\n", configPath)
	return nil
}

func promptAudio(prompter Prompter, cfg *config.Config) error {
	format, err := prompter.Input("Output audio format?", cfg.Audio.Format)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if format != "" {
		cfg.Audio.Format = strings.TrimPrefix(format, ".")
	}

	flags, err := prompter.Input("ffmpeg quality flags?", strings.Join(cfg.Audio.QualityFlags, " "))
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if flags != "" {
		cfg.Audio.QualityFlags = strings.Fields(flags)
	}

	return nil
}

func promptTranscription(prompter Prompter, cfg *config.Config) error {
	engine, err := prompter.Select("Transcription engine?",
		[]string{config.EngineWhisperCPP, config.EngineOpenAI},
		cfg.Transcription.Engine)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Transcription.Engine = engine

	if engine == config.EngineOpenAI {
		fmt.Fprintln(DefaultOutput, "Set OPENAI_API_KEY in the environment or a .env file.")
		return nil
	}

	modelPath, err := prompter.Input("Model file or directory?", cfg.Transcription.ModelPath)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if modelPath != "" {
		cfg.Transcription.ModelPath = modelPath
	}

	device, err := prompter.Select("Compute device?", []string{"cpu", "cuda"}, cfg.Transcription.Device)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Transcription.Device = device

	return nil
}

func promptPaths(prompter Prompter, cfg *config.Config) error {
	dir, err := prompter.Input("Where should transcripts go?", cfg.Paths.TranscriptDirectory)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if dir != "" {
		cfg.Paths.TranscriptDirectory = dir
	}

	return nil
}
