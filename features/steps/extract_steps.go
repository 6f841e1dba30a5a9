//go:build integration

package steps

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"mediascribe/domain/extraction"
	"mediascribe/infrastructure/config"
	"mediascribe/service"

	"github.com/cucumber/godog"
)

// mockExtractor records calls to Extract for verification
type mockExtractor struct {
	jobs      []*extraction.Job
	failError error
}

func (m *mockExtractor) Extract(ctx context.Context, job *extraction.Job) error {
	if m.failError != nil {
		return m.failError
	}
	m.jobs = append(m.jobs, job)
	return nil
}

// mockFileChecker treats paths as files according to existingFiles
type mockFileChecker struct {
	existingFiles map[string]bool
}

func (m *mockFileChecker) Exists(path string) bool { return m.existingFiles[path] }
func (m *mockFileChecker) IsFile(path string) bool { return m.existingFiles[path] }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// extractContext holds test state for extraction scenarios
type extractContext struct {
	cfg         *config.Config
	extractor   *mockExtractor
	fileChecker *mockFileChecker
	resultPath  string
	err         error
}

// SharedExtractContext is reset before each scenario via Before hook
var SharedExtractContext *extractContext

func getExtractContext() *extractContext {
	return SharedExtractContext
}

func InitializeExtractScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		SharedExtractContext = &extractContext{
			cfg:       config.Default(),
			extractor: &mockExtractor{},
			fileChecker: &mockFileChecker{
				existingFiles: make(map[string]bool),
			},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		SharedExtractContext = nil
		return c, nil
	})

	ctx.Step(`^a video file at "([^"]*)"$`, aVideoFileAt)
	ctx.Step(`^no video file exists at "([^"]*)"$`, noVideoFileExistsAt)
	ctx.Step(`^the configured audio format is "([^"]*)"$`, theConfiguredAudioFormatIs)
	ctx.Step(`^the extractor fails with exit code (\d+) and message "([^"]*)"$`, theExtractorFailsWith)
	ctx.Step(`^I extract audio from "([^"]*)"$`, iExtractAudioFrom)
	ctx.Step(`^I extract audio from "([^"]*)" into "([^"]*)"$`, iExtractAudioFromInto)
	ctx.Step(`^the audio output file should be "([^"]*)"$`, theAudioOutputFileShouldBe)
	ctx.Step(`^the extractor should have received quality flags:$`, theExtractorShouldHaveReceivedQualityFlags)
	ctx.Step(`^the extraction should be reported as failed$`, theExtractionShouldBeReportedAsFailed)
	ctx.Step(`^the extractor should not have been invoked$`, theExtractorShouldNotHaveBeenInvoked)
}

func aVideoFileAt(path string) error {
	e := getExtractContext()
	e.fileChecker.existingFiles[path] = true
	return nil
}

func noVideoFileExistsAt(path string) error {
	e := getExtractContext()
	e.fileChecker.existingFiles[path] = false
	return nil
}

func theConfiguredAudioFormatIs(format string) error {
	e := getExtractContext()
	e.cfg.Audio.Format = format
	return nil
}

func theExtractorFailsWith(exitCode int, message string) error {
	e := getExtractContext()
	e.extractor.failError = &extraction.CommandError{
		Kind:     extraction.ErrExecutionFailed,
		ExitCode: exitCode,
		Stderr:   message,
	}
	return nil
}

func iExtractAudioFrom(source string) error {
	return iExtractAudioFromInto(source, "")
}

func iExtractAudioFromInto(source, output string) error {
	e := getExtractContext()
	e.resultPath, e.err = service.ExtractAudioWith(
		context.Background(),
		e.cfg,
		discardLogger(),
		e.extractor,
		e.fileChecker,
		source,
		output,
	)
	return nil
}

func theAudioOutputFileShouldBe(expected string) error {
	e := getExtractContext()
	if e.err != nil {
		return fmt.Errorf("unexpected error: %v", e.err)
	}
	if e.resultPath != expected {
		return fmt.Errorf("expected output path %q, got %q", expected, e.resultPath)
	}
	return nil
}

func theExtractorShouldHaveReceivedQualityFlags(table *godog.Table) error {
	e := getExtractContext()
	if len(e.extractor.jobs) == 0 {
		return fmt.Errorf("the extractor was not invoked")
	}

	flags := e.extractor.jobs[0].QualityFlags
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header row
		}
		expected := row.Cells[0].Value
		found := false
		for _, flag := range flags {
			if flag == expected {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("expected flag %q not found in quality flags: %v", expected, flags)
		}
	}
	return nil
}

func theExtractionShouldBeReportedAsFailed() error {
	e := getExtractContext()
	if e.err != nil {
		return fmt.Errorf("operational failures should not surface an error, got: %v", e.err)
	}
	if e.resultPath != "" {
		return fmt.Errorf("expected an empty output path, got %q", e.resultPath)
	}
	return nil
}

func theExtractorShouldNotHaveBeenInvoked() error {
	e := getExtractContext()
	if len(e.extractor.jobs) != 0 {
		return fmt.Errorf("expected no extractor invocations, got %d", len(e.extractor.jobs))
	}
	return nil
}
