//go:build integration

package steps

import (
	"context"
	"errors"
	"fmt"

	"mediascribe/domain/transcription"
	"mediascribe/service"

	"github.com/cucumber/godog"
)

// mockTranscriber returns a canned result or failure
type mockTranscriber struct {
	result    *transcription.Result
	failError error
	calls     int
}

func (m *mockTranscriber) Transcribe(ctx context.Context, job *transcription.Job) (*transcription.Result, error) {
	m.calls++
	if m.failError != nil {
		return nil, m.failError
	}
	return m.result, nil
}

// transcribeContext holds test state for transcription scenarios
type transcribeContext struct {
	transcriber *mockTranscriber
	fileChecker *mockFileChecker
	result      *transcription.Result
	err         error
}

// SharedTranscribeContext is reset before each scenario via Before hook
var SharedTranscribeContext *transcribeContext

func getTranscribeContext() *transcribeContext {
	return SharedTranscribeContext
}

func InitializeTranscribeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		SharedTranscribeContext = &transcribeContext{
			transcriber: &mockTranscriber{},
			fileChecker: &mockFileChecker{
				existingFiles: make(map[string]bool),
			},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		SharedTranscribeContext = nil
		return c, nil
	})

	ctx.Step(`^an audio file at "([^"]*)"$`, anAudioFileAt)
	ctx.Step(`^no audio file exists at "([^"]*)"$`, noAudioFileExistsAt)
	ctx.Step(`^the engine returns the text "([^"]*)" in language "([^"]*)"$`, theEngineReturnsTheText)
	ctx.Step(`^the engine fails with message "([^"]*)"$`, theEngineFailsWithMessage)
	ctx.Step(`^the engine fails because the model cannot be loaded$`, theEngineFailsBecauseTheModelCannotBeLoaded)
	ctx.Step(`^I transcribe "([^"]*)"$`, iTranscribe)
	ctx.Step(`^the transcript text should be "([^"]*)"$`, theTranscriptTextShouldBe)
	ctx.Step(`^the detected language should be "([^"]*)"$`, theDetectedLanguageShouldBe)
	ctx.Step(`^no transcript should be produced$`, noTranscriptShouldBeProduced)
	ctx.Step(`^the engine should not have been invoked$`, theEngineShouldNotHaveBeenInvoked)
	ctx.Step(`^the transcription should fail with a model load error$`, theTranscriptionShouldFailWithAModelLoadError)
}

func anAudioFileAt(path string) error {
	tc := getTranscribeContext()
	tc.fileChecker.existingFiles[path] = true
	return nil
}

func noAudioFileExistsAt(path string) error {
	tc := getTranscribeContext()
	tc.fileChecker.existingFiles[path] = false
	return nil
}

func theEngineReturnsTheText(text, language string) error {
	tc := getTranscribeContext()
	tc.transcriber.result = &transcription.Result{
		Text:     text,
		Language: language,
	}
	return nil
}

func theEngineFailsWithMessage(message string) error {
	tc := getTranscribeContext()
	tc.transcriber.failError = fmt.Errorf("%w: %s", transcription.ErrTranscriptionFailed, message)
	return nil
}

func theEngineFailsBecauseTheModelCannotBeLoaded() error {
	tc := getTranscribeContext()
	tc.transcriber.failError = fmt.Errorf("%w: model file removed", transcription.ErrModelLoad)
	return nil
}

func iTranscribe(source string) error {
	tc := getTranscribeContext()
	tc.result, tc.err = service.TranscribeAudioWith(
		context.Background(),
		discardLogger(),
		tc.transcriber,
		tc.fileChecker,
		source,
	)
	return nil
}

func theTranscriptTextShouldBe(expected string) error {
	tc := getTranscribeContext()
	if tc.err != nil {
		return fmt.Errorf("unexpected error: %v", tc.err)
	}
	if tc.result == nil {
		return fmt.Errorf("expected a result but got none")
	}
	if tc.result.Text != expected {
		return fmt.Errorf("expected transcript %q, got %q", expected, tc.result.Text)
	}
	return nil
}

func theDetectedLanguageShouldBe(expected string) error {
	tc := getTranscribeContext()
	if tc.result == nil {
		return fmt.Errorf("expected a result but got none")
	}
	if tc.result.Language != expected {
		return fmt.Errorf("expected language %q, got %q", expected, tc.result.Language)
	}
	return nil
}

func noTranscriptShouldBeProduced() error {
	tc := getTranscribeContext()
	if tc.err != nil {
		return fmt.Errorf("operational failures should not surface an error, got: %v", tc.err)
	}
	if tc.result != nil {
		return fmt.Errorf("expected no result, got %+v", tc.result)
	}
	return nil
}

func theEngineShouldNotHaveBeenInvoked() error {
	tc := getTranscribeContext()
	if tc.transcriber.calls != 0 {
		return fmt.Errorf("expected no engine invocations, got %d", tc.transcriber.calls)
	}
	return nil
}

func theTranscriptionShouldFailWithAModelLoadError() error {
	tc := getTranscribeContext()
	if !errors.Is(tc.err, transcription.ErrModelLoad) {
		return fmt.Errorf("expected a model load error, got: %v", tc.err)
	}
	return nil
}
