// Package answer resolves a question to an answer string, either from
// the canned mock generator, a remote ask endpoint, or an OpenAI chat
// completion, selected once from the environment.
package answer

import (
	"context"
	"errors"
	"strings"

	"github.com/cupogo/andvari/utils/zlog"

	"github.com/liut/askpad/pkg/models/qa"
	"github.com/liut/askpad/pkg/settings"
)

// errors of the ask call; the web edge flattens them to one message string.
var (
	ErrEmptyQuestion = errors.New("question is empty")
	ErrTimeout       = errors.New("request timed out")
	ErrNetwork       = errors.New("network error")
	ErrServer        = errors.New("server error")
	ErrMalformed     = errors.New("malformed response")
)

// Asker answers one question per call. Calls are not retried; a caller
// wanting a retry re-issues the identical question.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// New selects the mode from the current settings: a configured remote
// base URL wins, then an OpenAI key, otherwise the mock generator.
func New(preset qa.Preset) Asker {
	cfg := settings.Current
	if len(cfg.AskBaseURL) > 0 {
		logger().Infow("answer mode", "mode", "remote", "base", cfg.AskBaseURL)
		return NewRemote(cfg.AskBaseURL)
	}
	if len(cfg.OpenAIAPIKey) > 0 {
		logger().Infow("answer mode", "mode", "openai")
		return NewOpenAI(cfg.OpenAIAPIKey)
	}
	logger().Infow("answer mode", "mode", "mock")
	return NewMock(preset.Mock)
}

func checkQuestion(question string) error {
	if len(strings.TrimSpace(question)) == 0 {
		return ErrEmptyQuestion
	}
	return nil
}

func logger() zlog.Logger {
	return zlog.Get()
}
