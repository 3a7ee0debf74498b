package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/domain/meeting"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/metrics"
)

// ErrAllModelsFailed is returned when every candidate model has been tried
// without producing a non-empty response. It wraps the last recorded failure.
var ErrAllModelsFailed = errors.New("all candidate models failed")

// Generator is the single call the requester needs from the model backend.
// Satisfied by gemini.Client.
type Generator interface {
	GenerateFromAudio(ctx context.Context, model, prompt string, audio []byte, mimeType string) (string, error)
}

// Analyze sends a recording through the ordered candidate model list and
// parses the winning response into the three fixed sections.
type Analyze struct {
	Generator Generator
	Models    []string // tried in order; configuration, not derived at runtime
	Prompt    string
	Logger    zerolog.Logger
	Metrics   *metrics.Metrics
}

// Execute tries each candidate once, no per-candidate retries. Intermediate
// failures are recorded and swallowed; the first non-empty response wins. On
// exhaustion the error wraps ErrAllModelsFailed and the last recorded failure.
func (a *Analyze) Execute(ctx context.Context, audio []byte) (string, meeting.AnalysisResult, error) {
	if a.Metrics != nil {
		a.Metrics.AnalysisRequests.Inc()
	}

	var lastErr error
	for _, model := range a.Models {
		text, err := a.Generator.GenerateFromAudio(ctx, model, a.Prompt, audio, "audio/wav")
		if err != nil {
			lastErr = err
			a.Logger.Warn().Str("model", model).Err(err).Msg("candidate model failed, trying next")
			a.countAttempt(model, "error")
			continue
		}
		if text == "" {
			lastErr = fmt.Errorf("empty response from model %s", model)
			a.Logger.Warn().Str("model", model).Msg("candidate model returned empty response, trying next")
			a.countAttempt(model, "empty")
			continue
		}

		a.Logger.Debug().Str("model", model).Int("response_len", len(text)).Msg("analysis complete")
		a.countAttempt(model, "success")
		return text, meeting.ParseAnalysis(text), nil
	}

	if a.Metrics != nil {
		a.Metrics.AnalysisFailures.Inc()
	}
	if lastErr == nil {
		lastErr = errors.New("no candidate models configured")
	}
	return "", meeting.AnalysisResult{}, fmt.Errorf("%w: %w", ErrAllModelsFailed, lastErr)
}

func (a *Analyze) countAttempt(model, outcome string) {
	if a.Metrics != nil {
		a.Metrics.ModelAttempts.WithLabelValues(model, outcome).Inc()
	}
}
