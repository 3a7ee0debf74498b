package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/eunah0807-bit/csm17-meeting-assistant/config"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/audio"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/domain/meeting/usecases"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/gemini"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/metrics"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/session"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/slack"
)

type App struct {
	Analyze  *usecases.Analyze
	Notify   *usecases.Notify
	Recorder *audio.Recorder
	Session  *session.Session
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
}

func New(cfg *config.Config, logger zerolog.Logger) *App {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	analyze := &usecases.Analyze{
		Generator: gemini.NewClient(cfg.GeminiAPIKey),
		Models:    cfg.Models,
		Prompt:    cfg.Prompt,
		Logger:    logger.With().Str("component", "analyze").Logger(),
		Metrics:   m,
	}

	notify := &usecases.Notify{
		Slack:   slack.NewClient(cfg.SlackBotToken),
		Logger:  logger.With().Str("component", "notify").Logger(),
		Metrics: m,
	}

	return &App{
		Analyze:  analyze,
		Notify:   notify,
		Recorder: audio.NewRecorder(),
		Session:  session.New(),
		Metrics:  m,
		Registry: registry,
	}
}
