package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/eunah0807-bit/csm17-meeting-assistant/config"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/app"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/cli"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/output"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cfg.LogLevel)

	deps := &cli.Dependencies{
		App:    app.New(cfg, logger),
		Config: cfg,
		Logger: logger,
	}

	return cli.NewRootCmd(deps).Execute()
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}
