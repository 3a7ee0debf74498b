package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/secrets"
)

// DefaultPrompt is the instruction sent with every analysis request. The
// bracketed section titles must match the labels the extractor looks for.
const DefaultPrompt = `당신은 전문 비서입니다. 제공된 오디오를 바탕으로 다음 세 가지 섹션을 한국어로 정확히 작성해주세요.

[3-Line Summary]: 회의의 핵심 내용을 딱 3줄로 요약해 주세요.
[To-do List]: 회의에서 결정된 할 일들을 리스트 형식으로 정리해 주세요.
[Detailed Summary]: 주요 주제와 결정 사항을 포함한 상세 요약을 작성해 주세요.

각 섹션은 대괄호 [] 로 시작하는 제목으로 명확히 구분해 주세요.`

// DefaultModels is the ordered candidate list; the first model that returns a
// non-empty response wins.
var DefaultModels = []string{
	"models/gemini-2.0-flash",
	"models/gemini-flash-latest",
}

// DefaultChannels are the channel presets offered in the web UI.
var DefaultChannels = []string{"회의록", "김은아1", "김은아2"}

const DefaultListenAddr = "localhost:8517"

type Config struct {
	RecordingsDir string
	ListenAddr    string
	LogLevel      string
	Prompt        string
	Models        []string
	Channels      []string

	// Secrets, resolved once at load. GeminiAPIKey is required for analysis;
	// a missing SlackBotToken only disables notifications.
	GeminiAPIKey  string
	SlackBotToken string
}

type fileConfig struct {
	RecordingsDir string   `toml:"recordings_dir"`
	ListenAddr    string   `toml:"listen_addr"`
	LogLevel      string   `toml:"log_level"`
	Prompt        string   `toml:"prompt"`
	Models        []string `toml:"models"`
	Channels      []string `toml:"channels"`
}

func Load() (*Config, error) {
	cfg := &Config{
		RecordingsDir: "recordings",
		ListenAddr:    DefaultListenAddr,
		LogLevel:      "info",
		Prompt:        DefaultPrompt,
		Models:        DefaultModels,
		Channels:      DefaultChannels,
	}

	if configPath := configFilePath(); configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err == nil {
			if fc.RecordingsDir != "" {
				cfg.RecordingsDir = expandTilde(fc.RecordingsDir)
			}
			if fc.ListenAddr != "" {
				cfg.ListenAddr = fc.ListenAddr
			}
			if fc.LogLevel != "" {
				cfg.LogLevel = fc.LogLevel
			}
			if fc.Prompt != "" {
				cfg.Prompt = fc.Prompt
			}
			if len(fc.Models) > 0 {
				cfg.Models = fc.Models
			}
			if len(fc.Channels) > 0 {
				cfg.Channels = fc.Channels
			}
		}
	}

	applyEnvOverrides(cfg)

	// Resolve secrets once; components get the values from here, never from
	// the environment directly.
	cfg.GeminiAPIKey = secrets.Resolve(secrets.GeminiAPIKey)
	cfg.SlackBotToken = secrets.Resolve(secrets.SlackBotToken)

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ASSISTANT_RECORDINGS_DIR"); v != "" {
		cfg.RecordingsDir = expandTilde(v)
	}
	if v := os.Getenv("ASSISTANT_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("ASSISTANT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ASSISTANT_MODELS"); v != "" {
		var models []string
		for _, m := range strings.Split(v, ",") {
			if m = strings.TrimSpace(m); m != "" {
				models = append(models, m)
			}
		}
		if len(models) > 0 {
			cfg.Models = models
		}
	}
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "csm17-assistant")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "csm17-assistant")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
