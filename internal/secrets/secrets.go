// Package secrets resolves API credentials once at process start. Resolution
// order follows the hosted deployment: the platform secret store (system
// keyring) first, then a local .env file / process environment. Components
// never read secrets ad hoc; they receive resolved values through the config.
package secrets

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/zalando/go-keyring"
)

// keyringService is the service name used in the system keyring.
const keyringService = "csm17-meeting-assistant"

// Secret names shared by the keyring, .env file and environment.
const (
	GeminiAPIKey  = "GEMINI_API_KEY"
	SlackBotToken = "SLACK_BOT_TOKEN"
)

var loadEnvOnce sync.Once

// Resolve looks a secret up by name: keyring first, then the environment
// (after loading a local .env, if present). Returns "" when the secret is
// not configured anywhere; whether that is fatal is the caller's call.
func Resolve(name string) string {
	if v, err := keyring.Get(keyringService, name); err == nil && v != "" {
		return v
	}

	loadEnvOnce.Do(func() {
		// A missing .env is fine; the process environment still applies.
		_ = godotenv.Load()
	})
	return os.Getenv(name)
}

// Set stores a secret in the system keyring.
func Set(name, value string) error {
	return keyring.Set(keyringService, name, value)
}

// Clear removes a secret from the system keyring. Clearing a secret that was
// never stored is not an error.
func Clear(name string) error {
	err := keyring.Delete(keyringService, name)
	if err == keyring.ErrNotFound {
		return nil
	}
	return err
}
