package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eunah0807-bit/csm17-meeting-assistant/config"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/app"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
	Logger zerolog.Logger
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "assistant",
		Short: "Record meetings, analyze them with Gemini, and post notes to Slack",
		Long:  "CSM17 meeting assistant: record or upload meeting audio, volume-check it, generate a three-section Korean summary with Gemini, and send the notes to a Slack channel.",
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewServeCmd(deps))
	rootCmd.AddCommand(NewAnalyzeCmd(deps))
	rootCmd.AddCommand(NewRecordCmd(deps))
	rootCmd.AddCommand(NewListCmd(deps))
	rootCmd.AddCommand(NewAuthCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}

// requireGeminiKey halts commands that reach the model when no API key was
// resolved from the keyring, .env or the environment. auth/doctor/list still
// run so the user can fix the setup.
func requireGeminiKey(deps *Dependencies) error {
	if deps.Config.GeminiAPIKey == "" {
		return fmt.Errorf("API 키가 설정되지 않았습니다. 'assistant auth set gemini <key>' 를 실행하거나 .env 를 확인하세요")
	}
	return nil
}
