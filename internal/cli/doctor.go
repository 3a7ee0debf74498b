package cli

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			ok := true

			if deps.Config.GeminiAPIKey != "" {
				f.SetupCheck("Gemini API key", true, "configured")
			} else {
				f.SetupCheck("Gemini API key", false, "not set. Run 'assistant auth set gemini <key>' or add GEMINI_API_KEY to .env")
				ok = false
			}

			if deps.Config.SlackBotToken != "" {
				f.SetupCheck("Slack bot token", true, "configured")
			} else {
				f.SetupCheck("Slack bot token", false, "not set. Slack notifications will be unavailable")
			}

			if _, err := exec.LookPath("ffmpeg"); err != nil {
				f.SetupCheck("ffmpeg", false, "not found (only needed for 'assistant record')")
			} else {
				f.SetupCheck("ffmpeg", true, "installed")
			}

			f.SetupCheck("Recordings directory", true, deps.Config.RecordingsDir)
			f.SetupCheck("Candidate models", true, deps.Config.Models[0]+" (+fallbacks)")

			if ok {
				f.Success("\nAll prerequisites met. Ready to analyze!")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}
