package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/audio"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/output"
)

func NewAnalyzeCmd(deps *Dependencies) *cobra.Command {
	var (
		notifyChannel string
		attendees     string
		meetingCtx    string
		force         bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <recording.wav>",
		Short: "Analyze a recorded meeting",
		Long:  "Volume-check a WAV recording, generate the three-section summary, and optionally send it to Slack with --notify.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireGeminiKey(deps); err != nil {
				return err
			}

			formatter := output.NewFormatter(os.Stdout)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading recording: %w", err)
			}

			rms := audio.Volume(data)
			level := audio.Classify(rms)
			formatter.VolumeChecked(rms, level)
			if level == audio.LevelSilent && !force {
				return fmt.Errorf("무음 상태라 분석이 불가능합니다")
			}

			savedPath, err := audio.SaveRecording(deps.Config.RecordingsDir, data, time.Now())
			if err != nil {
				return err
			}
			deps.App.Session.SetRecording(savedPath, rms)
			formatter.RecordingSaved(savedPath)

			formatter.Analyzing()
			_, result, err := deps.App.Analyze.Execute(cmd.Context(), data)
			if err != nil {
				return err
			}
			deps.App.Session.SetResult(result)
			formatter.AnalysisResult(result)

			if notifyChannel == "" {
				return nil
			}

			outcome, err := deps.App.Notify.Execute(cmd.Context(), notifyChannel, attendees, meetingCtx, result)
			if err != nil {
				return err
			}
			if outcome.OK {
				formatter.SlackSent(outcome.Channel)
			} else {
				formatter.SlackFailed(outcome.Error, outcome.Hint)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&notifyChannel, "notify", "", "Slack channel to send the notes to")
	cmd.Flags().StringVar(&attendees, "attendees", "", "Attendee list for the notification")
	cmd.Flags().StringVar(&meetingCtx, "context", "", "Meeting purpose/background for the notification")
	cmd.Flags().BoolVar(&force, "force", false, "Analyze even if the recording is silent")

	return cmd
}
