package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/audio"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/output"
)

func NewRecordCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a meeting from the microphone",
		Long:  "Record mono 16kHz WAV from the default input device into the recordings directory. Stop with Ctrl+C, then run 'assistant analyze' on the saved file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			if err := deps.App.Recorder.CheckFFmpeg(); err != nil {
				return err
			}

			if err := os.MkdirAll(deps.Config.RecordingsDir, 0o755); err != nil {
				return fmt.Errorf("creating recordings directory: %w", err)
			}

			name := fmt.Sprintf("meeting_%s.wav", time.Now().Format("20060102_150405"))
			path := filepath.Join(deps.Config.RecordingsDir, name)

			formatter.Info("녹음 중... Ctrl+C 로 중단하세요.")
			// Blocks until ffmpeg exits (Ctrl+C reaches the whole group).
			_ = deps.App.Recorder.RecordMic(path)

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("recording was not written: %w", err)
			}

			rms := audio.Volume(data)
			formatter.VolumeChecked(rms, audio.Classify(rms))
			formatter.RecordingSaved(path)
			formatter.Info(fmt.Sprintf("분석하려면: assistant analyze %s", path))
			return nil
		},
	}

	return cmd
}
