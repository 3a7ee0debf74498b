package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/audio"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/output"
)

func NewListCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved recordings",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			names, err := audio.ListRecordings(deps.Config.RecordingsDir)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				formatter.Info("No recordings found")
				return nil
			}

			formatter.RecordingListHeader()
			for _, name := range names {
				formatter.RecordingListItem(name)
			}
			return nil
		},
	}

	return cmd
}
