package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/output"
	"github.com/eunah0807-bit/csm17-meeting-assistant/internal/secrets"
)

var secretNames = map[string]string{
	"gemini": secrets.GeminiAPIKey,
	"slack":  secrets.SlackBotToken,
}

func NewAuthCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage API credentials in the system keyring",
		Long:  "Store or clear the Gemini API key and Slack bot token in the platform secret store. Secrets stored here take precedence over .env and the environment.",
	}

	cmd.AddCommand(newAuthSetCmd())
	cmd.AddCommand(newAuthClearCmd())

	return cmd
}

func newAuthSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <gemini|slack> <value>",
		Short: "Store a credential in the keyring",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			name, ok := secretNames[args[0]]
			if !ok {
				return fmt.Errorf("unknown credential %q (expected gemini or slack)", args[0])
			}
			if err := secrets.Set(name, args[1]); err != nil {
				return fmt.Errorf("storing %s: %w", name, err)
			}
			formatter.Success(name + " stored in the system keyring")
			return nil
		},
	}
}

func newAuthClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <gemini|slack>",
		Short: "Remove a credential from the keyring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			name, ok := secretNames[args[0]]
			if !ok {
				return fmt.Errorf("unknown credential %q (expected gemini or slack)", args[0])
			}
			if err := secrets.Clear(name); err != nil {
				return fmt.Errorf("clearing %s: %w", name, err)
			}
			formatter.Success(name + " removed from the system keyring")
			return nil
		},
	}
}
