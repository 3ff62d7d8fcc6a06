package cli

import (
	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerRegisterCmd())

	return cmd
}

func newPlayerRegisterCmd() *cobra.Command {
	var id, name, chatID string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"player_id":    id,
				"display_name": name,
				"chat_id":      chatID,
			}
			var result RegisterResult

			if err := client.Post("/api/v1/players/register", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Player ID (required)")
	cmd.Flags().StringVar(&name, "name", "", "Display name (required)")
	cmd.Flags().StringVar(&chatID, "chat-id", "", "Chat ID for result notifications")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
