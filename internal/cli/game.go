package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVoteCmd() *cobra.Command {
	var player, mode, date string

	cmd := &cobra.Command{
		Use:   "vote",
		Short: "Vote for today's game mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"player_id": player,
				"mode":      mode,
			}
			if date != "" {
				req["date"] = date
			}
			var result VoteResult

			if err := client.Post("/api/v1/votes", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&player, "player", "", "Player ID (required)")
	cmd.Flags().StringVar(&mode, "mode", "", "Game mode: manual, auto (required)")
	cmd.Flags().StringVar(&date, "date", "", "Game date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("mode")

	return cmd
}

func newChoiceCmd() *cobra.Command {
	var game, player, move string

	cmd := &cobra.Command{
		Use:   "choice",
		Short: "Submit a pending choice for an automatic game",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"player_id": player,
				"move":      move,
			}
			var result ChoiceResult

			path := fmt.Sprintf("/api/v1/games/%s/choices", game)
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&game, "game", "", "Game ID (required)")
	cmd.Flags().StringVar(&player, "player", "", "Player ID (required)")
	cmd.Flags().StringVar(&move, "move", "", "Move: rock, paper, scissors (required)")
	_ = cmd.MarkFlagRequired("game")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("move")

	return cmd
}

func newSettleCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Settle the day's automatic game from collected choices",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{}
			if date != "" {
				req["date"] = date
			}
			var result SettlementResult

			if err := client.Post("/api/v1/settle", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Game date (YYYY-MM-DD, default today)")

	return cmd
}
