package cli

import (
	"github.com/spf13/cobra"
)

func newManualCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manual",
		Short: "Drive a manual-mode match round by round",
	}

	cmd.AddCommand(newManualStartCmd())
	cmd.AddCommand(newManualSideCmd("side-a", "Record the first player's move"))
	cmd.AddCommand(newManualSideCmd("side-b", "Record the second player's move"))

	return cmd
}

func newManualStartCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Open the next round of the day's manual game",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{}
			if date != "" {
				req["date"] = date
			}
			var result ManualStartResult

			if err := client.Post("/api/v1/manual/start", req, &result); err != nil {
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

func newManualSideCmd(side, short string) *cobra.Command {
	var move string

	cmd := &cobra.Command{
		Use:   side,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"move": move}
			var result ManualMoveResult

			if err := client.Post("/api/v1/manual/"+side, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&move, "move", "", "Move: rock, paper, scissors (required)")
	_ = cmd.MarkFlagRequired("move")

	return cmd
}
