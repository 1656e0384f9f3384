package root

import (
	"context"

	"github.com/spf13/cobra"

	"campuslife/internal/tui"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, cfg, err := openBundle(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("delay") {
				cfg.SettleDelay, _ = cmd.Flags().GetDuration("delay")
			}
			return tui.Run(context.Background(), b, cfg.SettleDelay, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().Duration("delay", 0, "pause after each answer (default $SETTLE_DELAY)")
	return cmd
}
