package commands

import (
	"github.com/spf13/cobra"

	"nofs/internal/tui"
)

func newPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play interactively in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}
}
