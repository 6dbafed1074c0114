// Package commands wires the nofs CLI: an API server, a headless
// simulator, and an interactive terminal player over the same engine.
package commands

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:           "nofs",
		Short:         "No F's Given: a resource-management card game about getting through the day",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(),
		newSimCommand(),
		newPlayCommand(),
	)

	return root.ExecuteContext(ctx)
}
