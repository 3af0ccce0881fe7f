package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/traversalgroup/pkg/buildinfo"
)

// Execute runs the traversalgroup CLI and returns an error if any command
// fails. The given context cancels long-running commands such as run.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "traversalgroup",
		Short:        "traversalgroup studies the groups generated by graph traversals",
		Long:         `traversalgroup computes the permutation groups generated by breadth-first and depth-first traversals of graphs, encodes the objects involved as integers, and runs sampling campaigns over random connected graphs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newClosureCmd())
	root.AddCommand(newCyclicCmd())
	root.AddCommand(newRunCmd())

	return root.ExecuteContext(ctx)
}
