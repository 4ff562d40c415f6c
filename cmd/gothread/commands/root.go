package commands

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// logger carries the CLI's diagnostic output; demo output itself goes through
// the shared gothread.Stdout sink.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "gothread",
})

const longDesc = `Demonstrations of the gothread thread-handle runtime.

Each subcommand is a self-contained program exercising one lifecycle
primitive: creation from different callable forms, argument passing,
detachment, ownership transfer, scoped join-on-close handles, synchronized
output, and cooperative yielding. All demo output is line-oriented text on
standard output, serialized through the shared sink.`

// NewRootCmd builds the demo command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "gothread",
		Short:         "Demonstrations of the gothread thread-handle runtime",
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newCreationCmd(),
		newIdentifyCmd(),
		newArgsCmd(),
		newReturnsCmd(),
		newDaemonCmd(),
		newScopedCmd(),
		newMoveCmd(),
		newYieldCmd(),
		newRaceCmd(),
	)

	return cmd
}
