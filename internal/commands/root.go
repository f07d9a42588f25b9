package commands

import (
	"github.com/spf13/cobra"

	"github.com/splitledger/splitledger/internal/buildinfo"
	"github.com/splitledger/splitledger/internal/logging"
)

// options holds flags shared by every subcommand.
type options struct {
	repo    string
	verbose bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "splitledger",
		Short:   "Shared expense ledger for trips and groups",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.repo, "repo", ".", "journey directory")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(opts),
		newPersonCommand(opts),
		newExpenseCommand(opts),
		newBalancesCommand(opts),
		newSettleCommand(opts),
		newParseCommand(opts),
		newImportCommand(opts),
	)

	return rootCmd
}
