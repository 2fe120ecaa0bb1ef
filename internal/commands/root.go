package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the trackerctl command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trackerctl",
		Short: "Operator tooling for the money tracker backend",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newScheduleCommand())
	rootCmd.AddCommand(newMigrateCommand())

	return rootCmd
}
