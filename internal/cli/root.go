package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the guardctl command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "guardctl",
		Short: "Inspect the guard violation taxonomy and check configuration",
		Long: `Inspect the guard violation taxonomy and check configuration.

Use this CLI to list violation kinds with their classes and default messages,
and to print the configuration a service would run with.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newKindsCmd(), newConfigCmd())
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
