package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/guard/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective check configuration",
		Long: `Print the effective check configuration as YAML.

Defaults are layered with the optional --file and the GUARD_FULL_CHECK and
GUARD_LANGUAGE environment variables, the same way config.Load does at
service startup.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
	cmd.Flags().StringP("file", "f", "", "configuration file (yaml, json or toml)")
	return cmd
}

func runConfig(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("%w: failed to get file flag: %v", ErrUsage, err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := config.Encode(cmd.OutOrStdout(), cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return nil
}
