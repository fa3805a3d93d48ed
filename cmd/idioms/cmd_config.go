package main

import (
	"fmt"
	"os"

	"idioms/internal/config"
	"idioms/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var forceConfig bool

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the idioms config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config to a file",
	Long: `Writes the built-in defaults so they can be edited. The format follows
the extension: .toml for TOML, anything else for YAML.

Example:
  idioms config init idioms.yaml
  idioms config init --force idioms.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: writeDefaultConfig,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceConfig, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func writeDefaultConfig(cmd *cobra.Command, args []string) error {
	path := "idioms.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !forceConfig {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	loggers.Get(logging.CategoryConfig).Info("default config written", zap.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
