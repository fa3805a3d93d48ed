package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"idioms/internal/config"
	"idioms/internal/demo"
	"idioms/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	// Loaded in PersistentPreRunE
	cfg     *config.Config
	loggers *logging.Loggers
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "idioms",
	Short: "Small demos of value semantics and iteration idioms",
	Long: `idioms runs short teaching demos: copying, moving and cloning values,
iterating fixed and growable byte sequences, walking text by character,
and rendering any known-length sequence generically.

Run without arguments to run every demo in order, or name one demo as a
subcommand.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		loggers, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		loggers.Get(logging.CategoryCLI).Debug("command starting",
			zap.String("command", cmd.CommandPath()),
			zap.String("config", cfgPath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = loggers.Sync()
	},
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScenarios(cmd)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Config file (.yaml or .toml; default: built-in values)")

	// One subcommand per scenario
	for _, s := range demo.Builtin() {
		rootCmd.AddCommand(scenarioCmd(s))
	}

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// scenarioCmd exposes one scenario as a subcommand.
func scenarioCmd(s demo.Scenario) *cobra.Command {
	return &cobra.Command{
		Use:   s.Name,
		Short: "Run the " + s.Title + " demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd, s.Name)
		},
	}
}

// runScenarios runs the named scenarios, or all of them, to stdout.
func runScenarios(cmd *cobra.Command, names ...string) error {
	r := demo.NewRunner(cfg, demo.WithLoggers(loggers))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return r.Run(ctx, cmd.OutOrStdout(), names...)
}
