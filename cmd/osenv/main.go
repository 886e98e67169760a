package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sonnet007/AppManager/internal/config"
	"github.com/sonnet007/AppManager/internal/environ"
	"github.com/sonnet007/AppManager/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "osenv",
	Short: "Inspect the resolved storage layout",
	Long: `osenv prints the device storage layout as resolved by this application:
partition roots derived from their environment overrides, and per-user
external storage composed from the discovered volume roots.

No path printed here is checked for existence; this is the layout the
privileged file layer would operate on, not the mounted state.`,
}

func main() {
	cfg := config.LoadOrDefault()

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		logger = logging.NewDefault()
	}
	defer func() { _ = logger.Sync() }()

	environ.SetDiagnostics(logger)
	environ.SetUserRequired(cfg.User.Required)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
