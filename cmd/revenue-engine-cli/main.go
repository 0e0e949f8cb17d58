// Package main is the entry point for the revenue-engine-cli application.
// It initializes the root command and registers the automation sub-commands
// (lead intake, daily briefing, KPI rollup), then executes the CLI.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/ayais12210-hub/revenue-engine/cmd/revenue-engine-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "revenue-engine-cli",
		Short: "Revenue engine automation CLI tool",
		Long: `revenue-engine-cli runs the revenue engine automations from the command line.
Supports running lead intake for a single lead, generating the daily briefing,
and recomputing the daily KPI rollup.

Configuration is read from the file named by CONFIG_PATH (or --config), with
REVENUE_ENGINE_* environment variables taking precedence.`,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the YAML config file (defaults to CONFIG_PATH)")

	if err := commands.InitAutomationCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
