// Package main is the entry point for the mill-inventory-cli application.
// It initializes the root command and registers the inventory and taxonomy
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "mill_inventory_service/cmd/mill-inventory-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "mill-inventory-cli",
		Short: "Heritage inventory management CLI tool",
		Long: `mill-inventory-cli is a command-line tool for managing the mill inventory.
Supports batch import of records, dashboard-style listing and filtering,
review workflow transitions and controlled vocabulary inspection.

The database connection is read from the same configuration file as the
REST API. Set CONFIG_PATH to point at it (default: configs/rest-app.yaml).`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitInventoryCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize inventory commands: %w", err)
	}

	if err := commands.InitTaxonomyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize taxonomy commands: %w", err)
	}

	return nil
}
