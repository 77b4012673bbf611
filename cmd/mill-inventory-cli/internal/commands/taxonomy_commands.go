package commands

import (
	"fmt"

	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/domain/taxonomy"
	"mill_inventory_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// TaxonomyCommandHandler encapsulates logic for inspecting the controlled
// vocabularies via CLI.
type TaxonomyCommandHandler struct {
	logger logger.Logger
}

// NewTaxonomyCommandHandler initializes and returns a TaxonomyCommandHandler instance.
func NewTaxonomyCommandHandler() (*TaxonomyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &TaxonomyCommandHandler{
		logger: loggerInstance,
	}, nil
}

// ListTaxonomiesCmd prints every vocabulary field name.
func (commandHandler *TaxonomyCommandHandler) ListTaxonomiesCmd(_ *cobra.Command, _ []string) {
	for _, field := range taxonomy.Fields() {
		fmt.Println(field)
	}
}

// ShowTaxonomyCmd prints one vocabulary's keys with labels in a locale.
func (commandHandler *TaxonomyCommandHandler) ShowTaxonomyCmd(cmd *cobra.Command, _ []string) {
	field, err := cmd.Flags().GetString("field")
	if err != nil {
		commandHandler.logger.Error("invalid field flag ", err)
		return
	}

	locale, err := cmd.Flags().GetString("locale")
	if err != nil {
		commandHandler.logger.Error("invalid locale flag ", err)
		return
	}
	if !constructions.IsSupportedLocale(locale) {
		locale = constructions.DefaultLocale
	}

	terms := taxonomy.Terms(field)
	if terms == nil {
		commandHandler.logger.Error("unknown taxonomy field ", field)
		return
	}

	for _, term := range terms {
		fmt.Printf("%s\t%s\n", term.Key, term.Labels[locale])
	}
}

// InitTaxonomyCommands registers the taxonomy commands with the root command.
func InitTaxonomyCommands(rootCmd *cobra.Command) error {
	handler, err := NewTaxonomyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create taxonomy command handler %w", err)
	}

	var listTaxonomiesCmd = &cobra.Command{
		Use:   "list-taxonomies",
		Short: "List the controlled vocabulary fields",
		Run:   handler.ListTaxonomiesCmd,
	}
	rootCmd.AddCommand(listTaxonomiesCmd)

	var showTaxonomyCmd = &cobra.Command{
		Use:   "show-taxonomy",
		Short: "Print one vocabulary's keys and labels",
		Run:   handler.ShowTaxonomyCmd,
	}
	showTaxonomyCmd.Flags().StringP("field", "", "", "Vocabulary field name (see list-taxonomies)")
	showTaxonomyCmd.Flags().StringP("locale", "", "pt", "Label locale (pt or en)")
	rootCmd.AddCommand(showTaxonomyCmd)

	return nil
}
