package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mill_inventory_service/internal/app"
	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/infrastructure/persistence"
	"mill_inventory_service/internal/infrastructure/persistence/models"
	"mill_inventory_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// InventoryCommandHandler encapsulates logic for managing inventory records via CLI.
type InventoryCommandHandler struct {
	adminService constructions.AdminService
	logger       logger.Logger
}

// NewInventoryCommandHandler initializes and returns an InventoryCommandHandler
// with a database-backed admin service.
func NewInventoryCommandHandler() (*InventoryCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	restConfig, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(restConfig.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(
		&models.ConstructionModel{},
		&models.TranslationModel{},
		&models.MillDataModel{},
		&models.WaterLineModel{},
		&models.PocaModel{},
		&models.ImageModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	constructionRepo, err := persistence.NewGormConstructionRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create construction repository: %w", err)
	}

	// The CLI talks straight to the database; image blobs are managed
	// through the REST API, so no store is wired here.
	adminService, err := app.NewConstructionService(constructionRepo, nil, nil, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create construction service: %w", err)
	}

	return &InventoryCommandHandler{
		adminService: adminService,
		logger:       loggerInstance,
	}, nil
}

// ImportConstructionsCmd reads a JSON file holding an array of records and
// stores each as a new draft.
func (commandHandler *InventoryCommandHandler) ImportConstructionsCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var records []*constructions.Record
	if err := json.Unmarshal(data, &records); err != nil {
		commandHandler.logger.Error("failed to parse input file ", err)
		return
	}

	imported := 0
	for _, record := range records {
		created, err := commandHandler.adminService.Create(cmd.Context(), record)
		if err != nil {
			commandHandler.logger.Error("failed to import record ", err)
			continue
		}
		commandHandler.logger.Info("Imported construction ", created.Construction.Slug, " with id ", created.Construction.ID)
		imported++
	}

	commandHandler.logger.Info("Imported ", imported, " of ", len(records), " records")
}

// ListConstructionsCmd prints records matching the given filters as JSON.
func (commandHandler *InventoryCommandHandler) ListConstructionsCmd(cmd *cobra.Command, _ []string) {
	query := constructions.NewConstructionQuery()

	if status, err := cmd.Flags().GetString("status"); err == nil && len(status) > 0 {
		query.Status = status
	}
	if kind, err := cmd.Flags().GetString("kind"); err == nil && len(kind) > 0 {
		query.Kind = kind
	}
	if municipality, err := cmd.Flags().GetString("municipality"); err == nil && len(municipality) > 0 {
		query.Municipality = municipality
	}
	if limit, err := cmd.Flags().GetInt("limit"); err == nil && limit > 0 {
		query.Limit = limit
	}

	if err := query.Validate(); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	records, err := commandHandler.adminService.List(cmd.Context(), query)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	output, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	fmt.Println(string(output))
}

// GetConstructionCmd prints one record as JSON.
func (commandHandler *InventoryCommandHandler) GetConstructionCmd(cmd *cobra.Command, _ []string) {
	id, err := cmd.Flags().GetString("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	record, err := commandHandler.adminService.GetByID(cmd.Context(), id)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	output, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	fmt.Println(string(output))
}

// TransitionConstructionCmd moves a record through the review workflow.
func (commandHandler *InventoryCommandHandler) TransitionConstructionCmd(cmd *cobra.Command, _ []string) {
	id, err := cmd.Flags().GetString("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	statusValue, err := cmd.Flags().GetString("status")
	if err != nil {
		commandHandler.logger.Error("invalid status flag ", err)
		return
	}

	target, err := constructions.ParseStatus(statusValue)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	record, err := commandHandler.adminService.Transition(cmd.Context(), id, target)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Construction ", record.Construction.Slug, " is now ", record.Construction.Status)
}

// DeleteConstructionCmd removes a record with its translations and specialization.
func (commandHandler *InventoryCommandHandler) DeleteConstructionCmd(cmd *cobra.Command, _ []string) {
	id, err := cmd.Flags().GetString("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	if err := commandHandler.adminService.DeleteByID(cmd.Context(), id); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Deleted construction with id ", id)
}

// InitInventoryCommands registers the inventory commands with the root command.
func InitInventoryCommands(rootCmd *cobra.Command) error {
	handler, err := NewInventoryCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create inventory command handler %w", err)
	}

	var importConstructionsCmd = &cobra.Command{
		Use:   "import-constructions",
		Short: "Import a JSON batch of records as drafts",
		Run:   handler.ImportConstructionsCmd,
	}
	importConstructionsCmd.Flags().StringP("input-file", "", "", "Path to a JSON file holding an array of records")
	rootCmd.AddCommand(importConstructionsCmd)

	var listConstructionsCmd = &cobra.Command{
		Use:   "list-constructions",
		Short: "List records matching the given filters",
		Run:   handler.ListConstructionsCmd,
	}
	listConstructionsCmd.Flags().StringP("status", "", "", "Filter by workflow status (draft, review, published)")
	listConstructionsCmd.Flags().StringP("kind", "", "", "Filter by kind (mill, water_line, poca)")
	listConstructionsCmd.Flags().StringP("municipality", "", "", "Filter by municipality")
	listConstructionsCmd.Flags().IntP("limit", "", 100, "Maximum number of records to return")
	rootCmd.AddCommand(listConstructionsCmd)

	var getConstructionCmd = &cobra.Command{
		Use:   "get-construction",
		Short: "Print one record as JSON",
		Run:   handler.GetConstructionCmd,
	}
	getConstructionCmd.Flags().StringP("id", "", "", "Construction id")
	rootCmd.AddCommand(getConstructionCmd)

	var transitionConstructionCmd = &cobra.Command{
		Use:   "transition-construction",
		Short: "Move a record through the review workflow",
		Run:   handler.TransitionConstructionCmd,
	}
	transitionConstructionCmd.Flags().StringP("id", "", "", "Construction id")
	transitionConstructionCmd.Flags().StringP("status", "", "", "Target status (draft, review, published)")
	rootCmd.AddCommand(transitionConstructionCmd)

	var deleteConstructionCmd = &cobra.Command{
		Use:   "delete-construction",
		Short: "Delete a record with its translations and specialization",
		Run:   handler.DeleteConstructionCmd,
	}
	deleteConstructionCmd.Flags().StringP("id", "", "", "Construction id")
	rootCmd.AddCommand(deleteConstructionCmd)

	return nil
}
