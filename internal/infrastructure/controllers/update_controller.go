package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/l10n-works/transindex/internal/domain/commands"
	"github.com/l10n-works/transindex/internal/domain/entities"
)

// UpdateController handles the "update" subcommand, which is also the
// root command's default behavior.
type UpdateController struct {
	command commands.Update
}

// NewUpdateController creates a new UpdateController.
func NewUpdateController(command commands.Update) *UpdateController {
	return &UpdateController{command: command}
}

// GetBind returns the Cobra command metadata for the update controller.
func (it *UpdateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "update",
		Short: "Regenerate the translation index document",
		Long: `Regenerate the translation index table.

Lists the organization's repositories, enriches fork metadata with
freshly fetched parent-repository details, probes each repository for
the translation-cache directory on its default branch, and rewrites
the demarcated table section of the index document.`,
	}
}

// Execute runs the full index update pipeline.
func (it *UpdateController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	configPath, _ := cmd.Flags().GetString("config")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	orgOverride, _ := cmd.Flags().GetString("org")

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Info("Starting translation index update...")

	return it.command.Execute(ctx, settings, commands.UpdateOptions{
		DryRun:      dryRun,
		Verbose:     verbose,
		OrgOverride: orgOverride,
	})
}
