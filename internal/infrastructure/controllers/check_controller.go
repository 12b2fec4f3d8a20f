package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/l10n-works/transindex/internal/domain/commands"
	"github.com/l10n-works/transindex/internal/domain/entities"
)

// CheckController handles the "check" subcommand.
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check <repository>",
		Short: "Check one repository's translation cache",
		Long: `Probe a single repository for the translation-cache directory on its
default branch and report whether it counts as translated.

The repository may be given as "owner/name" or as a bare name within
the configured organization.`,
	}
}

// Execute probes the repository named by the first argument.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) != 1 {
		return fmt.Errorf("expected exactly one repository argument, got %d", len(args))
	}

	configPath, _ := cmd.Flags().GetString("config")

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	translated, err := it.command.Execute(ctx, settings, args[0])
	if err != nil {
		return err
	}

	if translated {
		logger.Infof("%s: translated (cache directory present)", args[0])
	} else {
		logger.Infof("%s: not translated", args[0])
	}
	return nil
}
