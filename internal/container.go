package internal

import (
	"go.uber.org/dig"

	"github.com/l10n-works/transindex/internal/domain/commands"
	"github.com/l10n-works/transindex/internal/domain/entities"
	"github.com/l10n-works/transindex/internal/infrastructure/controllers"
	"github.com/l10n-works/transindex/internal/infrastructure/repositories"
)

// AppInternal aggregates the application's controllers for CLI wiring.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the application context from the controller slice.
func NewAppInternal(controllerList *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllerList}
}

// GetControllers returns all registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register all layers (bottom-up: infrastructure repos -> domain entities -> domain commands -> controllers)
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	// Register the main app internal
	if err := container.Provide(NewAppInternal); err != nil {
		return err
	}

	return nil
}
