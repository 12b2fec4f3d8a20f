package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewUpdateIndexCommand); err != nil {
		return err
	}
	if err := container.Provide(NewCheckCacheCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *UpdateIndexCommand) Update {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *CheckCacheCommand) Check {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
