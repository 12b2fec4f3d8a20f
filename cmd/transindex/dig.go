package main

import (
	"go.uber.org/dig"

	"github.com/l10n-works/transindex/internal"
	"github.com/l10n-works/transindex/internal/infrastructure/controllers"
)

func injectAppContext() *internal.AppInternal {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectUpdateController() *controllers.UpdateController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var updateController *controllers.UpdateController
	if err := container.Invoke(func(uc *controllers.UpdateController) {
		updateController = uc
	}); err != nil {
		panic(err)
	}

	return updateController
}
