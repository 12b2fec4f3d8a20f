package repositories

import (
	"go.uber.org/dig"

	"github.com/l10n-works/transindex/internal/domain/entities"
	domainRepos "github.com/l10n-works/transindex/internal/domain/repositories"
	documentRepo "github.com/l10n-works/transindex/internal/infrastructure/repositories/document"
	githubRepo "github.com/l10n-works/transindex/internal/infrastructure/repositories/github"
)

// HostingFactory builds the hosting adapter once the run settings exist.
// Settings are constructed at command time (they depend on CLI flags), so
// the container carries factories rather than ready adapters.
type HostingFactory func(settings *entities.Settings) domainRepos.HostingRepository

// DocumentFactory builds the document adapter once the run settings exist.
type DocumentFactory func(settings *entities.Settings) domainRepos.DocumentRepository

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() HostingFactory {
		return githubRepo.NewGitHubHostingRepository
	}); err != nil {
		return err
	}

	if err := container.Provide(func() DocumentFactory {
		return documentRepo.NewMarkdownDocumentRepository
	}); err != nil {
		return err
	}

	return nil
}
