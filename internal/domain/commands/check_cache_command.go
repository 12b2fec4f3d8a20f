package commands

import (
	"context"

	"github.com/l10n-works/transindex/internal/domain/entities"
	infraRepos "github.com/l10n-works/transindex/internal/infrastructure/repositories"
)

// Check is the interface for the single-repository cache check command.
type Check interface {
	Execute(ctx context.Context, settings *entities.Settings, repository string) (bool, error)
}

// CheckCacheCommand probes one repository's translation cache, using the
// exact probe the index pipeline runs per repository.
type CheckCacheCommand struct {
	hostingFactory infraRepos.HostingFactory
}

// NewCheckCacheCommand creates a new CheckCacheCommand with the given factory.
func NewCheckCacheCommand(hostingFactory infraRepos.HostingFactory) *CheckCacheCommand {
	return &CheckCacheCommand{hostingFactory: hostingFactory}
}

// Execute probes the given repository ("owner/name", or a bare name within
// the configured organization) and reports its translation status.
func (it *CheckCacheCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	repository string,
) (bool, error) {
	owner, name, ok := entities.SplitFullName(repository)
	if !ok {
		owner = settings.Organization
		name = repository
	}

	hosting := it.hostingFactory(settings)
	return probeTranslationCache(ctx, hosting, owner, name, settings.CacheDirPath), nil
}
