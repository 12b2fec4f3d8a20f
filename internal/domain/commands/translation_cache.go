package commands

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/l10n-works/transindex/internal/domain/entities"
	"github.com/l10n-works/transindex/internal/domain/repositories"
)

// probeTranslationCache reports whether the translation-cache directory
// exists on the repository's default branch. A missing repository, branch,
// or path is a normal false; any other failure is logged and degrades to
// false as well. Probing never aborts a run.
func probeTranslationCache(
	ctx context.Context,
	hosting repositories.HostingRepository,
	owner, name, cachePath string,
) bool {
	branch, err := hosting.GetDefaultBranch(ctx, owner, name)
	if err != nil {
		if !errors.Is(err, entities.ErrNotFound) {
			logger.Warnf("Translation-cache probe failed for %s/%s: %v", owner, name, err)
		}
		return false
	}

	exists, err := hosting.DirectoryExists(ctx, owner, name, cachePath, branch)
	if err != nil {
		if !errors.Is(err, entities.ErrNotFound) {
			logger.Warnf("Translation-cache probe failed for %s/%s: %v", owner, name, err)
		}
		return false
	}

	return exists
}
