package repositories

import (
	"context"

	"github.com/l10n-works/transindex/internal/domain/entities"
)

// HostingRepository abstracts the source-control hosting API. Failures are
// reported with the domain error taxonomy: non-success statuses surface as
// *entities.APIError (matching entities.ErrNotFound on 404) and undecodable
// bodies as *entities.ParseError.
type HostingRepository interface {
	// ListOrganizationRepositories returns a single page of the
	// organization's repositories; entries beyond the page are omitted.
	ListOrganizationRepositories(ctx context.Context, org string) ([]entities.RepositorySummary, error)

	// GetRepository fetches one repository's full detail, including the
	// embedded parent summary when the repository is a fork.
	GetRepository(ctx context.Context, owner, name string) (*entities.RepositoryRecord, error)

	// GetDefaultBranch returns the repository's default branch name.
	GetDefaultBranch(ctx context.Context, owner, name string) (string, error)

	// DirectoryExists reports whether path denotes a directory at the given
	// branch reference.
	DirectoryExists(ctx context.Context, owner, name, path, ref string) (bool, error)
}
