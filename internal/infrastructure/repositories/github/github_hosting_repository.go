package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	gh "github.com/google/go-github/v66/github"

	"github.com/l10n-works/transindex/internal/domain/entities"
	"github.com/l10n-works/transindex/internal/domain/repositories"
)

const directoryContentType = "dir"

// GitHubHostingRepository implements repositories.HostingRepository on the
// GitHub REST API. Every request carries the bearer token, the configured
// User-Agent, and the client's fixed Accept version header. No retry: a
// failed call is reported to the caller as-is.
type GitHubHostingRepository struct {
	client  *gh.Client
	perPage int
}

// NewGitHubHostingRepository creates the GitHub adapter from the run settings.
func NewGitHubHostingRepository(settings *entities.Settings) repositories.HostingRepository {
	client := gh.NewClient(nil).WithAuthToken(settings.Token)
	client.UserAgent = settings.UserAgent
	return &GitHubHostingRepository{
		client:  client,
		perPage: settings.PerPage,
	}
}

// ListOrganizationRepositories fetches one page of the organization
// listing. Pagination is deliberately not followed.
func (p *GitHubHostingRepository) ListOrganizationRepositories(
	ctx context.Context,
	org string,
) ([]entities.RepositorySummary, error) {
	opts := &gh.RepositoryListByOrgOptions{
		ListOptions: gh.ListOptions{PerPage: p.perPage},
	}

	repos, _, err := p.client.Repositories.ListByOrg(ctx, org, opts)
	if err != nil {
		return nil, normalizeError(err, fmt.Sprintf("failed to list repositories of %q", org))
	}

	summaries := make([]entities.RepositorySummary, 0, len(repos))
	for _, r := range repos {
		summaries = append(summaries, entities.RepositorySummary{
			Name:     r.GetName(),
			FullName: r.GetFullName(),
		})
	}

	return summaries, nil
}

func (p *GitHubHostingRepository) GetRepository(
	ctx context.Context,
	owner, name string,
) (*entities.RepositoryRecord, error) {
	repo, _, err := p.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, normalizeError(err, fmt.Sprintf("failed to get repository %s/%s", owner, name))
	}

	return mapRepository(repo), nil
}

func (p *GitHubHostingRepository) GetDefaultBranch(
	ctx context.Context,
	owner, name string,
) (string, error) {
	repo, _, err := p.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return "", normalizeError(err, fmt.Sprintf("failed to get default branch of %s/%s", owner, name))
	}

	return repo.GetDefaultBranch(), nil
}

// DirectoryExists probes the contents endpoint. A directory answers with a
// listing payload; a single entry typed "dir" counts as well.
func (p *GitHubHostingRepository) DirectoryExists(
	ctx context.Context,
	owner, name, path, ref string,
) (bool, error) {
	fileContent, dirContent, _, err := p.client.Repositories.GetContents(
		ctx, owner, name, path,
		&gh.RepositoryContentGetOptions{Ref: ref},
	)
	if err != nil {
		return false, normalizeError(err, fmt.Sprintf("failed to get contents of %s/%s:%s", owner, name, path))
	}

	return isDirectory(fileContent, dirContent), nil
}

func isDirectory(fileContent *gh.RepositoryContent, dirContent []*gh.RepositoryContent) bool {
	if dirContent != nil {
		return true
	}
	return fileContent != nil && fileContent.GetType() == directoryContentType
}

// mapRepository normalizes a raw API repository into the domain record,
// carrying the embedded parent summary when present.
func mapRepository(r *gh.Repository) *entities.RepositoryRecord {
	record := &entities.RepositoryRecord{
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		URL:         r.GetHTMLURL(),
		Description: r.GetDescription(),
		IsFork:      r.GetFork(),
		StarCount:   r.GetStargazersCount(),
		Owner:       r.GetOwner().GetLogin(),
		Language:    r.Language,
		Topics:      r.Topics,
	}

	if r.GetParent() != nil {
		parent := r.GetParent()
		record.Parent = &entities.ParentInfo{
			FullName:    parent.GetFullName(),
			URL:         parent.GetHTMLURL(),
			Owner:       parent.GetOwner().GetLogin(),
			Description: parent.GetDescription(),
			StarCount:   parent.GetStargazersCount(),
			Topics:      parent.Topics,
		}
	}

	return record
}

// normalizeError maps client failures onto the domain error taxonomy.
func normalizeError(err error, operation string) error {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		statusCode := 0
		if ghErr.Response != nil {
			statusCode = ghErr.Response.StatusCode
		}
		return fmt.Errorf("%s: %w", operation, &entities.APIError{
			StatusCode: statusCode,
			Message:    ghErr.Message,
		})
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%s: %w", operation, &entities.ParseError{Err: err})
	}

	return fmt.Errorf("%s: %w", operation, err)
}
