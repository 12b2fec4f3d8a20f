package commands

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/l10n-works/transindex/internal/domain/entities"
	"github.com/l10n-works/transindex/internal/domain/repositories"
	infraRepos "github.com/l10n-works/transindex/internal/infrastructure/repositories"
)

// Update is the interface for the index update command.
type Update interface {
	Execute(ctx context.Context, settings *entities.Settings, opts UpdateOptions) error
}

// UpdateOptions holds runtime options for a single run.
type UpdateOptions struct {
	DryRun      bool
	Verbose     bool
	OrgOverride string // If set, index this organization instead of the configured one
}

// UpdateIndexCommand regenerates the translation index: list the
// organization's repositories, resolve per-repository detail, probe each
// translation cache, then render and splice the table into the document.
type UpdateIndexCommand struct {
	hostingFactory  infraRepos.HostingFactory
	documentFactory infraRepos.DocumentFactory
}

// NewUpdateIndexCommand creates a new UpdateIndexCommand with the given factories.
func NewUpdateIndexCommand(
	hostingFactory infraRepos.HostingFactory,
	documentFactory infraRepos.DocumentFactory,
) *UpdateIndexCommand {
	return &UpdateIndexCommand{
		hostingFactory:  hostingFactory,
		documentFactory: documentFactory,
	}
}

// Execute runs the full pipeline using the provided configuration.
func (it *UpdateIndexCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts UpdateOptions,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	org := settings.Organization
	if opts.OrgOverride != "" {
		org = opts.OrgOverride
	}

	hosting := it.hostingFactory(settings)

	logger.Infof("Listing repositories of %q...", org)
	summaries, err := hosting.ListOrganizationRepositories(ctx, org)
	if err != nil {
		return fmt.Errorf("failed to list organization repositories: %w", err)
	}
	logger.Infof("Found %d repositories in %q", len(summaries), org)

	records, err := it.resolveAllDetails(ctx, hosting, org, summaries)
	if err != nil {
		return err
	}

	// Probes run strictly one at a time, in listing order, to bound the
	// number of concurrent API connections.
	for _, record := range records {
		record.IsTranslated = probeTranslationCache(
			ctx, hosting, org, record.Name, settings.CacheDirPath,
		)
		logger.Debugf("Probed %s: translated=%t", record.FullName, record.IsTranslated)
	}

	entries := entities.SelectIndexEntries(records, settings.ExcludedRepositories)
	body := entities.RenderIndexTable(entries)

	if opts.DryRun {
		fmt.Fprintln(os.Stdout, entities.IndexTableHeader()+"\n"+body)
		logger.Infof("Dry run: %d entries rendered, document untouched", len(entries))
		return nil
	}

	document := it.documentFactory(settings)

	content, readErr := document.Read()
	if readErr != nil {
		return fmt.Errorf("failed to read index document: %w", readErr)
	}

	updated := entities.UpsertIndexSection(content, body)
	if writeErr := document.Write(updated); writeErr != nil {
		return fmt.Errorf("failed to write index document: %w", writeErr)
	}

	logger.Infof("Index updated with %d entries", len(entries))
	return nil
}

// resolveAllDetails fetches every repository's detail concurrently and
// joins the results. Any single failure fails the whole join.
func (it *UpdateIndexCommand) resolveAllDetails(
	ctx context.Context,
	hosting repositories.HostingRepository,
	org string,
	summaries []entities.RepositorySummary,
) ([]*entities.RepositoryRecord, error) {
	records := make([]*entities.RepositoryRecord, len(summaries))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, summary := range summaries {
		group.Go(func() error {
			record, err := resolveDetails(groupCtx, hosting, org, summary.Name)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("failed to resolve repository details: %w", err)
	}

	return records, nil
}

// resolveDetails fetches one repository and, for forks, attempts to
// replace the embedded parent summary with a freshly fetched parent
// record. A failing parent fetch is logged and degrades to the summary.
func resolveDetails(
	ctx context.Context,
	hosting repositories.HostingRepository,
	owner, name string,
) (*entities.RepositoryRecord, error) {
	record, err := hosting.GetRepository(ctx, owner, name)
	if err != nil {
		return nil, err
	}

	if record.IsFork && record.Parent != nil {
		parentOwner, parentName, ok := entities.SplitFullName(record.Parent.FullName)
		if ok {
			parent, parentErr := hosting.GetRepository(ctx, parentOwner, parentName)
			if parentErr != nil {
				logger.Warnf(
					"Failed to fetch parent %q of %q, using embedded summary: %v",
					record.Parent.FullName, record.FullName, parentErr,
				)
			} else {
				record.Parent = parent.AsParentInfo()
			}
		}
	}

	return record, nil
}
