//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"sync"

	"github.com/l10n-works/transindex/internal/domain/entities"
	"github.com/l10n-works/transindex/internal/domain/repositories"
)

// SpyHostingRepository implements repositories.HostingRepository as a
// configurable spy. Detail fetches are issued from concurrent goroutines,
// so all mutable spy state is guarded by a mutex.
type SpyHostingRepository struct {
	mu sync.Mutex

	// --- ListOrganizationRepositories ---
	Summaries  []entities.RepositorySummary
	ListErr    error
	ListedOrgs []string

	// --- GetRepository, keyed by "owner/name" ---
	Records    map[string]*entities.RepositoryRecord
	RecordErrs map[string]error
	GetCalls   []string

	// --- GetDefaultBranch, keyed by "owner/name" ---
	DefaultBranches map[string]string
	BranchErrs      map[string]error

	// --- DirectoryExists, keyed by "owner/name@ref:path" ---
	Directories map[string]bool
	DirErrs     map[string]error
	DirCalls    []string
}

var _ repositories.HostingRepository = (*SpyHostingRepository)(nil)

func (p *SpyHostingRepository) ListOrganizationRepositories(
	_ context.Context, org string,
) ([]entities.RepositorySummary, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ListedOrgs = append(p.ListedOrgs, org)
	return p.Summaries, p.ListErr
}

func (p *SpyHostingRepository) GetRepository(
	_ context.Context, owner, name string,
) (*entities.RepositoryRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := owner + "/" + name
	p.GetCalls = append(p.GetCalls, key)
	if err, ok := p.RecordErrs[key]; ok {
		return nil, err
	}
	if record, ok := p.Records[key]; ok {
		// Copy so tests can compare against the configured record even
		// after the command mutated IsTranslated.
		clone := *record
		return &clone, nil
	}
	return nil, fmt.Errorf("repository not configured: %s", key)
}

func (p *SpyHostingRepository) GetDefaultBranch(
	_ context.Context, owner, name string,
) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := owner + "/" + name
	if err, ok := p.BranchErrs[key]; ok {
		return "", err
	}
	if branch, ok := p.DefaultBranches[key]; ok {
		return branch, nil
	}
	return "main", nil
}

func (p *SpyHostingRepository) DirectoryExists(
	_ context.Context, owner, name, path, ref string,
) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := fmt.Sprintf("%s/%s@%s:%s", owner, name, ref, path)
	p.DirCalls = append(p.DirCalls, key)
	if err, ok := p.DirErrs[key]; ok {
		return false, err
	}
	return p.Directories[key], nil
}
