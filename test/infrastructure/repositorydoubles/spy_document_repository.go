//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/l10n-works/transindex/internal/domain/repositories"
)

// SpyDocumentRepository implements repositories.DocumentRepository in memory.
type SpyDocumentRepository struct {
	Content  string
	ReadErr  error
	WriteErr error
	Written  []string
}

var _ repositories.DocumentRepository = (*SpyDocumentRepository)(nil)

func (d *SpyDocumentRepository) Read() (string, error) {
	if d.ReadErr != nil {
		return "", d.ReadErr
	}
	return d.Content, nil
}

func (d *SpyDocumentRepository) Write(content string) error {
	if d.WriteErr != nil {
		return d.WriteErr
	}
	d.Written = append(d.Written, content)
	d.Content = content
	return nil
}
