package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/l10n-works/transindex/internal/domain/entities"
	"github.com/l10n-works/transindex/internal/domain/repositories"
)

const documentFileMode = 0o644

// MarkdownDocumentRepository reads and rewrites the local markdown index
// document as a whole.
type MarkdownDocumentRepository struct {
	path string
}

// NewMarkdownDocumentRepository creates the document adapter from the run settings.
func NewMarkdownDocumentRepository(settings *entities.Settings) repositories.DocumentRepository {
	return &MarkdownDocumentRepository{path: settings.DocumentPath}
}

func (d *MarkdownDocumentRepository) Read() (string, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %q: %w", d.path, err)
	}
	return string(data), nil
}

// Write rewrites the document in one operation, ensuring exactly one
// trailing newline.
func (d *MarkdownDocumentRepository) Write(content string) error {
	normalized := strings.TrimRight(content, "\n") + "\n"
	if err := os.WriteFile(d.path, []byte(normalized), documentFileMode); err != nil {
		return fmt.Errorf("failed to write document %q: %w", d.path, err)
	}
	return nil
}
