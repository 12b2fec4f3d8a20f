//go:build unit

package document_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l10n-works/transindex/internal/domain/entities"
	"github.com/l10n-works/transindex/internal/infrastructure/repositories/document"
)

func TestMarkdownDocumentRepository(t *testing.T) {
	t.Parallel()

	t.Run("should read the document back verbatim", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "README.md")
		require.NoError(t, os.WriteFile(path, []byte("# Index\n"), 0o644))
		repo := document.NewMarkdownDocumentRepository(&entities.Settings{DocumentPath: path})

		// when
		content, err := repo.Read()

		// then
		require.NoError(t, err)
		assert.Equal(t, "# Index\n", content)
	})

	t.Run("should fail to read a missing document", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.md")
		repo := document.NewMarkdownDocumentRepository(&entities.Settings{DocumentPath: path})

		// when
		_, err := repo.Read()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read document")
	})

	t.Run("should write with exactly one trailing newline", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "README.md")
		repo := document.NewMarkdownDocumentRepository(&entities.Settings{DocumentPath: path})

		// when
		err := repo.Write("# Index\n\n\n")

		// then
		require.NoError(t, err)
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "# Index\n", string(data))
	})
}
