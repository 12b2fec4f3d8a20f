//go:build unit

package entities_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l10n-works/transindex/internal/domain/entities"
)

const sampleTableBody = "| [proj-a](u) | [up/foo](u) | Foo | 10 | N/A | ![translated](b) |\n"

func TestUpsertIndexSection(t *testing.T) {
	t.Parallel()

	t.Run("should replace only the region between markers", func(t *testing.T) {
		t.Parallel()

		// given
		document := "# Intro\n\nSome prose.\n\n" +
			entities.IndexStartMarker + "\nold table\n" + entities.IndexEndMarker +
			"\n\nTrailing notes.\n"

		// when
		result := entities.UpsertIndexSection(document, sampleTableBody)

		// then
		assert.Contains(t, result, "# Intro\n\nSome prose.\n\n")
		assert.Contains(t, result, "Trailing notes.")
		assert.Contains(t, result, sampleTableBody)
		assert.NotContains(t, result, "old table")
	})

	t.Run("should be idempotent when markers are present", func(t *testing.T) {
		t.Parallel()

		// given
		document := "# Intro\n\n" +
			entities.IndexStartMarker + "\n" + entities.IndexEndMarker + "\n"

		// when
		first := entities.UpsertIndexSection(document, sampleTableBody)
		second := entities.UpsertIndexSection(first, sampleTableBody)

		// then
		assert.Equal(t, first, second)
	})

	t.Run("should fall back to prose capture when markers are absent", func(t *testing.T) {
		t.Parallel()

		// given
		document := "# Intro\n\nSome prose.\n\n| old | table |\n| --- | --- |\n| a | b |\n"

		// when
		result := entities.UpsertIndexSection(document, sampleTableBody)

		// then
		assert.True(t, strings.HasPrefix(result, "# Intro\n\nSome prose."))
		assert.NotContains(t, result, "| old | table |")
		assert.Contains(t, result, entities.IndexStartMarker)
		assert.Contains(t, result, sampleTableBody)
	})

	t.Run("should fall back when the end marker precedes the start marker", func(t *testing.T) {
		t.Parallel()

		// given
		document := "Prose.\n\n" +
			entities.IndexEndMarker + "\nstale\n" + entities.IndexStartMarker + "\n"

		// when
		result := entities.UpsertIndexSection(document, sampleTableBody)

		// then
		assert.True(t, strings.HasPrefix(result, "Prose."))
		assert.NotContains(t, result, "stale")
		assert.Contains(t, result, sampleTableBody)
	})

	t.Run("should discard content after the prior table in the fallback path", func(t *testing.T) {
		t.Parallel()

		// given
		document := "Prose.\n\n| a | b |\n\nManual notes below the table.\n"

		// when
		result := entities.UpsertIndexSection(document, sampleTableBody)

		// then: existing behavior, preserved on purpose
		assert.NotContains(t, result, "Manual notes below the table.")
	})

	t.Run("should end with exactly one trailing newline", func(t *testing.T) {
		t.Parallel()

		// given
		document := "# Intro\n\n" +
			entities.IndexStartMarker + "\n" + entities.IndexEndMarker + "\n\n\n"

		// when
		result := entities.UpsertIndexSection(document, sampleTableBody)

		// then
		require.True(t, strings.HasSuffix(result, "\n"))
		assert.False(t, strings.HasSuffix(result, "\n\n"))
	})

	t.Run("should build a whole section for an empty document", func(t *testing.T) {
		t.Parallel()

		// given
		document := ""

		// when
		result := entities.UpsertIndexSection(document, sampleTableBody)

		// then
		assert.True(t, strings.HasPrefix(result, "## Translation index"))
		assert.Contains(t, result, entities.IndexTableHeader())
	})
}
