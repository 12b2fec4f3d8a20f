//go:build unit

package github

import (
	"encoding/json"
	"net/http"
	"testing"

	gh "github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l10n-works/transindex/internal/domain/entities"
)

func TestMapRepository(t *testing.T) {
	t.Parallel()

	t.Run("should map the raw payload onto the domain record", func(t *testing.T) {
		t.Parallel()

		// given
		raw := &gh.Repository{
			Name:            gh.String("proj-a"),
			FullName:        gh.String("test-org/proj-a"),
			HTMLURL:         gh.String("https://github.com/test-org/proj-a"),
			Description:     gh.String("A translated project"),
			Fork:            gh.Bool(true),
			StargazersCount: gh.Int(7),
			Owner:           &gh.User{Login: gh.String("test-org")},
			Language:        gh.String("Go"),
			Topics:          []string{"cli"},
		}

		// when
		record := mapRepository(raw)

		// then
		assert.Equal(t, "proj-a", record.Name)
		assert.Equal(t, "test-org/proj-a", record.FullName)
		assert.Equal(t, "A translated project", record.Description)
		assert.True(t, record.IsFork)
		assert.Equal(t, 7, record.StarCount)
		assert.Equal(t, "test-org", record.Owner)
		require.NotNil(t, record.Language)
		assert.Equal(t, "Go", *record.Language)
		assert.Equal(t, []string{"cli"}, record.Topics)
		assert.Nil(t, record.Parent)
		assert.False(t, record.IsTranslated)
	})

	t.Run("should carry the embedded parent summary for forks", func(t *testing.T) {
		t.Parallel()

		// given
		raw := &gh.Repository{
			Name: gh.String("proj-a"),
			Fork: gh.Bool(true),
			Parent: &gh.Repository{
				FullName:        gh.String("upstream/foo"),
				HTMLURL:         gh.String("https://github.com/upstream/foo"),
				Owner:           &gh.User{Login: gh.String("upstream")},
				Description:     gh.String("Upstream"),
				StargazersCount: gh.Int(42),
				Topics:          []string{"library"},
			},
		}

		// when
		record := mapRepository(raw)

		// then
		require.NotNil(t, record.Parent)
		assert.Equal(t, "upstream/foo", record.Parent.FullName)
		assert.Equal(t, "upstream", record.Parent.Owner)
		assert.Equal(t, 42, record.Parent.StarCount)
		assert.Equal(t, []string{"library"}, record.Parent.Topics)
	})

	t.Run("should leave language nil when absent", func(t *testing.T) {
		t.Parallel()

		// given
		raw := &gh.Repository{Name: gh.String("proj-a")}

		// when
		record := mapRepository(raw)

		// then
		assert.Nil(t, record.Language)
	})
}

func TestIsDirectory(t *testing.T) {
	t.Parallel()

	t.Run("should accept a directory listing payload", func(t *testing.T) {
		t.Parallel()

		// given
		listing := []*gh.RepositoryContent{{Name: gh.String("glossary.md")}}

		// when
		result := isDirectory(nil, listing)

		// then
		assert.True(t, result)
	})

	t.Run("should accept a single entry typed dir", func(t *testing.T) {
		t.Parallel()

		// given
		entry := &gh.RepositoryContent{Type: gh.String("dir")}

		// when
		result := isDirectory(entry, nil)

		// then
		assert.True(t, result)
	})

	t.Run("should reject a plain file entry", func(t *testing.T) {
		t.Parallel()

		// given
		entry := &gh.RepositoryContent{Type: gh.String("file")}

		// when
		result := isDirectory(entry, nil)

		// then
		assert.False(t, result)
	})
}

func TestNormalizeError(t *testing.T) {
	t.Parallel()

	t.Run("should map a 404 response onto the not-found sentinel", func(t *testing.T) {
		t.Parallel()

		// given
		raw := &gh.ErrorResponse{
			Response: &http.Response{StatusCode: http.StatusNotFound},
			Message:  "Not Found",
		}

		// when
		err := normalizeError(raw, "probe")

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrNotFound)

		var apiErr *entities.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Not Found", apiErr.Message)
	})

	t.Run("should not match the sentinel for other statuses", func(t *testing.T) {
		t.Parallel()

		// given
		raw := &gh.ErrorResponse{
			Response: &http.Response{StatusCode: http.StatusForbidden},
			Message:  "rate limited",
		}

		// when
		err := normalizeError(raw, "list")

		// then
		require.Error(t, err)
		assert.NotErrorIs(t, err, entities.ErrNotFound)
	})

	t.Run("should wrap undecodable bodies as parse errors", func(t *testing.T) {
		t.Parallel()

		// given
		raw := &json.SyntaxError{}

		// when
		err := normalizeError(raw, "get")

		// then
		var parseErr *entities.ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}
