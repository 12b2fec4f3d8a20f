package entities

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	topicBaseURL = "https://github.com/topics/"

	noTopicsSentinel     = "N/A"
	noDescriptionDefault = "No description"

	translatedBadge    = "![translated](https://img.shields.io/badge/status-translated-brightgreen)"
	notTranslatedBadge = "![not translated](https://img.shields.io/badge/status-not--translated-lightgrey)"
)

const (
	indexTableColumns   = "| Repository | Upstream | Description | Stars | Topics | Status |"
	indexTableSeparator = "| --- | --- | --- | --- | --- | --- |"
)

// IndexTableHeader returns the fixed column-names row plus separator row.
func IndexTableHeader() string {
	return indexTableColumns + "\n" + indexTableSeparator
}

// SelectIndexEntries filters records down to the rows the index should
// carry: excluded names are dropped, only forks with parent info are kept,
// forks sharing an upstream are collapsed to the first one seen in listing
// order, and the survivors are sorted ascending by fork name.
func SelectIndexEntries(records []*RepositoryRecord, excluded []string) []*RepositoryRecord {
	exclusions := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		exclusions[name] = true
	}

	seenUpstreams := make(map[string]bool)
	var entries []*RepositoryRecord
	for _, record := range records {
		if record == nil || exclusions[record.Name] {
			continue
		}
		if !record.IsFork || record.Parent == nil {
			continue
		}
		if seenUpstreams[record.Parent.FullName] {
			continue
		}
		seenUpstreams[record.Parent.FullName] = true
		entries = append(entries, record)
	}

	// A collator keeps comparison buffers, so each call builds its own
	// instead of sharing one across goroutines. Und selects the default
	// Unicode collation.
	rowCollator := collate.New(language.Und)
	sort.SliceStable(entries, func(i, j int) bool {
		return rowCollator.CompareString(entries[i].Name, entries[j].Name) < 0
	})

	return entries
}

// RenderIndexTable renders one markdown row per entry, newline-terminated.
func RenderIndexTable(entries []*RepositoryRecord) string {
	var builder strings.Builder
	for _, entry := range entries {
		builder.WriteString(RenderIndexRow(entry))
		builder.WriteString("\n")
	}
	return builder.String()
}

// RenderIndexRow renders a single table row for a fork and its upstream.
func RenderIndexRow(record *RepositoryRecord) string {
	parent := record.Parent

	status := notTranslatedBadge
	if record.IsTranslated {
		status = translatedBadge
	}

	return fmt.Sprintf(
		"| [%s](%s) | [%s](%s) | %s | %d | %s | %s |",
		record.Name, record.URL,
		parent.FullName, parent.URL,
		sanitizeDescription(parent.Description),
		parent.StarCount,
		renderTopics(parent.Topics),
		status,
	)
}

// sanitizeDescription collapses line breaks to spaces and escapes pipes so
// the description always fits a single table cell.
func sanitizeDescription(description string) string {
	if description == "" {
		return noDescriptionDefault
	}
	sanitized := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(description)
	return strings.ReplaceAll(sanitized, "|", `\|`)
}

func renderTopics(topics []string) string {
	if len(topics) == 0 {
		return noTopicsSentinel
	}
	links := make([]string, 0, len(topics))
	for _, topic := range topics {
		links = append(links, fmt.Sprintf("[%s](%s%s)", topic, topicBaseURL, topic))
	}
	return strings.Join(links, ", ")
}
