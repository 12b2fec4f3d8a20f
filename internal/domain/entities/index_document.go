package entities

import (
	"strings"
)

// Markers demarcating the generated region of the index document. Content
// between them is owned by the tool; everything outside is preserved.
const (
	IndexStartMarker = "<!-- TRANSLATION-INDEX:START -->"
	IndexEndMarker   = "<!-- TRANSLATION-INDEX:END -->"
)

// fallbackSectionHeading introduces the rebuilt table when a document has
// no usable markers.
const fallbackSectionHeading = "## Translation index"

// UpsertIndexSection splices the rendered table body into the document.
// When both markers are present and well ordered, only the region between
// them is replaced. Otherwise the document is reconstructed from its
// leading prose (anything before the first table row), discarding prior
// table content; the rebuilt section carries the markers so subsequent
// runs take the splice path. The result always ends with exactly one
// trailing newline.
func UpsertIndexSection(document, tableBody string) string {
	section := IndexStartMarker + "\n" + IndexTableHeader() + "\n" + tableBody + IndexEndMarker

	startIdx := strings.Index(document, IndexStartMarker)
	endIdx := strings.Index(document, IndexEndMarker)

	var result string
	if startIdx >= 0 && endIdx >= 0 && startIdx < endIdx {
		prefix := document[:startIdx]
		suffix := document[endIdx+len(IndexEndMarker):]
		result = prefix + section + suffix
	} else {
		prose := leadingProse(document)
		if prose != "" {
			result = prose + "\n\n" + fallbackSectionHeading + "\n\n" + section
		} else {
			result = fallbackSectionHeading + "\n\n" + section
		}
	}

	return strings.TrimRight(result, "\n") + "\n"
}

// leadingProse returns the document content preceding the first table row
// or stray marker line, with trailing blank lines removed.
func leadingProse(document string) string {
	lines := strings.Split(document, "\n")
	var kept []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "|") ||
			strings.Contains(trimmed, IndexStartMarker) ||
			strings.Contains(trimmed, IndexEndMarker) {
			break
		}
		kept = append(kept, line)
	}
	return strings.TrimRight(strings.Join(kept, "\n"), " \t\n")
}
