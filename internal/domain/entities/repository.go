package entities

import (
	"strings"
)

// RepositoryRecord is the normalized view of one repository as returned by
// the hosting API, plus the translation-cache probe result.
type RepositoryRecord struct {
	Name        string
	FullName    string
	URL         string
	Description string
	IsFork      bool
	StarCount   int
	Owner       string
	Language    *string
	Topics      []string

	// IsTranslated is the only field mutated after construction; it is set
	// once the translation-cache probe has run.
	IsTranslated bool

	// Parent is present only for forks. It starts as the summary embedded in
	// the fork's API response and is replaced by a freshly fetched parent
	// record when that supplemental fetch succeeds.
	Parent *ParentInfo
}

// ParentInfo describes the upstream project a fork translates.
type ParentInfo struct {
	FullName    string
	URL         string
	Owner       string
	Description string
	StarCount   int
	Topics      []string
}

// AsParentInfo converts a fully fetched repository record into the parent
// view stored on its forks.
func (r *RepositoryRecord) AsParentInfo() *ParentInfo {
	return &ParentInfo{
		FullName:    r.FullName,
		URL:         r.URL,
		Owner:       r.Owner,
		Description: r.Description,
		StarCount:   r.StarCount,
		Topics:      r.Topics,
	}
}

// RepositorySummary is one entry of the organization listing. Only the
// fields needed to drive the per-repository detail fetch are kept.
type RepositorySummary struct {
	Name     string
	FullName string
}

// SplitFullName splits an "owner/name" pair as used by the hosting API.
func SplitFullName(fullName string) (owner, name string, ok bool) {
	owner, name, ok = strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" {
		return "", "", false
	}
	return owner, name, true
}
