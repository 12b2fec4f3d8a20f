//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/l10n-works/transindex/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// RepositoryRecordBuilder helps create test repository records with a fluent interface.
type RepositoryRecordBuilder struct {
	*testkit.BaseBuilder
	name         string
	owner        string
	description  string
	isFork       bool
	starCount    int
	topics       []string
	isTranslated bool
	parent       *entities.ParentInfo
}

// NewRepositoryRecordBuilder creates a new builder with sensible defaults:
// a fork with a resolvable parent.
func NewRepositoryRecordBuilder() *RepositoryRecordBuilder {
	return &RepositoryRecordBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-repo",
		owner:       "test-org",
		description: "A test repository",
		isFork:      true,
		starCount:   1,
		parent: &entities.ParentInfo{
			FullName:    "upstream/test-repo",
			URL:         "https://github.com/upstream/test-repo",
			Owner:       "upstream",
			Description: "The upstream project",
			StarCount:   10,
		},
	}
}

// WithName sets the repository name.
func (b *RepositoryRecordBuilder) WithName(name string) *RepositoryRecordBuilder {
	b.name = name
	return b
}

// WithOwner sets the owning organization.
func (b *RepositoryRecordBuilder) WithOwner(owner string) *RepositoryRecordBuilder {
	b.owner = owner
	return b
}

// WithDescription sets the repository description.
func (b *RepositoryRecordBuilder) WithDescription(description string) *RepositoryRecordBuilder {
	b.description = description
	return b
}

// AsFork sets the fork flag.
func (b *RepositoryRecordBuilder) AsFork(isFork bool) *RepositoryRecordBuilder {
	b.isFork = isFork
	return b
}

// WithStarCount sets the star count.
func (b *RepositoryRecordBuilder) WithStarCount(stars int) *RepositoryRecordBuilder {
	b.starCount = stars
	return b
}

// WithTopics sets the topic list.
func (b *RepositoryRecordBuilder) WithTopics(topics ...string) *RepositoryRecordBuilder {
	b.topics = topics
	return b
}

// AsTranslated sets the translation-cache probe result.
func (b *RepositoryRecordBuilder) AsTranslated(translated bool) *RepositoryRecordBuilder {
	b.isTranslated = translated
	return b
}

// WithParent sets the parent info; nil models a non-fork payload.
func (b *RepositoryRecordBuilder) WithParent(parent *entities.ParentInfo) *RepositoryRecordBuilder {
	b.parent = parent
	return b
}

// Build creates the record (satisfies testkit.Builder interface).
func (b *RepositoryRecordBuilder) Build() interface{} {
	return b.BuildRecord()
}

// BuildRecord creates the record with a concrete return type.
func (b *RepositoryRecordBuilder) BuildRecord() *entities.RepositoryRecord {
	var parent *entities.ParentInfo
	if b.parent != nil {
		clone := *b.parent
		parent = &clone
	}
	return &entities.RepositoryRecord{
		Name:         b.name,
		FullName:     b.owner + "/" + b.name,
		URL:          "https://github.com/" + b.owner + "/" + b.name,
		Description:  b.description,
		IsFork:       b.isFork,
		StarCount:    b.starCount,
		Owner:        b.owner,
		Topics:       b.topics,
		IsTranslated: b.isTranslated,
		Parent:       parent,
	}
}
