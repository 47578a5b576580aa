// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, User and Category, along
// with their validation rules and domain-specific errors.
package entity

import "time"

// Status represents the publication state of an article.
type Status string

// Article publication states.
const (
	// StatusDraft is the initial state for new articles.
	StatusDraft Status = "draft"
	// StatusPending marks an article awaiting editorial review.
	// Author-role updates that request publication are clamped to this state.
	StatusPending Status = "pending"
	// StatusPublished marks a publicly visible article. PublishedAt is
	// non-nil exactly while an article is in this state.
	StatusPublished Status = "published"
	// StatusArchived marks an article removed from public view.
	StatusArchived Status = "archived"
)

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []Status{StatusDraft, StatusPending, StatusPublished, StatusArchived}

// IsValidStatus checks if a status is valid.
func IsValidStatus(s Status) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Article represents a content article in the system.
// The slug is unique across all articles and is derived from the title
// unless explicitly overridden. PublishedAt is set exactly once on the
// transition into the published state and cleared on the transition out.
type Article struct {
	ID          int64
	Title       string
	Slug        string
	Summary     string
	Content     string
	Status      Status
	PublishedAt *time.Time
	ViewCount   int64
	AuthorID    int64
	CategoryID  *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPublished reports whether the article is currently published.
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}
