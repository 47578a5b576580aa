package article

import (
	"time"

	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/pkg/slug"
)

// Clock supplies the current time so publish-transition tests are
// deterministic. Production code passes time.Now.
type Clock func() time.Time

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title      string
	Slug       string // optional explicit override; derived from Title when empty
	Summary    string
	Content    string
	Status     entity.Status // defaults to draft when empty
	AuthorID   int64
	CategoryID *int64
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID         int64
	Title      *string
	Slug       *string
	Summary    *string
	Content    *string
	Status     *entity.Status
	CategoryID *int64
}

// PrepareCreate validates the input and produces a fully prepared article
// record, applying the lifecycle rules in order:
//
//  1. a requested published status is silently clamped to draft when the
//     caller lacks publish privilege (before any timestamp logic)
//  2. the slug is derived from the title unless explicitly supplied;
//     a title that yields an empty slug is a validation failure
//  3. a published article gets publishedAt = now()
//
// It never touches storage; the caller persists the returned record and
// handles slug-uniqueness conflicts.
func PrepareCreate(in CreateInput, canPublish bool, now Clock) (*entity.Article, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusDraft
	}
	if err := entity.ValidateStatus(status); err != nil {
		return nil, err
	}

	// Publish clamp: a deliberate downgrade, not a validation failure.
	// Must happen before the publishedAt computation below.
	if status == entity.StatusPublished && !canPublish {
		status = entity.StatusDraft
	}

	if err := entity.ValidateTitle(in.Title); err != nil {
		return nil, err
	}
	if err := entity.ValidateSummary(in.Summary); err != nil {
		return nil, err
	}
	if err := entity.ValidateContent(in.Content); err != nil {
		return nil, err
	}

	s := in.Slug
	if s == "" {
		s = slug.Generate(in.Title)
	}
	if err := entity.ValidateSlug(s); err != nil {
		return nil, err
	}

	art := &entity.Article{
		Title:      in.Title,
		Slug:       s,
		Summary:    in.Summary,
		Content:    in.Content,
		Status:     status,
		AuthorID:   in.AuthorID,
		CategoryID: in.CategoryID,
	}
	if status == entity.StatusPublished {
		t := now()
		art.PublishedAt = &t
	}
	return art, nil
}

// PrepareUpdate applies a patch to a consistent snapshot of the stored
// article and returns the prepared record along with whether the slug
// changed (and therefore needs a fresh uniqueness check).
//
// Status transitions drive the publish timestamp: moving into published
// sets publishedAt = now(), moving out clears it, and staying published
// keeps the original timestamp so republishing never resets it. When the
// title changes the slug is regenerated from the new title; an unchanged
// title preserves the stored slug verbatim.
func PrepareUpdate(existing *entity.Article, patch UpdateInput, canPublish bool, now Clock) (*entity.Article, bool, error) {
	updated := *existing

	if patch.Status != nil {
		status := *patch.Status
		if err := entity.ValidateStatus(status); err != nil {
			return nil, false, err
		}
		// Publish clamp on update downgrades to pending so the request
		// lands in the editorial review queue instead of going live.
		if status == entity.StatusPublished && !canPublish {
			status = entity.StatusPending
		}
		updated.Status = status
	}

	slugChanged := false
	if patch.Title != nil && *patch.Title != existing.Title {
		if err := entity.ValidateTitle(*patch.Title); err != nil {
			return nil, false, err
		}
		updated.Title = *patch.Title
		updated.Slug = slug.Generate(updated.Title)
		slugChanged = true
	}
	if patch.Slug != nil && *patch.Slug != existing.Slug {
		updated.Slug = *patch.Slug
		slugChanged = true
	}
	if slugChanged {
		if err := entity.ValidateSlug(updated.Slug); err != nil {
			return nil, false, err
		}
	}

	if patch.Summary != nil {
		if err := entity.ValidateSummary(*patch.Summary); err != nil {
			return nil, false, err
		}
		updated.Summary = *patch.Summary
	}
	if patch.Content != nil {
		if err := entity.ValidateContent(*patch.Content); err != nil {
			return nil, false, err
		}
		updated.Content = *patch.Content
	}
	if patch.CategoryID != nil {
		updated.CategoryID = patch.CategoryID
	}

	switch {
	case updated.Status == entity.StatusPublished && existing.Status != entity.StatusPublished:
		t := now()
		updated.PublishedAt = &t
	case updated.Status != entity.StatusPublished && existing.Status == entity.StatusPublished:
		updated.PublishedAt = nil
	}

	return &updated, slugChanged, nil
}
