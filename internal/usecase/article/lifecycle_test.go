package article_test

import (
	"errors"
	"testing"
	"time"

	"backoffice-cms/internal/domain/entity"
	artUC "backoffice-cms/internal/usecase/article"
)

var frozen = time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

func frozenClock() time.Time { return frozen }

func strPtr(s string) *string { return &s }

func statusPtr(s entity.Status) *entity.Status { return &s }

func validCreate() artUC.CreateInput {
	return artUC.CreateInput{
		Title:    "Introduction to Go",
		Summary:  "A short summary",
		Content:  "This content is long enough to pass validation.",
		AuthorID: 1,
	}
}

func TestPrepareCreate_DerivesSlug(t *testing.T) {
	in := validCreate()
	in.Title = "L'Été à Paris!"

	art, err := artUC.PrepareCreate(in, true, frozenClock)
	if err != nil {
		t.Fatalf("PrepareCreate err=%v", err)
	}
	if art.Slug != "lete-a-paris" {
		t.Errorf("Slug = %q, want %q", art.Slug, "lete-a-paris")
	}
	if art.Status != entity.StatusDraft {
		t.Errorf("Status = %q, want draft default", art.Status)
	}
	if art.PublishedAt != nil {
		t.Errorf("PublishedAt = %v, want nil for draft", art.PublishedAt)
	}
}

func TestPrepareCreate_ExplicitSlugPreserved(t *testing.T) {
	in := validCreate()
	in.Slug = "custom-slug"

	art, err := artUC.PrepareCreate(in, true, frozenClock)
	if err != nil {
		t.Fatalf("PrepareCreate err=%v", err)
	}
	if art.Slug != "custom-slug" {
		t.Errorf("Slug = %q, want explicit override kept", art.Slug)
	}
}

func TestPrepareCreate_EmptySlugFails(t *testing.T) {
	in := validCreate()
	in.Title = "!!! ???"

	_, err := artUC.PrepareCreate(in, true, frozenClock)
	var ve *entity.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *entity.ValidationError", err)
	}
	if ve.Field != "slug" {
		t.Errorf("Field = %q, want %q", ve.Field, "slug")
	}
}

func TestPrepareCreate_PublishSetsTimestamp(t *testing.T) {
	in := validCreate()
	in.Status = entity.StatusPublished

	art, err := artUC.PrepareCreate(in, true, frozenClock)
	if err != nil {
		t.Fatalf("PrepareCreate err=%v", err)
	}
	if art.Status != entity.StatusPublished {
		t.Errorf("Status = %q, want published", art.Status)
	}
	if art.PublishedAt == nil || !art.PublishedAt.Equal(frozen) {
		t.Errorf("PublishedAt = %v, want %v", art.PublishedAt, frozen)
	}
}

func TestPrepareCreate_PublishClamp(t *testing.T) {
	// An author submitting published is clamped to draft, and the clamp
	// runs before the timestamp rule so publishedAt stays nil.
	in := validCreate()
	in.Status = entity.StatusPublished

	art, err := artUC.PrepareCreate(in, false, frozenClock)
	if err != nil {
		t.Fatalf("PrepareCreate err=%v", err)
	}
	if art.Status != entity.StatusDraft {
		t.Errorf("Status = %q, want clamped draft", art.Status)
	}
	if art.PublishedAt != nil {
		t.Errorf("PublishedAt = %v, want nil after clamp", art.PublishedAt)
	}
}

func TestPrepareCreate_ValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*artUC.CreateInput)
		wantField string
	}{
		{name: "short title", mutate: func(in *artUC.CreateInput) { in.Title = "ab" }, wantField: "title"},
		{name: "short content", mutate: func(in *artUC.CreateInput) { in.Content = "short" }, wantField: "content"},
		{name: "long summary", mutate: func(in *artUC.CreateInput) {
			for len(in.Summary) <= entity.SummaryMaxLength {
				in.Summary += "xxxxxxxxxx"
			}
		}, wantField: "summary"},
		{name: "invalid status", mutate: func(in *artUC.CreateInput) { in.Status = "live" }, wantField: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreate()
			tt.mutate(&in)
			_, err := artUC.PrepareCreate(in, true, frozenClock)
			var ve *entity.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %v, want *entity.ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func existingDraft() *entity.Article {
	return &entity.Article{
		ID:       7,
		Title:    "Original Title",
		Slug:     "original-title",
		Summary:  "summary",
		Content:  "original content long enough",
		Status:   entity.StatusDraft,
		AuthorID: 3,
	}
}

func TestPrepareUpdate_PublishTransitionSetsTimestamp(t *testing.T) {
	got, slugChanged, err := artUC.PrepareUpdate(existingDraft(), artUC.UpdateInput{
		Status: statusPtr(entity.StatusPublished),
	}, true, frozenClock)
	if err != nil {
		t.Fatalf("PrepareUpdate err=%v", err)
	}
	if got.PublishedAt == nil || !got.PublishedAt.Equal(frozen) {
		t.Errorf("PublishedAt = %v, want %v", got.PublishedAt, frozen)
	}
	if slugChanged {
		t.Error("slugChanged = true, want false when title untouched")
	}
}

func TestPrepareUpdate_RepublishKeepsOriginalTimestamp(t *testing.T) {
	first := frozen.Add(-24 * time.Hour)
	existing := existingDraft()
	existing.Status = entity.StatusPublished
	existing.PublishedAt = &first

	got, _, err := artUC.PrepareUpdate(existing, artUC.UpdateInput{
		Status:  statusPtr(entity.StatusPublished),
		Content: strPtr("updated content long enough to pass"),
	}, true, frozenClock)
	if err != nil {
		t.Fatalf("PrepareUpdate err=%v", err)
	}
	if got.PublishedAt == nil || !got.PublishedAt.Equal(first) {
		t.Errorf("PublishedAt = %v, want original %v", got.PublishedAt, first)
	}
}

func TestPrepareUpdate_UnpublishClearsTimestamp(t *testing.T) {
	published := frozen.Add(-time.Hour)
	existing := existingDraft()
	existing.Status = entity.StatusPublished
	existing.PublishedAt = &published

	got, _, err := artUC.PrepareUpdate(existing, artUC.UpdateInput{
		Status: statusPtr(entity.StatusDraft),
	}, true, frozenClock)
	if err != nil {
		t.Fatalf("PrepareUpdate err=%v", err)
	}
	if got.PublishedAt != nil {
		t.Errorf("PublishedAt = %v, want nil after unpublish", got.PublishedAt)
	}
}

func TestPrepareUpdate_PublishClampToPending(t *testing.T) {
	got, _, err := artUC.PrepareUpdate(existingDraft(), artUC.UpdateInput{
		Status: statusPtr(entity.StatusPublished),
	}, false, frozenClock)
	if err != nil {
		t.Fatalf("PrepareUpdate err=%v", err)
	}
	if got.Status != entity.StatusPending {
		t.Errorf("Status = %q, want pending clamp", got.Status)
	}
	if got.PublishedAt != nil {
		t.Errorf("PublishedAt = %v, want nil after clamp", got.PublishedAt)
	}
}

func TestPrepareUpdate_TitleChangeRegeneratesSlug(t *testing.T) {
	got, slugChanged, err := artUC.PrepareUpdate(existingDraft(), artUC.UpdateInput{
		Title: strPtr("Café Système"),
	}, true, frozenClock)
	if err != nil {
		t.Fatalf("PrepareUpdate err=%v", err)
	}
	if got.Slug != "cafe-systeme" {
		t.Errorf("Slug = %q, want %q", got.Slug, "cafe-systeme")
	}
	if !slugChanged {
		t.Error("slugChanged = false, want true after title change")
	}
}

func TestPrepareUpdate_UnchangedTitlePreservesSlug(t *testing.T) {
	existing := existingDraft()
	existing.Slug = "hand-tuned-slug"

	got, slugChanged, err := artUC.PrepareUpdate(existing, artUC.UpdateInput{
		Title:   strPtr("Original Title"),
		Content: strPtr("new content that is long enough"),
	}, true, frozenClock)
	if err != nil {
		t.Fatalf("PrepareUpdate err=%v", err)
	}
	if got.Slug != "hand-tuned-slug" {
		t.Errorf("Slug = %q, want stored slug preserved verbatim", got.Slug)
	}
	if slugChanged {
		t.Error("slugChanged = true, want false for unchanged title")
	}
}

func TestPrepareUpdate_TitleYieldingEmptySlugFails(t *testing.T) {
	_, _, err := artUC.PrepareUpdate(existingDraft(), artUC.UpdateInput{
		Title: strPtr("??? !!!"),
	}, true, frozenClock)
	var ve *entity.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *entity.ValidationError", err)
	}
	if ve.Field != "title" && ve.Field != "slug" {
		t.Errorf("Field = %q, want title or slug", ve.Field)
	}
}
