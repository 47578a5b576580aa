package article_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"backoffice-cms/internal/common/pagination"
	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/repository"
	"backoffice-cms/internal/service/authz"
	artUC "backoffice-cms/internal/usecase/article"
)

// Minimal in-memory ArticleRepository.
type stubRepo struct {
	data    map[int64]*entity.Article
	nextID  int64
	err     error // forces every call to fail when set
	slugDup bool  // first Create returns a slug conflict when set
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Article{}, nextID: 1}
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	return s.data[id], s.err
}

func (s *stubRepo) GetWithRelations(_ context.Context, id int64) (*repository.ArticleWithRelations, error) {
	if s.err != nil {
		return nil, s.err
	}
	art := s.data[id]
	if art == nil {
		return nil, nil
	}
	return &repository.ArticleWithRelations{Article: art, AuthorName: "Test Author"}, nil
}

func (s *stubRepo) List(_ context.Context, filters repository.ArticleFilters, _, _ int) ([]repository.ArticleWithRelations, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []repository.ArticleWithRelations
	for _, a := range s.data {
		if filters.AuthorID != nil && a.AuthorID != *filters.AuthorID {
			continue
		}
		if filters.Status != nil && a.Status != *filters.Status {
			continue
		}
		out = append(out, repository.ArticleWithRelations{Article: a})
	}
	return out, nil
}

func (s *stubRepo) Count(_ context.Context, filters repository.ArticleFilters) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var n int64
	for _, a := range s.data {
		if filters.AuthorID != nil && a.AuthorID != *filters.AuthorID {
			continue
		}
		if filters.Status != nil && a.Status != *filters.Status {
			continue
		}
		n++
	}
	return n, nil
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	if s.slugDup {
		s.slugDup = false
		return &entity.ConflictError{Field: "slug", Message: "slug already exists"}
	}
	a.ID = s.nextID
	s.nextID++
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Update(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}

func (s *stubRepo) IncrementViewCount(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	if a, ok := s.data[id]; ok {
		a.ViewCount++
	}
	return nil
}

func (s *stubRepo) CountByStatus(_ context.Context) ([]repository.StatusCount, error) {
	if s.err != nil {
		return nil, s.err
	}
	counts := map[entity.Status]int64{}
	for _, a := range s.data {
		counts[a.Status]++
	}
	var out []repository.StatusCount
	for st, n := range counts {
		out = append(out, repository.StatusCount{Status: st, Count: n})
	}
	return out, nil
}

func svc(repo *stubRepo) *artUC.Service {
	return &artUC.Service{Repo: repo, Now: frozenClock}
}

var (
	admin  = authz.Actor{ID: 1, Role: entity.RoleAdmin, IsActive: true}
	editor = authz.Actor{ID: 2, Role: entity.RoleEditor, IsActive: true}
	author = authz.Actor{ID: 3, Role: entity.RoleAuthor, IsActive: true}
)

func seed(repo *stubRepo, authorID int64, status entity.Status) *entity.Article {
	a := &entity.Article{
		ID:       repo.nextID,
		Title:    "Seeded Article",
		Slug:     "seeded-article",
		Content:  "seeded content long enough",
		Status:   status,
		AuthorID: authorID,
	}
	repo.nextID++
	repo.data[a.ID] = a
	return a
}

func TestService_Create_AuthorClamped(t *testing.T) {
	repo := newStub()
	in := validCreate()
	in.Status = entity.StatusPublished

	got, err := svc(repo).Create(context.Background(), author, in)
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.Status != entity.StatusDraft {
		t.Errorf("Status = %q, want clamped draft", got.Status)
	}
	if got.PublishedAt != nil {
		t.Errorf("PublishedAt = %v, want nil", got.PublishedAt)
	}
	if got.AuthorID != author.ID {
		t.Errorf("AuthorID = %d, want acting user %d", got.AuthorID, author.ID)
	}
}

func TestService_Create_EditorPublishes(t *testing.T) {
	repo := newStub()
	in := validCreate()
	in.Status = entity.StatusPublished

	got, err := svc(repo).Create(context.Background(), editor, in)
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.Status != entity.StatusPublished {
		t.Errorf("Status = %q, want published", got.Status)
	}
	if got.PublishedAt == nil || !got.PublishedAt.Equal(frozen) {
		t.Errorf("PublishedAt = %v, want %v", got.PublishedAt, frozen)
	}
}

func TestService_Create_SlugConflictRetriesWithSuffix(t *testing.T) {
	repo := newStub()
	repo.slugDup = true

	got, err := svc(repo).Create(context.Background(), editor, validCreate())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	want := "introduction-to-go"
	if got.Slug == want {
		t.Errorf("Slug = %q, want a suffixed variant after conflict", got.Slug)
	}
	if len(got.Slug) <= len(want) {
		t.Errorf("Slug = %q, want %q plus suffix", got.Slug, want)
	}
}

func TestService_Create_DisabledActor(t *testing.T) {
	disabled := authz.Actor{ID: 9, Role: entity.RoleAdmin, IsActive: false}
	_, err := svc(newStub()).Create(context.Background(), disabled, validCreate())

	var authzErr *authz.Error
	if !errors.As(err, &authzErr) {
		t.Fatalf("err = %v, want *authz.Error", err)
	}
	if authzErr.Reason != authz.ReasonAccountDisabled {
		t.Errorf("Reason = %q, want %q", authzErr.Reason, authz.ReasonAccountDisabled)
	}
}

func TestService_Update_OwnershipEnforced(t *testing.T) {
	repo := newStub()
	art := seed(repo, 9, entity.StatusDraft) // owned by someone else

	_, err := svc(repo).Update(context.Background(), author, artUC.UpdateInput{
		ID:      art.ID,
		Content: strPtr("new content that is long enough"),
	})

	var authzErr *authz.Error
	if !errors.As(err, &authzErr) {
		t.Fatalf("err = %v, want *authz.Error", err)
	}
	if authzErr.Reason != authz.ReasonAccessDenied {
		t.Errorf("Reason = %q, want %q", authzErr.Reason, authz.ReasonAccessDenied)
	}
}

func TestService_Update_EditorTouchesAnyArticle(t *testing.T) {
	repo := newStub()
	art := seed(repo, 9, entity.StatusDraft)

	got, err := svc(repo).Update(context.Background(), editor, artUC.UpdateInput{
		ID:     art.ID,
		Status: statusPtr(entity.StatusPublished),
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.Status != entity.StatusPublished {
		t.Errorf("Status = %q, want published", got.Status)
	}
	if got.PublishedAt == nil {
		t.Error("PublishedAt = nil, want set on publish transition")
	}
}

func TestService_Update_NotFound(t *testing.T) {
	_, err := svc(newStub()).Update(context.Background(), admin, artUC.UpdateInput{ID: 42})
	if !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Errorf("err = %v, want ErrArticleNotFound", err)
	}
}

func TestService_Delete(t *testing.T) {
	repo := newStub()
	own := seed(repo, author.ID, entity.StatusDraft)
	other := seed(repo, 9, entity.StatusDraft)

	if err := svc(repo).Delete(context.Background(), author, own.ID); err != nil {
		t.Fatalf("author deleting own article err=%v", err)
	}

	err := svc(repo).Delete(context.Background(), author, other.ID)
	var authzErr *authz.Error
	if !errors.As(err, &authzErr) || authzErr.Reason != authz.ReasonAccessDenied {
		t.Fatalf("author deleting another's article err=%v, want AccessDenied", err)
	}

	if err := svc(repo).Delete(context.Background(), editor, other.ID); err != nil {
		t.Fatalf("editor deleting another's article err=%v", err)
	}
}

func TestService_Duplicate(t *testing.T) {
	repo := newStub()
	published := frozen.Add(-time.Hour)
	orig := seed(repo, 9, entity.StatusPublished)
	orig.PublishedAt = &published
	orig.ViewCount = 120

	got, err := svc(repo).Duplicate(context.Background(), editor, orig.ID)
	if err != nil {
		t.Fatalf("Duplicate err=%v", err)
	}
	if got.Title != "Seeded Article (Copy)" {
		t.Errorf("Title = %q, want copy suffix", got.Title)
	}
	if got.Slug == orig.Slug {
		t.Error("copy slug must differ from the original")
	}
	if got.Status != entity.StatusDraft {
		t.Errorf("Status = %q, want draft", got.Status)
	}
	if got.PublishedAt != nil {
		t.Errorf("PublishedAt = %v, want nil", got.PublishedAt)
	}
	if got.ViewCount != 0 {
		t.Errorf("ViewCount = %d, want 0", got.ViewCount)
	}
	if got.AuthorID != orig.AuthorID {
		t.Errorf("AuthorID = %d, want original author %d", got.AuthorID, orig.AuthorID)
	}
}

func TestService_List_AuthorSeesOwnOnly(t *testing.T) {
	repo := newStub()
	seed(repo, author.ID, entity.StatusDraft)
	seed(repo, 9, entity.StatusPublished)

	got, err := svc(repo).List(context.Background(), author, repository.ArticleFilters{}, pagination.Params{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if got.Pagination.Total != 1 {
		t.Errorf("Total = %d, want 1 (own articles only)", got.Pagination.Total)
	}
	for _, a := range got.Data {
		if a.Article.AuthorID != author.ID {
			t.Errorf("listed article owned by %d, want %d", a.Article.AuthorID, author.ID)
		}
	}
}

func TestService_List_EditorSeesAll(t *testing.T) {
	repo := newStub()
	seed(repo, author.ID, entity.StatusDraft)
	seed(repo, 9, entity.StatusPublished)

	got, err := svc(repo).List(context.Background(), editor, repository.ArticleFilters{}, pagination.Params{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if got.Pagination.Total != 2 {
		t.Errorf("Total = %d, want 2", got.Pagination.Total)
	}
}

func TestService_GetStats(t *testing.T) {
	repo := newStub()
	seed(repo, 9, entity.StatusDraft)
	seed(repo, 9, entity.StatusPublished)
	seed(repo, 9, entity.StatusPublished)

	got, err := svc(repo).GetStats(context.Background(), admin)
	if err != nil {
		t.Fatalf("GetStats err=%v", err)
	}
	if got.Total != 3 {
		t.Errorf("Total = %d, want 3", got.Total)
	}

	var authzErr *authz.Error
	if _, err := svc(repo).GetStats(context.Background(), author); !errors.As(err, &authzErr) {
		t.Fatalf("author stats err=%v, want *authz.Error", err)
	}
	if _, err := svc(repo).GetStats(context.Background(), editor); !errors.As(err, &authzErr) {
		t.Fatalf("editor stats err=%v, want *authz.Error", err)
	}
}

func TestService_RepositoryError(t *testing.T) {
	repo := newStub()
	repo.err = errors.New("db down")

	if _, err := svc(repo).Get(context.Background(), admin, 1); err == nil {
		t.Error("Get should propagate repository errors")
	}
	if _, err := svc(repo).Create(context.Background(), admin, validCreate()); err == nil {
		t.Error("Create should propagate repository errors")
	}
}
