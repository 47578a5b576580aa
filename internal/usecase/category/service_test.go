package category_test

import (
	"context"
	"errors"
	"testing"

	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/repository"
	"backoffice-cms/internal/service/authz"
	catUC "backoffice-cms/internal/usecase/category"
)

// Minimal in-memory CategoryRepository.
type stubRepo struct {
	data     map[int64]*entity.Category
	articles map[int64]int64 // category ID -> article count
	nextID   int64
	err      error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Category{}, articles: map[int64]int64{}, nextID: 1}
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Category, error) {
	return s.data[id], s.err
}

func (s *stubRepo) List(_ context.Context) ([]repository.CategoryWithCount, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []repository.CategoryWithCount
	for id, c := range s.data {
		out = append(out, repository.CategoryWithCount{Category: c, ArticleCount: s.articles[id]})
	}
	return out, nil
}

func (s *stubRepo) Create(_ context.Context, c *entity.Category) error {
	if s.err != nil {
		return s.err
	}
	for _, existing := range s.data {
		if existing.Name == c.Name {
			return &entity.ConflictError{Field: "name", Message: "category name already exists"}
		}
		if existing.Slug == c.Slug {
			return &entity.ConflictError{Field: "slug", Message: "slug already exists"}
		}
	}
	c.ID = s.nextID
	s.nextID++
	s.data[c.ID] = c
	return nil
}

func (s *stubRepo) Update(_ context.Context, c *entity.Category) error {
	if s.err != nil {
		return s.err
	}
	s.data[c.ID] = c
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}

func (s *stubRepo) ArticleCount(_ context.Context, id int64) (int64, error) {
	return s.articles[id], s.err
}

var (
	admin  = authz.Actor{ID: 1, Role: entity.RoleAdmin, IsActive: true}
	editor = authz.Actor{ID: 2, Role: entity.RoleEditor, IsActive: true}
	author = authz.Actor{ID: 3, Role: entity.RoleAuthor, IsActive: true}
)

func strPtr(s string) *string { return &s }

func TestService_Create(t *testing.T) {
	repo := newStub()
	svc := &catUC.Service{Repo: repo}

	got, err := svc.Create(context.Background(), editor, catUC.CreateInput{Name: "Développement Web"})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.Slug != "developpement-web" {
		t.Errorf("Slug = %q, want derived from name", got.Slug)
	}
	if got.Color != entity.DefaultCategoryColor {
		t.Errorf("Color = %q, want default %q", got.Color, entity.DefaultCategoryColor)
	}
}

func TestService_Create_DuplicateName(t *testing.T) {
	repo := newStub()
	svc := &catUC.Service{Repo: repo}

	if _, err := svc.Create(context.Background(), admin, catUC.CreateInput{Name: "Tutorials"}); err != nil {
		t.Fatalf("first Create err=%v", err)
	}
	_, err := svc.Create(context.Background(), admin, catUC.CreateInput{Name: "Tutorials"})
	if !entity.IsConflict(err, "name") {
		t.Errorf("err = %v, want name conflict", err)
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := &catUC.Service{Repo: newStub()}

	tests := []struct {
		name  string
		in    catUC.CreateInput
		field string
	}{
		{"name too short", catUC.CreateInput{Name: "A"}, "name"},
		{"bad color", catUC.CreateInput{Name: "Valid Name", Color: "red"}, "color"},
		{"bad explicit slug", catUC.CreateInput{Name: "Valid Name", Slug: "Has Spaces"}, "slug"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), admin, tt.in)
			var verr *entity.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want *entity.ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestService_Create_AuthorForbidden(t *testing.T) {
	svc := &catUC.Service{Repo: newStub()}

	_, err := svc.Create(context.Background(), author, catUC.CreateInput{Name: "Tutorials"})
	var authzErr *authz.Error
	if !errors.As(err, &authzErr) {
		t.Fatalf("err = %v, want *authz.Error", err)
	}
	if authzErr.Reason != authz.ReasonInsufficientPermissions {
		t.Errorf("Reason = %q, want %q", authzErr.Reason, authz.ReasonInsufficientPermissions)
	}
}

func TestService_Update_RenameRegeneratesSlug(t *testing.T) {
	repo := newStub()
	svc := &catUC.Service{Repo: repo}
	cat, err := svc.Create(context.Background(), admin, catUC.CreateInput{Name: "Old Name"})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	got, err := svc.Update(context.Background(), admin, catUC.UpdateInput{ID: cat.ID, Name: strPtr("New Name")})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.Slug != "new-name" {
		t.Errorf("Slug = %q, want regenerated from new name", got.Slug)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := &catUC.Service{Repo: newStub()}
	_, err := svc.Update(context.Background(), admin, catUC.UpdateInput{ID: 42, Name: strPtr("Whatever")})
	if !errors.Is(err, catUC.ErrCategoryNotFound) {
		t.Errorf("err = %v, want ErrCategoryNotFound", err)
	}
}

func TestService_Delete(t *testing.T) {
	repo := newStub()
	svc := &catUC.Service{Repo: repo}
	cat, err := svc.Create(context.Background(), admin, catUC.CreateInput{Name: "Empty One"})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	if err := svc.Delete(context.Background(), admin, cat.ID); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if repo.data[cat.ID] != nil {
		t.Error("category still present after delete")
	}
}

func TestService_Delete_InUse(t *testing.T) {
	repo := newStub()
	svc := &catUC.Service{Repo: repo}
	cat, err := svc.Create(context.Background(), admin, catUC.CreateInput{Name: "Busy One"})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	repo.articles[cat.ID] = 3

	if err := svc.Delete(context.Background(), admin, cat.ID); !errors.Is(err, catUC.ErrCategoryInUse) {
		t.Errorf("err = %v, want ErrCategoryInUse", err)
	}
}

func TestService_List(t *testing.T) {
	repo := newStub()
	svc := &catUC.Service{Repo: repo}
	cat, err := svc.Create(context.Background(), admin, catUC.CreateInput{Name: "Listed"})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	repo.articles[cat.ID] = 5

	got, err := svc.List(context.Background(), author)
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].ArticleCount != 5 {
		t.Errorf("ArticleCount = %d, want 5", got[0].ArticleCount)
	}
}
