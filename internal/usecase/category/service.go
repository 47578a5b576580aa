package category

import (
	"context"
	"fmt"

	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/pkg/slug"
	"backoffice-cms/internal/repository"
	"backoffice-cms/internal/service/authz"
)

// CreateInput carries the fields accepted when creating a category.
type CreateInput struct {
	Name        string
	Slug        string
	Description string
	Color       string
}

// UpdateInput carries a partial category update. Nil fields stay untouched.
type UpdateInput struct {
	ID          int64
	Name        *string
	Slug        *string
	Description *string
	Color       *string
}

// Service implements category management. Categories are a shared taxonomy,
// so every write goes through the authorization policy first.
type Service struct {
	Repo repository.CategoryRepository
}

// List returns all categories with their article counts.
func (s *Service) List(ctx context.Context, actor authz.Actor) ([]repository.CategoryWithCount, error) {
	decision := authz.Authorize(actor, authz.ActionRead, authz.ResourceCategory, nil)
	if err := decision.Err(authz.ActionRead, authz.ResourceCategory); err != nil {
		return nil, err
	}

	cats, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func (s *Service) Get(ctx context.Context, actor authz.Actor, id int64) (*entity.Category, error) {
	if id <= 0 {
		return nil, ErrInvalidCategoryID
	}
	decision := authz.Authorize(actor, authz.ActionRead, authz.ResourceCategory, nil)
	if err := decision.Err(authz.ActionRead, authz.ResourceCategory); err != nil {
		return nil, err
	}

	cat, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}
	return cat, nil
}

func (s *Service) Create(ctx context.Context, actor authz.Actor, in CreateInput) (*entity.Category, error) {
	decision := authz.Authorize(actor, authz.ActionCreate, authz.ResourceCategory, nil)
	if err := decision.Err(authz.ActionCreate, authz.ResourceCategory); err != nil {
		return nil, err
	}

	if verr := entity.ValidateCategoryName(in.Name); verr != nil {
		return nil, verr
	}

	s2 := in.Slug
	if s2 == "" {
		s2 = slug.Generate(in.Name)
	}
	if verr := entity.ValidateSlug(s2); verr != nil {
		return nil, verr
	}

	color := in.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}
	if verr := entity.ValidateColor(color); verr != nil {
		return nil, verr
	}

	cat := &entity.Category{
		Name:        in.Name,
		Slug:        s2,
		Description: in.Description,
		Color:       color,
	}
	if err := s.Repo.Create(ctx, cat); err != nil {
		if entity.IsConflict(err, "") {
			return nil, err
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return cat, nil
}

func (s *Service) Update(ctx context.Context, actor authz.Actor, in UpdateInput) (*entity.Category, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidCategoryID
	}
	decision := authz.Authorize(actor, authz.ActionUpdate, authz.ResourceCategory, nil)
	if err := decision.Err(authz.ActionUpdate, authz.ResourceCategory); err != nil {
		return nil, err
	}

	cat, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}

	if in.Name != nil && *in.Name != cat.Name {
		if verr := entity.ValidateCategoryName(*in.Name); verr != nil {
			return nil, verr
		}
		cat.Name = *in.Name
		// Renaming regenerates the slug unless one is given explicitly.
		if in.Slug == nil {
			cat.Slug = slug.Generate(cat.Name)
		}
	}
	if in.Slug != nil {
		cat.Slug = *in.Slug
	}
	if verr := entity.ValidateSlug(cat.Slug); verr != nil {
		return nil, verr
	}
	if in.Description != nil {
		cat.Description = *in.Description
	}
	if in.Color != nil {
		if verr := entity.ValidateColor(*in.Color); verr != nil {
			return nil, verr
		}
		cat.Color = *in.Color
	}

	if err := s.Repo.Update(ctx, cat); err != nil {
		if entity.IsConflict(err, "") {
			return nil, err
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return cat, nil
}

// Delete removes a category. Categories that still have articles assigned
// are refused so articles never silently lose their taxonomy.
func (s *Service) Delete(ctx context.Context, actor authz.Actor, id int64) error {
	if id <= 0 {
		return ErrInvalidCategoryID
	}
	decision := authz.Authorize(actor, authz.ActionDelete, authz.ResourceCategory, nil)
	if err := decision.Err(authz.ActionDelete, authz.ResourceCategory); err != nil {
		return err
	}

	cat, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if cat == nil {
		return ErrCategoryNotFound
	}

	n, err := s.Repo.ArticleCount(ctx, id)
	if err != nil {
		return fmt.Errorf("count articles in category: %w", err)
	}
	if n > 0 {
		return ErrCategoryInUse
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
