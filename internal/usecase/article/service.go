package article

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"backoffice-cms/internal/common/pagination"
	"backoffice-cms/internal/domain/entity"
	"backoffice-cms/internal/pkg/slug"
	"backoffice-cms/internal/repository"
	"backoffice-cms/internal/service/authz"
)

// Service provides article management use cases. Every mutation authorizes
// the acting user against the policy table before touching the repository,
// and all lifecycle decisions run through PrepareCreate / PrepareUpdate so
// the rules cannot diverge between endpoints.
type Service struct {
	Repo       repository.ArticleRepository
	Categories repository.CategoryRepository
	// Now is injected for deterministic publish timestamps in tests.
	// Defaults to time.Now.
	Now Clock
}

// PaginatedResult represents the result of a paginated article listing.
type PaginatedResult struct {
	Data       []repository.ArticleWithRelations
	Pagination pagination.Metadata
}

// Stats aggregates article counts for the admin dashboard.
type Stats struct {
	Total    int64
	ByStatus []repository.StatusCount
}

func (s *Service) clock() Clock {
	if s.Now != nil {
		return s.Now
	}
	return time.Now
}

// List retrieves articles visible to the actor, applying the requested
// filters and pagination. Actors whose read grant is own-scoped (authors)
// only ever see their own articles regardless of the supplied filters.
func (s *Service) List(ctx context.Context, actor authz.Actor, filters repository.ArticleFilters, params pagination.Params) (*PaginatedResult, error) {
	if !actor.IsActive {
		return nil, authz.Deny(authz.ReasonAccountDisabled).Err(authz.ActionRead, authz.ResourceArticle)
	}
	if authz.ScopeFor(actor.Role, authz.ResourceArticle, authz.ActionRead) == authz.ScopeOwn {
		id := actor.ID
		filters.AuthorID = &id
	}

	total, err := s.Repo.Count(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	offset := pagination.CalculateOffset(params.Page, params.Limit)
	articles, err := s.Repo.List(ctx, filters, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &PaginatedResult{
		Data: articles,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}

// Get retrieves a single article with its relations. Reading bumps the view
// counter asynchronously; a failed increment is logged, never surfaced.
func (s *Service) Get(ctx context.Context, actor authz.Actor, id int64) (*repository.ArticleWithRelations, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.GetWithRelations(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	decision := authz.Authorize(actor, authz.ActionRead, authz.ResourceArticle,
		&authz.Resource{Kind: authz.ResourceArticle, OwnerID: art.Article.AuthorID})
	if err := decision.Err(authz.ActionRead, authz.ResourceArticle); err != nil {
		return nil, err
	}

	go func() {
		incrCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Repo.IncrementViewCount(incrCtx, id); err != nil {
			slog.Default().Warn("view count increment failed",
				slog.Int64("article_id", id),
				slog.Any("error", err))
		}
	}()

	return art, nil
}

// Create validates and persists a new article. A slug collision is retried
// once with a timestamp-suffixed slug before the conflict is surfaced.
func (s *Service) Create(ctx context.Context, actor authz.Actor, in CreateInput) (*entity.Article, error) {
	decision := authz.Authorize(actor, authz.ActionCreate, authz.ResourceArticle, nil)
	if err := decision.Err(authz.ActionCreate, authz.ResourceArticle); err != nil {
		return nil, err
	}

	// Only admins may create on behalf of another user.
	if in.AuthorID == 0 || actor.Role != entity.RoleAdmin {
		in.AuthorID = actor.ID
	}

	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	art, err := PrepareCreate(in, authz.CanPublish(actor.Role), s.clock())
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		if entity.IsConflict(err, "slug") {
			art.Slug = slug.WithSuffix(art.Slug, fmt.Sprintf("%d", s.clock()().UnixMilli()))
			if retryErr := s.Repo.Create(ctx, art); retryErr != nil {
				return nil, fmt.Errorf("create article: %w", retryErr)
			}
			return art, nil
		}
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Update applies a patch to an existing article, enforcing ownership for
// author-role actors and running the full lifecycle transition rules.
func (s *Service) Update(ctx context.Context, actor authz.Actor, in UpdateInput) (*entity.Article, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArticleID
	}

	existing, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if existing == nil {
		return nil, ErrArticleNotFound
	}

	decision := authz.Authorize(actor, authz.ActionUpdate, authz.ResourceArticle,
		&authz.Resource{Kind: authz.ResourceArticle, OwnerID: existing.AuthorID})
	if err := decision.Err(authz.ActionUpdate, authz.ResourceArticle); err != nil {
		return nil, err
	}

	if in.CategoryID != nil {
		if err := s.checkCategory(ctx, in.CategoryID); err != nil {
			return nil, err
		}
	}

	updated, _, err := PrepareUpdate(existing, in, authz.CanPublish(actor.Role), s.clock())
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return updated, nil
}

// Delete removes an article. Authors may only delete their own.
func (s *Service) Delete(ctx context.Context, actor authz.Actor, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if existing == nil {
		return ErrArticleNotFound
	}

	decision := authz.Authorize(actor, authz.ActionDelete, authz.ResourceArticle,
		&authz.Resource{Kind: authz.ResourceArticle, OwnerID: existing.AuthorID})
	if err := decision.Err(authz.ActionDelete, authz.ResourceArticle); err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// Duplicate copies an article as a fresh draft owned by the original author.
// The copy gets a " (Copy)" title suffix and a timestamped slug so it never
// collides with the source, zeroed view count and no publish timestamp.
func (s *Service) Duplicate(ctx context.Context, actor authz.Actor, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	original, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if original == nil {
		return nil, ErrArticleNotFound
	}

	decision := authz.Authorize(actor, authz.ActionRead, authz.ResourceArticle,
		&authz.Resource{Kind: authz.ResourceArticle, OwnerID: original.AuthorID})
	if err := decision.Err(authz.ActionRead, authz.ResourceArticle); err != nil {
		return nil, err
	}
	decision = authz.Authorize(actor, authz.ActionCreate, authz.ResourceArticle, nil)
	if err := decision.Err(authz.ActionCreate, authz.ResourceArticle); err != nil {
		return nil, err
	}

	copyArt := &entity.Article{
		Title:      original.Title + " (Copy)",
		Slug:       slug.WithSuffix(original.Slug, fmt.Sprintf("copy-%d", s.clock()().UnixMilli())),
		Summary:    original.Summary,
		Content:    original.Content,
		Status:     entity.StatusDraft,
		AuthorID:   original.AuthorID,
		CategoryID: original.CategoryID,
	}

	if err := s.Repo.Create(ctx, copyArt); err != nil {
		return nil, fmt.Errorf("duplicate article: %w", err)
	}
	return copyArt, nil
}

// GetStats returns article counts grouped by status for the dashboard.
func (s *Service) GetStats(ctx context.Context, actor authz.Actor) (*Stats, error) {
	decision := authz.Authorize(actor, authz.ActionViewStats, authz.ResourceArticle, nil)
	if err := decision.Err(authz.ActionViewStats, authz.ResourceArticle); err != nil {
		return nil, err
	}

	counts, err := s.Repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles by status: %w", err)
	}

	stats := &Stats{ByStatus: counts}
	for _, c := range counts {
		stats.Total += c.Count
	}
	return stats, nil
}

func (s *Service) checkCategory(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	if s.Categories == nil {
		return nil
	}
	cat, err := s.Categories.Get(ctx, *id)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if cat == nil {
		return ErrCategoryNotFound
	}
	return nil
}
