package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"backoffice-cms/internal/repository"
)

// Collector periodically refreshes the business gauges from storage so the
// /metrics endpoint reflects database state without per-request queries.
type Collector struct {
	Articles   repository.ArticleRepository
	Users      repository.UserRepository
	Categories repository.CategoryRepository
	Logger     *slog.Logger

	// Timeout bounds a single refresh run. Zero means 30 seconds.
	Timeout time.Duration
}

// Start refreshes once immediately, then schedules refreshes on the given
// cron expression (e.g. "@every 1m"). The returned cron must be stopped by
// the caller on shutdown.
func (c *Collector) Start(schedule string) (*cron.Cron, error) {
	c.Refresh(context.Background())

	runner := cron.New()
	if _, err := runner.AddFunc(schedule, func() {
		c.Refresh(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("Start: %w", err)
	}
	runner.Start()
	return runner, nil
}

// Refresh reloads every gauge. Failures are logged and skipped so one
// broken query does not block the remaining gauges.
func (c *Collector) Refresh(ctx context.Context) {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if counts, err := c.Articles.CountByStatus(ctx); err != nil {
		c.Logger.Warn("article gauge refresh failed", slog.Any("error", err))
	} else {
		var total int64
		for _, sc := range counts {
			UpdateArticlesByStatus(string(sc.Status), sc.Count)
			total += sc.Count
		}
		UpdateArticlesTotal(total)
	}

	if count, err := c.Users.Count(ctx); err != nil {
		c.Logger.Warn("user gauge refresh failed", slog.Any("error", err))
	} else {
		UpdateUsersTotal(count)
	}

	if cats, err := c.Categories.List(ctx); err != nil {
		c.Logger.Warn("category gauge refresh failed", slog.Any("error", err))
	} else {
		UpdateCategoriesTotal(int64(len(cats)))
	}
}
