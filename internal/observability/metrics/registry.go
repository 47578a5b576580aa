// Package metrics provides centralized Prometheus metrics for the
// application's business-level state.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track application-specific state. The gauges are
// refreshed periodically by the Collector.
var (
	// ArticlesTotal tracks total number of articles in the database
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Total number of articles in the database",
		},
	)

	// ArticlesByStatus tracks article counts per publication state
	ArticlesByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "articles_by_status",
			Help: "Number of articles per publication status",
		},
		[]string{"status"},
	)

	// UsersTotal tracks total number of accounts in the database
	UsersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "users_total",
			Help: "Total number of user accounts in the database",
		},
	)

	// CategoriesTotal tracks total number of categories in the database
	CategoriesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "categories_total",
			Help: "Total number of categories in the database",
		},
	)

	// ArticleViewsTotal counts recorded article detail views
	ArticleViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "article_views_total",
			Help: "Total number of recorded article detail views",
		},
	)
)
