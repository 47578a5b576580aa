package metrics

// UpdateArticlesTotal updates the total count of articles in the database.
// This gauge should be updated periodically to reflect the current state.
func UpdateArticlesTotal(count int64) {
	ArticlesTotal.Set(float64(count))
}

// UpdateArticlesByStatus updates the article count for one publication state.
func UpdateArticlesByStatus(status string, count int64) {
	ArticlesByStatus.WithLabelValues(status).Set(float64(count))
}

// UpdateUsersTotal updates the total count of user accounts.
func UpdateUsersTotal(count int64) {
	UsersTotal.Set(float64(count))
}

// UpdateCategoriesTotal updates the total count of categories.
func UpdateCategoriesTotal(count int64) {
	CategoriesTotal.Set(float64(count))
}

// RecordArticleView records a single article detail view.
func RecordArticleView() {
	ArticleViewsTotal.Inc()
}
