package entity

import "time"

// DefaultCategoryColor is used when no color is supplied on creation.
const DefaultCategoryColor = "#6B7280"

// Category groups articles for the admin UI. Name and slug are unique.
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
