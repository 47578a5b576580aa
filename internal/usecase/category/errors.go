package category

import "errors"

var (
	// ErrCategoryNotFound is returned when no category matches the given ID.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCategoryID is returned when the requested ID is zero or negative.
	ErrInvalidCategoryID = errors.New("invalid category ID")

	// ErrCategoryInUse is returned when deleting a category that still has articles.
	ErrCategoryInUse = errors.New("category still has articles assigned")
)
