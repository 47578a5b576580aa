package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/\d+$`), Template: "/articles/:id"},
	{Pattern: regexp.MustCompile(`^/articles/\d+/duplicate$`), Template: "/articles/:id/duplicate"},

	{Pattern: regexp.MustCompile(`^/categories/\d+$`), Template: "/categories/:id"},

	{Pattern: regexp.MustCompile(`^/users/\d+$`), Template: "/users/:id"},
	{Pattern: regexp.MustCompile(`^/users/\d+/role$`), Template: "/users/:id/role"},
	{Pattern: regexp.MustCompile(`^/users/\d+/status$`), Template: "/users/:id/status"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /articles/123) to template format (e.g., /articles/:id).
// Static paths stay unchanged.
//
// Examples:
//
//	NormalizePath("/articles/123")           // "/articles/:id"
//	NormalizePath("/articles/42/duplicate")  // "/articles/:id/duplicate"
//	NormalizePath("/articles/stats/overview") // unchanged
//	NormalizePath("/healthz")                // unchanged
//	NormalizePath("/articles/123?page=1")    // "/articles/:id"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// Static paths like /healthz, /metrics and /auth/login pass through unchanged
	return path
}
