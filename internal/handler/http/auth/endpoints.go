package auth

import "strings"

// defaultPublicEndpoints defines endpoints that don't require authentication.
// These endpoints are accessible without a valid JWT token.
//
// Justification for each public endpoint:
// - /healthz, /readyz, /livez: Required for orchestration health checks (Kubernetes, Docker, monitoring)
// - /metrics: Required for Prometheus scraping (typically accessed by monitoring systems)
// - /auth/login: Token generation endpoint (can't require token to get token)
// - /auth/register: Public self-registration
var defaultPublicEndpoints = []string{
	"/healthz",
	"/readyz",
	"/livez",
	"/metrics",
	"/auth/login",
	"/auth/register",
}

var publicEndpoints = defaultPublicEndpoints

// SetPublicEndpoints replaces the public endpoint list, typically from the
// security configuration at startup. An empty list restores the defaults.
func SetPublicEndpoints(endpoints []string) {
	if len(endpoints) == 0 {
		publicEndpoints = defaultPublicEndpoints
		return
	}
	publicEndpoints = endpoints
}

// IsPublicEndpoint checks if a given path is a public endpoint.
// Public endpoints can be accessed without authentication.
//
// Matching logic:
// - Endpoints ending with '/' use prefix matching (e.g., /docs/* matches /docs/index.html)
// - Endpoints without '/' require exact match or query params only (e.g., /healthz matches /healthz?x=1 but not /healthz/detail)
//
// Example:
//
//	IsPublicEndpoint("/healthz")         // true
//	IsPublicEndpoint("/healthz?x=1")     // true (query params OK)
//	IsPublicEndpoint("/healthz/detail")  // false (subpath not allowed)
//	IsPublicEndpoint("/healthzz")        // false (different endpoint)
//	IsPublicEndpoint("/articles")        // false
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range publicEndpoints {
		// Endpoints ending with '/' use prefix matching (for nested paths)
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}

		// For endpoints without trailing '/', only allow exact match, trailing slash, or query params
		// This prevents /healthz from matching /healthz/detail or /healthzz
		if path == endpoint {
			return true
		}
		// Allow trailing slash (e.g., /auth/login/ is same as /auth/login)
		if path == endpoint+"/" {
			return true
		}
		// Allow query parameters (e.g., /healthz?format=json)
		if strings.HasPrefix(path, endpoint+"?") {
			return true
		}
	}
	return false
}
