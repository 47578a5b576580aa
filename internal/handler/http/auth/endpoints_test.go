package auth

import "testing"

func TestIsPublicEndpoint(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"health exact", "/healthz", true},
		{"health trailing slash", "/healthz/", true},
		{"health query params", "/healthz?format=json", true},
		{"health subpath", "/healthz/detail", false},
		{"similar prefix", "/healthzz", false},
		{"readiness", "/readyz", true},
		{"liveness", "/livez", true},
		{"metrics", "/metrics", true},
		{"login", "/auth/login", true},
		{"register", "/auth/register", true},
		{"me endpoint", "/auth/me", false},
		{"articles", "/articles", false},
		{"users", "/users/1", false},
		{"root", "/", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPublicEndpoint(tt.path); got != tt.want {
				t.Errorf("IsPublicEndpoint(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestSetPublicEndpoints(t *testing.T) {
	t.Cleanup(func() { SetPublicEndpoints(nil) })

	SetPublicEndpoints([]string{"/ping", "/docs/"})

	if !IsPublicEndpoint("/ping") {
		t.Error("IsPublicEndpoint(/ping) = false after override")
	}
	if !IsPublicEndpoint("/docs/index.html") {
		t.Error("IsPublicEndpoint(/docs/index.html) = false, prefix match expected")
	}
	if IsPublicEndpoint("/healthz") {
		t.Error("IsPublicEndpoint(/healthz) = true, default list should be replaced")
	}

	SetPublicEndpoints(nil)
	if !IsPublicEndpoint("/healthz") {
		t.Error("IsPublicEndpoint(/healthz) = false after restoring defaults")
	}
}
