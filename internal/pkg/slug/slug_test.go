package slug_test

import (
	"regexp"
	"testing"

	"backoffice-cms/internal/pkg/slug"
)

var slugShape = regexp.MustCompile(`^[a-z0-9-]*$`)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "simple title", title: "Hello World", want: "hello-world"},
		{name: "accented characters", title: "Café Système", want: "cafe-systeme"},
		{name: "apostrophe and punctuation", title: "L'Été à Paris!", want: "lete-a-paris"},
		{name: "numbers preserved", title: "Go 1.23 Released", want: "go-123-released"},
		{name: "whitespace runs collapse", title: "too   many    spaces", want: "too-many-spaces"},
		{name: "hyphen runs collapse", title: "pre--existing --- hyphens", want: "pre-existing-hyphens"},
		{name: "leading and trailing trimmed", title: "  -- edges -- ", want: "edges"},
		{name: "empty title", title: "", want: ""},
		{name: "only punctuation", title: "!!! ???", want: ""},
		{name: "mixed case", title: "MiXeD CaSe TiTLe", want: "mixed-case-title"},
		{name: "uppercase accents", title: "ÉCOLE Française", want: "ecole-francaise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slug.Generate(tt.title)
			if got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.title, got, tt.want)
			}
			if !slugShape.MatchString(got) {
				t.Errorf("Generate(%q) = %q, does not match ^[a-z0-9-]*$", tt.title, got)
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	titles := []string{"Hello World", "Café Système", "Go 1.23 Released", ""}
	for _, title := range titles {
		first := slug.Generate(title)
		second := slug.Generate(title)
		if first != second {
			t.Errorf("Generate(%q) not deterministic: %q vs %q", title, first, second)
		}
	}
}

func TestWithSuffix(t *testing.T) {
	if got := slug.WithSuffix("hello-world", "copy-123"); got != "hello-world-copy-123" {
		t.Errorf("WithSuffix = %q, want %q", got, "hello-world-copy-123")
	}
	if got := slug.WithSuffix("", "123"); got != "123" {
		t.Errorf("WithSuffix on empty slug = %q, want %q", got, "123")
	}
}
