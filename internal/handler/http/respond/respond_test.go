package respond_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"backoffice-cms/internal/handler/http/respond"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.JSON(rec, 201, map[string]string{"slug": "hello-world"})

	if rec.Code != 201 {
		t.Errorf("code = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["slug"] != "hello-world" {
		t.Errorf("body = %v", body)
	}
}

func TestJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.JSON(rec, 204, nil)

	if rec.Code != 204 {
		t.Errorf("code = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestFieldError(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.FieldError(rec, 409, "slug", "slug already exists")

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["field"] != "slug" || body["error"] != "slug already exists" {
		t.Errorf("body = %v", body)
	}
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		err      error
		wantBody string
	}{
		{"validation error passes through", 400, errors.New("title must be between 3 and 255 characters"), "title must be between 3 and 255 characters"},
		{"not found passes through", 404, errors.New("article not found"), "article not found"},
		{"db error is hidden", 400, errors.New("pq: connection refused"), "internal server error"},
		{"500 always hidden", 500, errors.New("field is invalid"), "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respond.SafeError(rec, tt.code, tt.err)

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body["error"] != tt.wantBody {
				t.Errorf("error = %q, want %q", body["error"], tt.wantBody)
			}
		})
	}
}
