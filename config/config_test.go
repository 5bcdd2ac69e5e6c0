package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Pin the ambient environment: t.Setenv registers the restore, the
	// unset makes Load see no value at all.
	for _, key := range []string{"BACKEND_URL", "REQUEST_TIMEOUT", "ARTICLE_LIMIT", "LOG_FILE", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.BackendURL != "http://localhost:8000" {
		t.Errorf("expected default backend URL, got %q", cfg.BackendURL)
	}
	if cfg.ArticleLimit != 20 {
		t.Errorf("expected default article limit 20, got %d", cfg.ArticleLimit)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("expected default timeout 15s, got %v", cfg.RequestTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://news.internal:9000")
	t.Setenv("ARTICLE_LIMIT", "5")
	t.Setenv("REQUEST_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.BackendURL != "http://news.internal:9000" {
		t.Errorf("backend URL not read from env, got %q", cfg.BackendURL)
	}
	if cfg.ArticleLimit != 5 {
		t.Errorf("article limit not read from env, got %d", cfg.ArticleLimit)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("timeout not read from env, got %v", cfg.RequestTimeout)
	}
}

func TestLoadRejectsNonPositiveLimit(t *testing.T) {
	t.Setenv("ARTICLE_LIMIT", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero article limit")
	}
}

func TestNextCategory(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"", "general"},
		{"general", "business"},
		{"entertainment", ""},
		{"bogus", ""},
	}

	for _, tt := range tests {
		if got := NextCategory(tt.current); got != tt.want {
			t.Errorf("NextCategory(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}
