package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

type testSettings struct {
	HTTP struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"http"`
	ExtractData *bool `mapstructure:"extract_data"`
}

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "billing.yml")
	content := `
http:
  base_url: https://billing.example.com
  timeout: 5s
extract_data: false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var s testSettings
	if err := Load("billing", &s, WithConfigFile(path)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.HTTP.BaseURL != "https://billing.example.com" {
		t.Errorf("expected base url, got %q", s.HTTP.BaseURL)
	}
	if s.HTTP.Timeout != 5*time.Second {
		t.Errorf("expected 5s, got %v", s.HTTP.Timeout)
	}
	if s.ExtractData == nil || *s.ExtractData {
		t.Errorf("expected extract_data=false, got %v", s.ExtractData)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "billing.yml")
	if err := os.WriteFile(path, []byte("http:\n  base_url: https://file.example.com\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("BILLING_HTTP_BASE_URL", "https://env.example.com")

	var s testSettings
	if err := Load("billing", &s, WithConfigFile(path)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.HTTP.BaseURL != "https://env.example.com" {
		t.Errorf("expected env override, got %q", s.HTTP.BaseURL)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("DOTENVTEST_HTTP_TIMEOUT=7s\n"), 0644); err != nil {
		t.Fatalf("failed to write env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("DOTENVTEST_HTTP_TIMEOUT") })

	var s testSettings
	if err := Load("dotenvtest", &s, WithConfigFile(filepath.Join(dir, "missing.yml")), WithEnvFile(envPath)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.HTTP.Timeout != 7*time.Second {
		t.Errorf("expected 7s from .env, got %v", s.HTTP.Timeout)
	}
}

func TestLoadMissingFile(t *testing.T) {
	var s testSettings
	if err := Load("nonexistent-client", &s, WithConfigFile("/nonexistent/path.yml")); err != nil {
		t.Fatalf("expected Load to succeed with missing file, got %v", err)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config/billing.yaml": true,
		"./.env":                true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("billing", LoaderConfig{})
	if files.ConfigFile != "./config/billing.yaml" {
		t.Errorf("expected ./config/billing.yaml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("expected ./.env, got %q", files.EnvFile)
	}
}

func TestResolverExplicitPaths(t *testing.T) {
	resolver := &Resolver{FileSystem: &mockFS{}}
	files := resolver.ResolveFiles("x", LoaderConfig{ConfigFile: "/a.yml", EnvFile: "/b.env"})
	if files.ConfigFile != "/a.yml" || files.EnvFile != "/b.env" {
		t.Errorf("expected explicit paths, got %+v", files)
	}
}

func TestEnvPrefix(t *testing.T) {
	if got := EnvPrefix("billing-api"); got != "BILLING_API" {
		t.Errorf("expected BILLING_API, got %q", got)
	}
}

func TestKeyVariants(t *testing.T) {
	got := keyVariants("HTTP_BASE_URL")
	for _, want := range []string{"http_base_url", "http.base.url", "http.base_url", "http_base.url"} {
		if !slices.Contains(got, want) {
			t.Errorf("expected variant %q in %v", want, got)
		}
	}
	if got := keyVariants("TIMEOUT"); len(got) != 1 || got[0] != "timeout" {
		t.Errorf("expected single variant, got %v", got)
	}
}
