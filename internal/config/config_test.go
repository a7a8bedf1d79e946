package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"TIPCALC_ADDR", "TIPCALC_LOCALE", "TIPCALC_METRICS", "TIPCALC_CORS_ORIGIN"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.Locale != "en-US" || !cfg.Metrics || cfg.CORSOrigin != "*" {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("TIPCALC_ADDR", ":9090")
	t.Setenv("TIPCALC_LOCALE", "fr-FR")
	t.Setenv("TIPCALC_METRICS", "false")
	t.Setenv("TIPCALC_CORS_ORIGIN", "https://tips.example")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.Locale != "fr-FR" || cfg.Metrics || cfg.CORSOrigin != "https://tips.example" {
		t.Errorf("config = %+v", cfg)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := map[string]string{
		"TIPCALC_METRICS": "maybe",
		"TIPCALC_LOCALE":  "not a locale",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TIPCALC_ADDR=:7070\n"), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	chdir(t, dir)
	// Registered with t.Setenv so the value godotenv sets is restored afterwards.
	t.Setenv("TIPCALC_ADDR", "")
	os.Unsetenv("TIPCALC_ADDR")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Errorf("Addr = %q, want :7070 from .env", cfg.Addr)
	}
}

func TestLoadWithoutDotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	if _, err := Load(); err != nil {
		t.Fatalf("Load without .env failed: %v", err)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restoring working directory failed: %v", err)
		}
	})
}
