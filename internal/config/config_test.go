package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// unsetenv clears keys for the test and restores them afterwards.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "ADDR", "CONTENT_DIR", "SETTLE_DELAY")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.ContentDir != "content" {
		t.Errorf("Expected default content dir, got %q", cfg.ContentDir)
	}
	if cfg.SettleDelay != 0 {
		t.Errorf("Expected zero settle delay, got %s", cfg.SettleDelay)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("SETTLE_DELAY", "400ms")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Expected :9090, got %q", cfg.Addr)
	}
	if cfg.SettleDelay != 400*time.Millisecond {
		t.Errorf("Expected 400ms, got %s", cfg.SettleDelay)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	unsetenv(t, "CONTENT_DIR")
	t.Setenv("ADDR", ":7070")

	path := filepath.Join(t.TempDir(), ".env")
	data := "CONTENT_DIR=/srv/content\nADDR=:1111\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.ContentDir != "/srv/content" {
		t.Errorf("Expected content dir from file, got %q", cfg.ContentDir)
	}
	if cfg.Addr != ":7070" {
		t.Errorf("Expected environment to win over file, got %q", cfg.Addr)
	}
}

func TestLoad_MissingEnvFileIsFine(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("Expected missing .env to be ignored, got %v", err)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("SETTLE_DELAY", "soon")
	if _, err := Load(""); err == nil {
		t.Error("Expected error for bad duration")
	}
}

func TestLoad_NegativeDelay(t *testing.T) {
	t.Setenv("SETTLE_DELAY", "-1s")
	if _, err := Load(""); err == nil {
		t.Error("Expected error for negative delay")
	}
}
