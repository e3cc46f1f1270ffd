package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	conf, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if conf.OutputDir != "." {
		t.Fatalf("expected output dir '.', got %q", conf.OutputDir)
	}
	if conf.Quality != 85 {
		t.Fatalf("expected quality 85, got %g", conf.Quality)
	}
	if conf.Engine != "imaging" || conf.Filter != "lanczos" {
		t.Fatalf("unexpected engine/filter %s/%s", conf.Engine, conf.Filter)
	}
	if conf.RateLimitDuration() != 5*time.Second {
		t.Fatalf("expected 5s rate limit window, got %s", conf.RateLimitDuration())
	}
	if conf.S3Enabled() {
		t.Fatalf("S3 should be disabled by default")
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "/tmp/out")
	t.Setenv("QUALITY", "60")
	t.Setenv("ENGINE", "nfnt")
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")

	conf, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if conf.OutputDir != "/tmp/out" || conf.Quality != 60 || conf.Engine != "nfnt" {
		t.Fatalf("environment not applied: %+v", conf)
	}
	if !conf.S3Enabled() {
		t.Fatalf("S3 should be enabled with an endpoint")
	}
}

func TestLoad_FileOverridesEnvironment(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "/from/env")
	t.Setenv("FILTER", "box")

	path := filepath.Join(t.TempDir(), "imgresize.toml")
	data := []byte("output_dir = \"/from/file\"\nquality = 70.0\nauto_orient = true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	conf, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if conf.OutputDir != "/from/file" {
		t.Fatalf("expected file output dir, got %q", conf.OutputDir)
	}
	if conf.Quality != 70 || !conf.AutoOrient {
		t.Fatalf("file values not applied: %+v", conf)
	}
	if conf.Filter != "box" {
		t.Fatalf("expected environment filter to survive, got %q", conf.Filter)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("QUALITY", "0")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for quality 0")
	}

	t.Setenv("QUALITY", "80")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
