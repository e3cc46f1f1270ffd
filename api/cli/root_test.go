package cli

import (
	"bytes"
	"context"
	"github.com/disintegration/imaging"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fixture(t *testing.T, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := imaging.Save(image.NewNRGBA(image.Rect(0, 0, w, h)), path); err != nil {
		t.Fatalf("save fixture: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), "test", args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_HeightOnly(t *testing.T) {
	src := fixture(t, "photo.jpg", 1000, 500)
	out := t.TempDir()

	code, stdout, stderr := run(t, "-i", src, "-o", out, "--height", "100")
	if code != ExitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}

	want := filepath.Join(out, "photo__200x100.jpg")
	if !strings.Contains(stdout, "Image resized successfully: "+want) {
		t.Fatalf("unexpected stdout %q", stdout)
	}
	img, err := imaging.Open(want)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 100 {
		t.Fatalf("expected 200x100, got %v", img.Bounds())
	}
}

func TestRun_TargetImageAliasAndConfigOutput(t *testing.T) {
	src := fixture(t, "photo.png", 1000, 500)
	out := t.TempDir()
	t.Setenv("OUTPUT_DIR", out)

	code, _, stderr := run(t, "-t", src, "--scale", "0.5")
	if code != ExitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(out, "photo__500x250.png")); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestRun_AdvisoryWarnsAndResizes(t *testing.T) {
	src := fixture(t, "photo.png", 100, 50)
	out := t.TempDir()

	code, _, stderr := run(t, "-i", src, "-o", out, "--width", "20", "--height", "20")
	if code != ExitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	if !strings.Contains(stderr, "warning:") {
		t.Fatalf("expected warning on stderr, got %q", stderr)
	}
	if _, err := os.Stat(filepath.Join(out, "photo__20x20.png")); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestRun_ValidationErrors(t *testing.T) {
	src := fixture(t, "photo.png", 100, 50)

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"scale with both", []string{"--width", "10", "--height", "10", "--scale", "2"}, "cannot combine explicit width and height"},
		{"scale with one", []string{"--height", "10", "--scale", "2"}, "cannot combine a single dimension"},
		{"zero width", []string{"--width", "0"}, "greater than zero"},
		{"negative scale", []string{"--scale", "-1"}, "greater than zero"},
		{"degenerate", []string{"--scale", "0.001"}, "leaves no pixels"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := t.TempDir()
			args := append([]string{"-i", src, "-o", out}, tc.args...)

			code, stdout, stderr := run(t, args...)
			if code != ExitInvalidArg {
				t.Fatalf("expected exit %d, got %d: %s", ExitInvalidArg, code, stderr)
			}
			if !strings.Contains(stderr, tc.msg) {
				t.Fatalf("expected %q in stderr, got %q", tc.msg, stderr)
			}
			if stdout != "" {
				t.Fatalf("expected no confirmation, got %q", stdout)
			}
			entries, _ := os.ReadDir(out)
			if len(entries) != 0 {
				t.Fatalf("expected no files written, got %d", len(entries))
			}
		})
	}
}

func TestRun_Failures(t *testing.T) {
	code, _, stderr := run(t, "--width", "10")
	if code != ExitFailure || !strings.Contains(stderr, "input image is required") {
		t.Fatalf("expected missing input failure, got %d: %s", code, stderr)
	}

	code, _, _ = run(t, "-i", filepath.Join(t.TempDir(), "missing.png"), "--width", "10")
	if code != ExitFailure {
		t.Fatalf("expected exit %d for missing file, got %d", ExitFailure, code)
	}

	code, _, _ = run(t, "-i", "photo.png", "--width", "ten")
	if code != ExitFailure {
		t.Fatalf("expected exit %d for malformed flag, got %d", ExitFailure, code)
	}

	code, _, stderr = run(t, "-i", "s3://bucket/photo.png", "--width", "10")
	if code != ExitFailure || !strings.Contains(stderr, "S3 is not configured") {
		t.Fatalf("expected S3 not configured failure, got %d: %s", code, stderr)
	}
}
