package rest

import (
	"bytes"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"image"
	"image/png"
	"imgresize/config"
	"imgresize/converter"
	img "imgresize/converter/image"
	"imgresize/service"
	"imgresize/storage"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{
		AppName:                "imgresize-test",
		OutputDir:              t.TempDir(),
		Quality:                85,
		MaxUploadBytes:         1 << 20,
		RateLimitMaxRequests:   1000,
		RateLimitDurationInSec: 1,
		SwaggerFile:            filepath.Join(t.TempDir(), "missing.json"),
	}
	logger := zap.NewNop()
	r, err := img.NewResampler("imaging", "linear")
	if err != nil {
		t.Fatalf("NewResampler: %v", err)
	}
	conv := converter.New(img.MustStrategy(logger), false, logger)
	svc := service.NewResizeService(cfg, storage.NewRouter(storage.NewLocal(), nil), conv, r, logger)
	return NewApp(cfg, svc, logger)
}

func pngBody(t *testing.T, w, h int) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestResize_Scale(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/resize?scale=0.5&name=photo.png", pngBody(t, 1000, 500))
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %s", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != "inline; filename=photo__500x250.png" {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if adv := resp.Header.Get(HeaderAdvisory); adv != "" {
		t.Fatalf("unexpected advisory %q", adv)
	}

	out, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Bounds().Dx() != 500 || out.Bounds().Dy() != 250 {
		t.Fatalf("expected 500x250, got %v", out.Bounds())
	}
}

func TestResize_AdvisoryHeader(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/resize?width=40&height=40", pngBody(t, 80, 20))
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if adv := resp.Header.Get(HeaderAdvisory); adv != "aspect-ratio-risk" {
		t.Fatalf("expected aspect-ratio-risk advisory, got %q", adv)
	}
}

func TestResize_Errors(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		target string
		body   io.Reader
		status int
	}{
		{"conflicting", "/resize?width=10&scale=2", pngBody(t, 10, 10), http.StatusBadRequest},
		{"non-positive", "/resize?height=0", pngBody(t, 10, 10), http.StatusBadRequest},
		{"not a number", "/resize?width=abc", pngBody(t, 10, 10), http.StatusBadRequest},
		{"degenerate", "/resize?scale=0.01", pngBody(t, 10, 10), http.StatusBadRequest},
		{"not an image", "/resize?width=10", bytes.NewReader([]byte("hello")), http.StatusUnsupportedMediaType},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodPost, tc.target, tc.body), -1)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tc.status {
				body, _ := io.ReadAll(resp.Body)
				t.Fatalf("expected %d, got %d: %s", tc.status, resp.StatusCode, body)
			}
		})
	}
}
