package e2e

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"webdraw/internal/config"
	"webdraw/internal/httpapi"
	"webdraw/internal/studio"
)

// layout holds one temp directory per catalog.
type layout struct {
	checkpoints, vae, lora   string
	positive, negative       string
	detection, elements      string
}

func newLayout(t *testing.T) layout {
	t.Helper()
	root := t.TempDir()
	l := layout{
		checkpoints: filepath.Join(root, "checkpoints"),
		vae:         filepath.Join(root, "vae"),
		lora:        filepath.Join(root, "lora"),
		positive:    filepath.Join(root, "presets", "positive"),
		negative:    filepath.Join(root, "presets", "negative"),
		detection:   filepath.Join(root, "detection"),
		elements:    filepath.Join(root, "elements"),
	}
	for _, d := range []string{l.checkpoints, l.vae, l.lora, l.positive, l.negative, l.detection, l.elements} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
	return l
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func newServer(t *testing.T, l layout) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	cfg.CheckpointsDir = l.checkpoints
	cfg.VAEDir = l.vae
	cfg.LoRADir = l.lora
	cfg.PositivePresetsDir = l.positive
	cfg.NegativePresetsDir = l.negative
	cfg.DetectionDir = l.detection
	cfg.ElementsDir = l.elements
	httpapi.SetCORSOptions(true, cfg.CORSOrigins, nil, nil)
	t.Cleanup(func() { httpapi.SetCORSOptions(false, nil, nil, nil) })
	srv := httptest.NewServer(httpapi.NewMux(studio.New(cfg, zerolog.Nop())))
	t.Cleanup(srv.Close)
	return srv
}

func httpGet(t *testing.T, url string, hdr ...string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}
