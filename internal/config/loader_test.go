package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "addr: :9999\ncheckpoints_dir: /ckpt\nlora_dir: /lora\ncors_origins:\n  - http://a\n  - http://b\nscan_timeout_seconds: 5\n")
	cfg, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if cfg.Addr != ":9999" || cfg.CheckpointsDir != "/ckpt" || cfg.LoRADir != "/lora" || cfg.ScanTimeoutSeconds != 5 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b" {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"addr":":7070","vae_dir":"/vae","detection_dir":"/det","detection_ext":".onnx","model_extensions":[".gguf"]}`)
	cfg, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if cfg.Addr != ":7070" || cfg.VAEDir != "/vae" || cfg.DetectionDir != "/det" || cfg.DetectionExt != ".onnx" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if len(cfg.ModelExtensions) != 1 || cfg.ModelExtensions[0] != ".gguf" {
		t.Fatalf("unexpected extensions: %v", cfg.ModelExtensions)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "addr=\":8081\"\npositive_presets_dir=\"/pos\"\nnegative_presets_dir=\"/neg\"\nelements_dir=\"/el\"\nlog_format=\"json\"\n")
	cfg, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if cfg.Addr != ":8081" || cfg.PositivePresetsDir != "/pos" || cfg.NegativePresetsDir != "/neg" || cfg.ElementsDir != "/el" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil { t.Fatalf("expected error on empty path") }
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil { t.Fatalf("expected unsupported extension error") }
}
