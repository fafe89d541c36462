package config

import (
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Addr != ":8001" || cfg.DetectionExt != ".pt" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestMerge_OverridesNonZeroOnly(t *testing.T) {
	base := Default()
	got := base.Merge(Config{LoRADir: "/loras", CORSOrigins: []string{"http://studio"}, ScanTimeoutSeconds: -1})
	if got.LoRADir != "/loras" {
		t.Fatalf("lora dir not overridden: %q", got.LoRADir)
	}
	if got.CheckpointsDir != base.CheckpointsDir {
		t.Fatalf("checkpoints dir changed: %q", got.CheckpointsDir)
	}
	if len(got.CORSOrigins) != 1 || got.CORSOrigins[0] != "http://studio" {
		t.Fatalf("origins: %v", got.CORSOrigins)
	}
	if got.ScanTimeout() != 0 {
		t.Fatalf("negative timeout should disable, got %s", got.ScanTimeout())
	}
	if base.ScanTimeout() != 30*time.Second {
		t.Fatalf("base timeout: %s", base.ScanTimeout())
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		"WEBDRAW_ADDR":                 ":9000",
		"WEBDRAW_ELEMENTS_DIR":         "/elements",
		"WEBDRAW_CORS_ORIGINS":         "http://a, ,http://b ",
		"WEBDRAW_SCAN_TIMEOUT_SECONDS": "7",
	}
	cfg, err := FromEnv(func(k string) string { return env[k] })
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Addr != ":9000" || cfg.ElementsDir != "/elements" || cfg.ScanTimeoutSeconds != 7 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "http://a" || cfg.CORSOrigins[1] != "http://b" {
		t.Fatalf("origins: %q", cfg.CORSOrigins)
	}
}

func TestFromEnv_BadTimeout(t *testing.T) {
	_, err := FromEnv(func(k string) string {
		if k == "WEBDRAW_SCAN_TIMEOUT_SECONDS" {
			return "soon"
		}
		return ""
	})
	if err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]Config{
		"empty addr":       Default().Merge(Config{}),
		"bad model ext":    Default().Merge(Config{ModelExtensions: []string{"ckpt"}}),
		"separator in ext": Default().Merge(Config{DetectionExt: "./pt"}),
		"log format":       Default().Merge(Config{LogFormat: "xml"}),
	}
	c := cases["empty addr"]
	c.Addr = ""
	cases["empty addr"] = c
	for name, cfg := range cases {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestExpandPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}
	cfg, err := Default().Merge(Config{CheckpointsDir: "~/ckpt"}).ExpandPaths()
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if cfg.CheckpointsDir != filepath.Join(home, "ckpt") {
		t.Fatalf("got %q", cfg.CheckpointsDir)
	}
	if cfg.VAEDir != "models/vae" {
		t.Fatalf("relative dir changed: %q", cfg.VAEDir)
	}
}
