package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"webdraw/internal/common/fsutil"
)

// Default returns the built-in configuration. Relative directories resolve
// against the working directory of the process.
func Default() Config {
	return Config{
		Addr:               ":8001",
		CheckpointsDir:     "models/checkpoints",
		VAEDir:             "models/vae",
		LoRADir:            "models/lora",
		ModelExtensions:    []string{".safetensors", ".ckpt", ".pth"},
		PositivePresetsDir: "presets/positive",
		NegativePresetsDir: "presets/negative",
		DetectionDir:       "models/detection",
		DetectionExt:       ".pt",
		ElementsDir:        "elements",
		ElementsExt:        ".png",
		CORSOrigins:        []string{"http://localhost", "http://localhost:8000"},
		ScanTimeoutSeconds: 30,
		LogLevel:           "info",
		LogFormat:          "console",
	}
}

// Merge returns c with every non-zero field of o applied on top.
func (c Config) Merge(o Config) Config {
	str := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	str(&c.Addr, o.Addr)
	str(&c.CheckpointsDir, o.CheckpointsDir)
	str(&c.VAEDir, o.VAEDir)
	str(&c.LoRADir, o.LoRADir)
	str(&c.PositivePresetsDir, o.PositivePresetsDir)
	str(&c.NegativePresetsDir, o.NegativePresetsDir)
	str(&c.DetectionDir, o.DetectionDir)
	str(&c.DetectionExt, o.DetectionExt)
	str(&c.ElementsDir, o.ElementsDir)
	str(&c.ElementsExt, o.ElementsExt)
	str(&c.LogLevel, o.LogLevel)
	str(&c.LogFormat, o.LogFormat)
	if len(o.ModelExtensions) > 0 {
		c.ModelExtensions = append([]string(nil), o.ModelExtensions...)
	}
	if len(o.CORSOrigins) > 0 {
		c.CORSOrigins = append([]string(nil), o.CORSOrigins...)
	}
	if o.ScanTimeoutSeconds != 0 {
		c.ScanTimeoutSeconds = o.ScanTimeoutSeconds
	}
	return c
}

// FromEnv reads WEBDRAW_* variables through getenv. Unset variables stay zero.
func FromEnv(getenv func(string) string) (Config, error) {
	var cfg Config
	cfg.Addr = getenv("WEBDRAW_ADDR")
	cfg.CheckpointsDir = getenv("WEBDRAW_CHECKPOINTS_DIR")
	cfg.VAEDir = getenv("WEBDRAW_VAE_DIR")
	cfg.LoRADir = getenv("WEBDRAW_LORA_DIR")
	cfg.PositivePresetsDir = getenv("WEBDRAW_POSITIVE_PRESETS_DIR")
	cfg.NegativePresetsDir = getenv("WEBDRAW_NEGATIVE_PRESETS_DIR")
	cfg.DetectionDir = getenv("WEBDRAW_DETECTION_DIR")
	cfg.ElementsDir = getenv("WEBDRAW_ELEMENTS_DIR")
	cfg.LogLevel = getenv("WEBDRAW_LOG_LEVEL")
	cfg.LogFormat = getenv("WEBDRAW_LOG_FORMAT")
	cfg.CORSOrigins = splitList(getenv("WEBDRAW_CORS_ORIGINS"))
	if v := getenv("WEBDRAW_SCAN_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("WEBDRAW_SCAN_TIMEOUT_SECONDS: %w", err)
		}
		cfg.ScanTimeoutSeconds = n
	}
	return cfg, nil
}

// ScanTimeout converts ScanTimeoutSeconds; zero means no timeout.
func (c Config) ScanTimeout() time.Duration {
	if c.ScanTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.ScanTimeoutSeconds) * time.Second
}

// ExpandPaths resolves a leading ~ in every directory setting.
func (c Config) ExpandPaths() (Config, error) {
	for _, p := range []*string{
		&c.CheckpointsDir, &c.VAEDir, &c.LoRADir,
		&c.PositivePresetsDir, &c.NegativePresetsDir,
		&c.DetectionDir, &c.ElementsDir,
	} {
		v, err := fsutil.ExpandHome(*p)
		if err != nil {
			return c, err
		}
		*p = v
	}
	return c, nil
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if len(c.ModelExtensions) == 0 {
		return fmt.Errorf("model_extensions must not be empty")
	}
	for _, ext := range append([]string{c.DetectionExt, c.ElementsExt}, c.ModelExtensions...) {
		if !strings.HasPrefix(ext, ".") || strings.ContainsAny(ext, `/\`) {
			return fmt.Errorf("invalid extension %q: must start with '.' and contain no separators", ext)
		}
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log_format: %s", c.LogFormat)
	}
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
