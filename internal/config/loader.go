package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and are replaced by Default() via Merge.
type Config struct {
	Addr               string   `json:"addr" yaml:"addr" toml:"addr"`
	CheckpointsDir     string   `json:"checkpoints_dir" yaml:"checkpoints_dir" toml:"checkpoints_dir"`
	VAEDir             string   `json:"vae_dir" yaml:"vae_dir" toml:"vae_dir"`
	LoRADir            string   `json:"lora_dir" yaml:"lora_dir" toml:"lora_dir"`
	ModelExtensions    []string `json:"model_extensions" yaml:"model_extensions" toml:"model_extensions"`
	PositivePresetsDir string   `json:"positive_presets_dir" yaml:"positive_presets_dir" toml:"positive_presets_dir"`
	NegativePresetsDir string   `json:"negative_presets_dir" yaml:"negative_presets_dir" toml:"negative_presets_dir"`
	DetectionDir       string   `json:"detection_dir" yaml:"detection_dir" toml:"detection_dir"`
	DetectionExt       string   `json:"detection_ext" yaml:"detection_ext" toml:"detection_ext"`
	ElementsDir        string   `json:"elements_dir" yaml:"elements_dir" toml:"elements_dir"`
	ElementsExt        string   `json:"elements_ext" yaml:"elements_ext" toml:"elements_ext"`
	CORSOrigins        []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
	// Negative disables the per-scan timeout.
	ScanTimeoutSeconds int    `json:"scan_timeout_seconds" yaml:"scan_timeout_seconds" toml:"scan_timeout_seconds"`
	LogLevel           string `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat          string `json:"log_format" yaml:"log_format" toml:"log_format"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse json: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
