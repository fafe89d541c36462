package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"webdraw/internal/config"
)

// cliFlags mirrors the command line. Only flags the user actually set
// override file and environment values.
type cliFlags struct {
	configPath         string
	addr               string
	checkpointsDir     string
	vaeDir             string
	loraDir            string
	positivePresetsDir string
	negativePresetsDir string
	detectionDir       string
	elementsDir        string
	corsOrigins        []string
	scanTimeout        time.Duration
	logLevel           string
	logFormat          string
}

func newRootCmd() *cobra.Command {
	var f cliFlags
	cmd := &cobra.Command{
		Use:           "webdraw",
		Short:         "Serve read-only listings of local models, presets and elements",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f, os.Getenv)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, logger)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", os.Getenv("WEBDRAW_CONFIG"), "Path to a YAML, JSON or TOML config file")
	fl.StringVar(&f.addr, "addr", "", "HTTP listen address, e.g. :8001")
	fl.StringVar(&f.checkpointsDir, "checkpoints-dir", "", "Directory scanned recursively for checkpoints")
	fl.StringVar(&f.vaeDir, "vae-dir", "", "Directory scanned recursively for VAEs")
	fl.StringVar(&f.loraDir, "lora-dir", "", "Directory scanned recursively for LoRAs")
	fl.StringVar(&f.positivePresetsDir, "positive-presets-dir", "", "Directory of positive prompt presets (*.json)")
	fl.StringVar(&f.negativePresetsDir, "negative-presets-dir", "", "Directory of negative prompt presets (*.json)")
	fl.StringVar(&f.detectionDir, "detection-dir", "", "Directory of detection models (*.pt)")
	fl.StringVar(&f.elementsDir, "elements-dir", "", "Directory of element images (*.png)")
	fl.StringArrayVar(&f.corsOrigins, "cors-origin", nil, "Allowed CORS origin; repeat or comma-separate")
	fl.DurationVar(&f.scanTimeout, "scan-timeout", 0, "Per-scan timeout, e.g. 30s (0 disables)")
	fl.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fl.StringVar(&f.logFormat, "log-format", "", "Log format: console or json")
	return cmd
}

// resolveConfig layers defaults, the config file, WEBDRAW_* variables and
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, f cliFlags, getenv func(string) string) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		fileCfg, err := config.Load(f.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", f.configPath, err)
		}
		cfg = cfg.Merge(fileCfg)
	}
	envCfg, err := config.FromEnv(getenv)
	if err != nil {
		return cfg, err
	}
	cfg = cfg.Merge(envCfg)

	var flagCfg config.Config
	changed := cmd.Flags().Changed
	set := func(name string, dst *string, v string) {
		if changed(name) {
			*dst = v
		}
	}
	set("addr", &flagCfg.Addr, f.addr)
	set("checkpoints-dir", &flagCfg.CheckpointsDir, f.checkpointsDir)
	set("vae-dir", &flagCfg.VAEDir, f.vaeDir)
	set("lora-dir", &flagCfg.LoRADir, f.loraDir)
	set("positive-presets-dir", &flagCfg.PositivePresetsDir, f.positivePresetsDir)
	set("negative-presets-dir", &flagCfg.NegativePresetsDir, f.negativePresetsDir)
	set("detection-dir", &flagCfg.DetectionDir, f.detectionDir)
	set("elements-dir", &flagCfg.ElementsDir, f.elementsDir)
	set("log-level", &flagCfg.LogLevel, f.logLevel)
	set("log-format", &flagCfg.LogFormat, f.logFormat)
	if changed("cors-origin") {
		for _, v := range f.corsOrigins {
			flagCfg.CORSOrigins = append(flagCfg.CORSOrigins, splitCSV(v)...)
		}
	}
	if changed("scan-timeout") {
		secs := int(f.scanTimeout / time.Second)
		switch {
		case f.scanTimeout <= 0:
			secs = -1 // explicit zero disables; Merge ignores 0
		case secs == 0:
			secs = 1
		}
		flagCfg.ScanTimeoutSeconds = secs
	}
	cfg = cfg.Merge(flagCfg)

	if cfg, err = cfg.ExpandPaths(); err != nil {
		return cfg, fmt.Errorf("expand paths: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
