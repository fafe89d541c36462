package studio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"webdraw/internal/config"
	"webdraw/internal/registry"
)

// Catalog names used in routes, status reports and metric labels.
const (
	Checkpoints     = "checkpoints"
	VAEs            = "vaes"
	LoRAs           = "loras"
	PositivePresets = "positive"
	NegativePresets = "negative"
	Detection       = "detection"
	Elements        = "elements"
)

// AssetCatalogs lists the catalogs served by Assets, in status order.
var AssetCatalogs = []string{Checkpoints, VAEs, LoRAs}

// Studio lists studio files from the directories in its configuration.
type Studio struct {
	dirs        map[string]string
	modelExts   registry.ExtensionSet
	detectExt   string
	elementsExt string
	scanTimeout time.Duration
	started     time.Time
	log         zerolog.Logger
}

// New builds a Studio from cfg. Paths are used as given; call
// cfg.ExpandPaths first if they may start with ~.
func New(cfg config.Config, logger zerolog.Logger) *Studio {
	exts := cfg.ModelExtensions
	if len(exts) == 0 {
		exts = registry.ModelExtensions
	}
	return &Studio{
		dirs: map[string]string{
			Checkpoints:     cfg.CheckpointsDir,
			VAEs:            cfg.VAEDir,
			LoRAs:           cfg.LoRADir,
			PositivePresets: cfg.PositivePresetsDir,
			NegativePresets: cfg.NegativePresetsDir,
			Detection:       cfg.DetectionDir,
			Elements:        cfg.ElementsDir,
		},
		modelExts:   registry.NewExtensionSet(exts...),
		detectExt:   cfg.DetectionExt,
		elementsExt: cfg.ElementsExt,
		scanTimeout: cfg.ScanTimeout(),
		started:     time.Now(),
		log:         logger.With().Str("component", "studio").Logger(),
	}
}

// dir returns the configured directory of a catalog.
func (s *Studio) dir(catalog string) (string, error) {
	d, ok := s.dirs[catalog]
	if !ok {
		return "", unknownCatalogError{name: catalog}
	}
	return d, nil
}

// scan runs fn under the scan timeout and records metrics. fn returns the
// number of entries it produced.
func (s *Studio) scan(ctx context.Context, catalog string, fn func(ctx context.Context) (int, error)) error {
	if s.scanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.scanTimeout)
		defer cancel()
	}
	start := time.Now()
	n, err := fn(ctx)
	dur := time.Since(start)
	scanDuration.WithLabelValues(catalog).Observe(dur.Seconds())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			scanErrorsTotal.WithLabelValues(catalog, "timeout").Inc()
			s.log.Warn().Str("catalog", catalog).Dur("dur", dur).Msg("scan timed out")
			return scanTimeoutError{catalog: catalog}
		}
		if errors.Is(err, context.Canceled) {
			return err
		}
		scanErrorsTotal.WithLabelValues(catalog, "io").Inc()
		return fmt.Errorf("scan %s: %w", catalog, err)
	}
	scanResults.WithLabelValues(catalog).Set(float64(n))
	s.log.Debug().Str("catalog", catalog).Int("results", n).Dur("dur", dur).Msg("scan done")
	return nil
}
