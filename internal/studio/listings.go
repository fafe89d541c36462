package studio

import (
	"context"

	"webdraw/internal/registry"
	"webdraw/pkg/types"
)

// Assets lists a model catalog: checkpoints, vaes or loras.
func (s *Studio) Assets(ctx context.Context, catalog string) ([]types.AssetRecord, error) {
	switch catalog {
	case Checkpoints, VAEs, LoRAs:
	default:
		return nil, unknownCatalogError{name: catalog}
	}
	root, _ := s.dir(catalog)
	var out []types.AssetRecord
	err := s.scan(ctx, catalog, func(ctx context.Context) (int, error) {
		recs, err := registry.ListAssets(ctx, root, s.modelExts)
		out = recs
		return len(recs), err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Presets lists the positive or negative prompt presets. Files that fail to
// load are logged and left out.
func (s *Studio) Presets(ctx context.Context, polarity string) ([]types.PresetRecord, error) {
	switch polarity {
	case PositivePresets, NegativePresets:
	default:
		return nil, unknownCatalogError{name: polarity}
	}
	dir, _ := s.dir(polarity)
	var out []types.PresetRecord
	err := s.scan(ctx, polarity, func(ctx context.Context) (int, error) {
		listing, err := registry.ListPresets(ctx, dir)
		if err != nil {
			return 0, err
		}
		for _, f := range listing.Failures {
			presetFailuresTotal.WithLabelValues(polarity).Inc()
			s.log.Warn().Str("catalog", polarity).Str("file", f.File).Err(f.Err).Msg("skipping preset")
		}
		out = listing.Presets
		return len(out), nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DetectionModels lists detection model file names in directory order.
func (s *Studio) DetectionModels(ctx context.Context) ([]string, error) {
	return s.names(ctx, Detection, s.detectExt, false)
}

// Elements lists decorative element image names, sorted.
func (s *Studio) Elements(ctx context.Context) ([]string, error) {
	return s.names(ctx, Elements, s.elementsExt, true)
}

func (s *Studio) names(ctx context.Context, catalog, ext string, sorted bool) ([]string, error) {
	dir, _ := s.dir(catalog)
	var out []string
	err := s.scan(ctx, catalog, func(ctx context.Context) (int, error) {
		names, err := registry.ListNames(ctx, dir, ext, sorted)
		out = names
		return len(names), err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
