package studio

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"webdraw/internal/registry"
)

// servable lists the catalogs whose images may be fetched through ResolveFile.
var servable = map[string]bool{Checkpoints: true, VAEs: true, LoRAs: true, Elements: true}

// ResolveFile maps a slash-separated path relative to a catalog root, as
// found in AssetRecord.PreviewImage or an element name, to a file on disk.
// Only images inside the root are served.
func (s *Studio) ResolveFile(catalog, rel string) (string, error) {
	if !servable[catalog] {
		return "", unknownCatalogError{name: catalog}
	}
	root, _ := s.dir(catalog)
	if rel == "" || root == "" || strings.ContainsAny(rel, "\\\x00") || path.IsAbs(rel) {
		return "", fileNotFoundError{path: rel}
	}
	clean := path.Clean(rel)
	if clean != rel || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fileNotFoundError{path: rel}
	}
	if !registry.IsImage(clean) {
		return "", fileNotFoundError{path: rel}
	}
	p := filepath.Join(root, filepath.FromSlash(clean))
	info, err := os.Stat(p)
	if err != nil || !info.Mode().IsRegular() {
		return "", fileNotFoundError{path: rel}
	}
	return p, nil
}
