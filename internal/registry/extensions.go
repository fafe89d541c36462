package registry

import (
	"path/filepath"
	"strings"
)

// ExtensionSet is a case-insensitive set of file extensions (".safetensors").
type ExtensionSet map[string]struct{}

// NewExtensionSet normalises exts to lower case with a leading dot.
func NewExtensionSet(exts ...string) ExtensionSet {
	set := make(ExtensionSet, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = struct{}{}
	}
	return set
}

// Match reports whether name carries one of the extensions.
func (s ExtensionSet) Match(name string) bool {
	_, ok := s[strings.ToLower(filepath.Ext(name))]
	return ok
}

// ModelExtensions are the weight formats listed when nothing else is configured.
var ModelExtensions = []string{".safetensors", ".ckpt", ".pth"}

// PreviewExtensions lists accepted preview image formats in order of preference.
var PreviewExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// IsImage reports whether name has a preview image extension.
func IsImage(name string) bool {
	return previewRank(name) >= 0
}

func previewRank(name string) int {
	ext := strings.ToLower(filepath.Ext(name))
	for i, e := range PreviewExtensions {
		if e == ext {
			return i
		}
	}
	return -1
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
