package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"webdraw/internal/common/fsutil"
)

// previewIndex maps directory -> stem -> candidate image names, best first.
// It lives for a single scan so each directory is read at most once.
type previewIndex map[string]map[string][]string

func newPreviewIndex() previewIndex { return previewIndex{} }

// lookup returns the preview image name for asset in dir, or "" if none.
//
// Candidates share the asset's stem exactly. Extensions rank in
// PreviewExtensions order; equal ranks fall back to the lexically smaller
// name, so the choice never depends on directory enumeration order.
func (idx previewIndex) lookup(dir, asset string) (string, error) {
	byStem, ok := idx[dir]
	if !ok {
		var err error
		byStem, err = indexDir(dir)
		if err != nil {
			return "", err
		}
		idx[dir] = byStem
	}
	for _, name := range byStem[stem(asset)] {
		if name != asset {
			return name, nil
		}
	}
	return "", nil
}

func indexDir(dir string) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	byStem := map[string][]string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !IsImage(name) {
			continue
		}
		if !fsutil.IsRegularFile(filepath.Join(dir, name), e) {
			continue
		}
		s := stem(name)
		byStem[s] = append(byStem[s], name)
	}
	for _, names := range byStem {
		sort.Slice(names, func(i, j int) bool {
			ri, rj := previewRank(names[i]), previewRank(names[j])
			if ri != rj {
				return ri < rj
			}
			return names[i] < names[j]
		})
	}
	return byStem, nil
}
