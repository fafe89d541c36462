package registry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"webdraw/internal/common/fsutil"
)

// ListNames returns the names of files directly inside dir whose extension is
// exactly ext (case-sensitive). Without sorted the order is whatever the
// filesystem returns. A missing dir yields an empty list.
func ListNames(ctx context.Context, dir, ext string, sorted bool) ([]string, error) {
	names := []string{}
	f, err := os.Open(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return names, nil
		}
		return nil, fmt.Errorf("open dir: %w", err)
	}
	defer f.Close()
	// File.ReadDir keeps directory order, unlike os.ReadDir.
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ext {
			continue
		}
		if !fsutil.IsRegularFile(filepath.Join(dir, name), e) {
			continue
		}
		names = append(names, name)
	}
	if sorted {
		sort.Strings(names)
	}
	return names, nil
}
