package registry

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"webdraw/internal/common/fsutil"
	"webdraw/pkg/types"
)

// ListAssets walks root recursively and returns every file whose extension is
// in exts, paired with its preview image. Paths in the result are relative to
// root and slash-separated. Results follow lexical walk order.
//
// A missing root yields an empty list. Symlinked files are listed; symlinked
// directories below root are not descended into.
func ListAssets(ctx context.Context, root string, exts ExtensionSet) ([]types.AssetRecord, error) {
	assets := []types.AssetRecord{}
	exists, isDir, err := fsutil.StatDir(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !exists {
		return assets, nil
	}
	if !isDir {
		return nil, notDirectoryError{path: root}
	}
	// WalkDir does not descend into a symlinked root.
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	previews := newPreviewIndex()
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !exts.Match(d.Name()) {
			return nil
		}
		if !fsutil.IsRegularFile(p, d) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		parent := filepath.Dir(p)
		sub := filepath.Dir(rel)
		if sub == "." {
			sub = ""
		}
		rec := types.AssetRecord{
			Name:      d.Name(),
			Path:      filepath.ToSlash(rel),
			Subfolder: filepath.ToSlash(sub),
		}
		img, err := previews.lookup(parent, d.Name())
		if err != nil {
			return err
		}
		if img != "" {
			preview := filepath.ToSlash(filepath.Join(sub, img))
			rec.PreviewImage = &preview
		}
		assets = append(assets, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}
