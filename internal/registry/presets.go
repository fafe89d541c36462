package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"webdraw/internal/common/fsutil"
	"webdraw/pkg/types"
)

// PresetFailure records a preset file that was skipped and why.
type PresetFailure struct {
	File string
	Err  error
}

// PresetListing holds the presets that loaded plus the files that did not.
type PresetListing struct {
	Presets  []types.PresetRecord
	Failures []PresetFailure
}

type presetDoc struct {
	Prompt *string `json:"prompt"`
}

// ListPresets reads every *.json file directly inside dir. A file that cannot
// be read, is not valid JSON or lacks a string "prompt" lands in Failures and
// the rest still load. Order follows os.ReadDir (by file name).
func ListPresets(ctx context.Context, dir string) (PresetListing, error) {
	out := PresetListing{Presets: []types.PresetRecord{}}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return out, nil
		}
		return out, fmt.Errorf("read presets dir: %w", err)
	}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		p := filepath.Join(dir, name)
		if !fsutil.IsRegularFile(p, e) {
			continue
		}
		prompt, err := readPrompt(p)
		if err != nil {
			out.Failures = append(out.Failures, PresetFailure{File: p, Err: err})
			continue
		}
		out.Presets = append(out.Presets, types.PresetRecord{Name: PresetName(name), Prompt: prompt})
	}
	return out, nil
}

func readPrompt(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var doc presetDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	if doc.Prompt == nil {
		return "", errMissingPrompt
	}
	return *doc.Prompt, nil
}

// PresetName turns "epic_style.json" into "Epic Style".
func PresetName(file string) string {
	s := strings.ReplaceAll(stem(file), "_", " ")
	// Casers keep state; one per call.
	return cases.Title(language.Und).String(s)
}
