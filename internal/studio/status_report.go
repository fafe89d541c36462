package studio

import (
	"time"

	"webdraw/internal/common/fsutil"
	"webdraw/pkg/types"
)

// statusOrder fixes the catalog order in status reports.
var statusOrder = []string{Checkpoints, VAEs, LoRAs, PositivePresets, NegativePresets, Detection, Elements}

// Status reports every catalog directory and whether it is present.
func (s *Studio) Status() types.StatusResponse {
	now := time.Now()
	resp := types.StatusResponse{
		Catalogs:       make([]types.CatalogStatus, 0, len(statusOrder)),
		UptimeSeconds:  int64(now.Sub(s.started).Seconds()),
		ServerTimeUnix: now.Unix(),
	}
	for _, name := range statusOrder {
		dir := s.dirs[name]
		exists, isDir, err := fsutil.StatDir(dir)
		if err != nil {
			s.log.Debug().Str("catalog", name).Err(err).Msg("stat catalog dir")
			exists = fsutil.PathExists(dir)
		}
		resp.Catalogs = append(resp.Catalogs, types.CatalogStatus{Name: name, Dir: dir, Exists: exists, IsDir: isDir})
	}
	return resp
}

// Ready reports false when a configured directory exists but is not a
// directory, since every listing of it would fail. Missing directories are
// fine: they list as empty.
func (s *Studio) Ready() bool {
	for _, c := range s.Status().Catalogs {
		if c.Exists && !c.IsDir {
			return false
		}
	}
	return true
}
