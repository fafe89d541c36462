// Package studio binds the configured directories to the registry listings
// and is the service behind the HTTP API. It is structured into small files
// by concern:
//
//   - studio.go: Studio type, constructor and catalog table.
//   - listings.go: Assets, Presets, DetectionModels, Elements.
//   - files.go: ResolveFile for serving preview and element images.
//   - status_report.go: Status and Ready.
//   - errors.go: error types and helpers (IsUnknownCatalog, IsScanTimeout, IsFileNotFound).
//   - metrics.go: Prometheus collectors for scans.
//
// Every call scans the filesystem afresh. Studio holds no mutable state and is
// safe for concurrent use.
package studio
