package studio

// unknownCatalogError is returned for a catalog name that is not configured.
type unknownCatalogError struct{ name string }

func (e unknownCatalogError) Error() string { return "unknown catalog: " + e.name }

// ErrUnknownCatalog returns an error for a catalog name that is not configured.
func ErrUnknownCatalog(name string) error { return unknownCatalogError{name: name} }

// IsUnknownCatalog reports whether err names a catalog that does not exist (404).
func IsUnknownCatalog(err error) bool {
	_, ok := err.(unknownCatalogError)
	return ok
}

// scanTimeoutError signals that a scan exceeded the configured timeout.
type scanTimeoutError struct{ catalog string }

func (e scanTimeoutError) Error() string { return "scan timed out: " + e.catalog }

// ErrScanTimeout constructs a scanTimeoutError.
func ErrScanTimeout(catalog string) error { return scanTimeoutError{catalog: catalog} }

// IsScanTimeout reports whether err indicates an aborted slow scan (503).
func IsScanTimeout(err error) bool {
	_, ok := err.(scanTimeoutError)
	return ok
}

// fileNotFoundError is returned by ResolveFile for anything it will not serve.
type fileNotFoundError struct{ path string }

func (e fileNotFoundError) Error() string { return "file not found: " + e.path }

// ErrFileNotFound constructs a fileNotFoundError.
func ErrFileNotFound(path string) error { return fileNotFoundError{path: path} }

// IsFileNotFound reports whether err means the requested file cannot be served (404).
func IsFileNotFound(err error) bool {
	_, ok := err.(fileNotFoundError)
	return ok
}
