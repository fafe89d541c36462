package types

// MessageResponse is returned by GET /.
type MessageResponse struct {
	// example: WebDraw Studio Backend is running!
	Message string `json:"message" example:"WebDraw Studio Backend is running!"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: unknown catalog: embeddings
	Error string `json:"error" example:"unknown catalog: embeddings"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}

// CatalogStatus reports where a catalog is read from and whether it is usable.
type CatalogStatus struct {
	// Catalog name.
	// example: checkpoints
	Name string `json:"name" example:"checkpoints"`
	// Configured directory after ~ expansion.
	// example: models/checkpoints
	Dir string `json:"dir" example:"models/checkpoints"`
	// Whether the directory exists. Missing directories list as empty.
	// example: true
	Exists bool `json:"exists" example:"true"`
	// Whether the path is a directory.
	// example: true
	IsDir bool `json:"is_dir" example:"true"`
}

// StatusResponse is returned by GET /api/status.
type StatusResponse struct {
	Catalogs []CatalogStatus `json:"catalogs"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
