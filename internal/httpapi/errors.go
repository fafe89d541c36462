package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"webdraw/internal/studio"
	"webdraw/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case studio.IsUnknownCatalog(err), studio.IsFileNotFound(err):
		return http.StatusNotFound
	case studio.IsScanTimeout(err):
		return http.StatusServiceUnavailable
	}
	if he, ok := err.(HTTPError); ok {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}

// writeServiceError reports err to the client unless the client or the
// server has already gone away.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
		return
	}
	status := statusFor(err)
	if status >= http.StatusInternalServerError && requestLogLevel(r) >= LevelError {
		logError(r, status, err)
	}
	writeJSONError(w, status, err.Error())
}

func logError(r *http.Request, status int, err error) {
	if zlog != nil {
		z := zlog.Error().Str("path", r.URL.Path).Int("status", status)
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			z = z.Str("request_id", rid)
		}
		z.Err(err).Msg("request failed")
		return
	}
	stdLogf("request failed path=%s status=%d err=%v", r.URL.Path, status, err)
}
