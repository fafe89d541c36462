package httpapi

// RootMessage is returned by GET / so the studio can tell the backend is up.
const RootMessage = "WebDraw Studio Backend is running!"

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// allMethods is used when CORS is enabled without an explicit method list.
var allMethods = []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}

// SetCORSOptions configures CORS behavior for the HTTP server. Empty methods
// allow every method and empty headers allow every header. Credentials are
// always allowed, so origins should be listed explicitly.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
	if len(corsAllowedMethods) == 0 {
		corsAllowedMethods = append([]string(nil), allMethods...)
	}
	if len(corsAllowedHeaders) == 0 {
		corsAllowedHeaders = []string{"*"}
	}
}
