package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"webdraw/internal/studio"
	"webdraw/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Assets(ctx context.Context, catalog string) ([]types.AssetRecord, error)
	Presets(ctx context.Context, polarity string) ([]types.PresetRecord, error)
	DetectionModels(ctx context.Context) ([]string, error)
	Elements(ctx context.Context) ([]string, error)
	ResolveFile(catalog, rel string) (string, error)
	Status() types.StatusResponse
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsAllowedOrigins,
			AllowedMethods:   corsAllowedMethods,
			AllowedHeaders:   corsAllowedHeaders,
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/", rootHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/models/checkpoints", listAssets(svc, studio.Checkpoints))
		r.Get("/models/vaes", listAssets(svc, studio.VAEs))
		r.Get("/models/loras", listAssets(svc, studio.LoRAs))
		r.Get("/models/detection", listDetection(svc))
		r.Get("/models/elements", listElements(svc))
		r.Get("/presets/{polarity}", listPresets(svc))
		r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, svc.Status())
		})
	})

	r.Get("/files/{catalog}/*", serveFile(svc))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("not ready"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// rootHandler godoc
//
//	@Summary	Liveness message for the studio front-end
//	@Produce	json
//	@Success	200	{object}	types.MessageResponse
//	@Router		/ [get]
func rootHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, types.MessageResponse{Message: RootMessage})
}

// listAssets godoc
//
//	@Summary	List model files with their preview images
//	@Produce	json
//	@Success	200	{array}		types.AssetRecord
//	@Failure	503	{object}	types.ErrorResponse
//	@Failure	500	{object}	types.ErrorResponse
//	@Router		/api/models/checkpoints [get]
//	@Router		/api/models/vaes [get]
//	@Router		/api/models/loras [get]
func listAssets(svc Service, catalog string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		recs, err := svc.Assets(ctx, catalog)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, nonNil(recs))
	}
}

// listPresets godoc
//
//	@Summary	List prompt presets
//	@Produce	json
//	@Param		polarity	path		string	true	"positive or negative"
//	@Success	200			{array}		types.PresetRecord
//	@Failure	404			{object}	types.ErrorResponse
//	@Router		/api/presets/{polarity} [get]
func listPresets(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		recs, err := svc.Presets(ctx, chi.URLParam(r, "polarity"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, nonNil(recs))
	}
}

// listDetection godoc
//
//	@Summary	List detection model file names
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/api/models/detection [get]
func listDetection(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		names, err := svc.DetectionModels(ctx)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, nonNil(names))
	}
}

// listElements godoc
//
//	@Summary	List decorative element image names, sorted
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/api/models/elements [get]
func listElements(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		names, err := svc.Elements(ctx)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, nonNil(names))
	}
}

// serveFile godoc
//
//	@Summary	Fetch a preview or element image
//	@Produce	image/png
//	@Param		catalog	path	string	true	"checkpoints, vaes, loras or elements"
//	@Success	200
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/files/{catalog}/{path} [get]
func serveFile(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.ResolveFile(chi.URLParam(r, "catalog"), chi.URLParam(r, "*"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		http.ServeFile(w, r, p)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

// nonNil keeps empty listings encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
