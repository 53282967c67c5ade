package main

import (
	"embed"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/mobilegate/pkg/classifier"
	"github.com/dmitrymomot/mobilegate/pkg/gate"
	"github.com/dmitrymomot/mobilegate/pkg/httpserver"
	"github.com/dmitrymomot/mobilegate/pkg/logger"
	"github.com/dmitrymomot/mobilegate/pkg/pages"
	"github.com/dmitrymomot/mobilegate/pkg/requestid"
	"github.com/dmitrymomot/mobilegate/pkg/viewportguard"
)

//go:embed static
var staticFS embed.FS

const stylesheet = gate.StaticPrefix + "/styles.css"

type routerDeps struct {
	appName    string
	log        *slog.Logger
	classifier *classifier.Classifier
	// registry enables /metrics and decision counting when non-nil.
	registry *prometheus.Registry
}

func newRouter(d routerDeps) http.Handler {
	if d.log == nil {
		d.log = logger.Discard()
	}
	if d.classifier == nil {
		d.classifier = classifier.New()
	}

	pageOpts := []pages.PageOption{
		pages.WithAppName(d.appName),
		pages.WithStylesheet(stylesheet),
	}

	gateOpts := []gate.Option{
		gate.WithClassifier(d.classifier),
		gate.WithLogger(d.log),
		gate.WithUnsupportedPage(pages.Handler(pages.MobileNotSupported(pageOpts...))),
	}
	if d.registry != nil {
		gateOpts = append(gateOpts, gate.WithMetrics(d.registry))
	}
	g := gate.New(gateOpts...)

	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		requestid.Middleware,
		requestLogger(d.log),
		middleware.Recoverer,
		classifier.Middleware(d.classifier),
		g.Middleware,
	)

	if d.registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{}))
	}

	r.Handle(gate.StaticPrefix+"/*", http.FileServer(http.FS(staticFS)))

	r.Route(gate.APIPrefix, func(r chi.Router) {
		r.Get("/healthz", httpserver.HealthCheckHandler(d.log))
		r.Get("/classify", classifyHandler)
		r.Handle("/viewport", viewportguard.Handler(viewportguard.WithLogger(d.log)))
	})

	r.Get("/", pages.Handler(pages.Index(pageOpts...)).ServeHTTP)

	return r
}

type classifyResponse struct {
	classifier.Result
	Decision *gate.Decision `json:"decision,omitempty"`
	Path     string         `json:"path,omitempty"`
}

// classifyHandler reports how the caller was classified and what the gate
// would decide for the path in the "path" query parameter (default "/").
func classifyHandler(w http.ResponseWriter, r *http.Request) {
	res, ok := classifier.FromContext(r.Context())
	if !ok {
		res = classifier.New().Explain(classifier.SignalsFromRequest(r))
	}
	path := r.URL.Query().Get("path")
	if path == "" {
		path = viewportguard.RootPath
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	decision := gate.Decide(path, res.Classification)
	_ = json.NewEncoder(w).Encode(classifyResponse{
		Result:   res,
		Decision: &decision,
		Path:     path,
	})
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				logger.Path(r.URL.Path),
				slog.Int("status", ww.Status()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
