package gate

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/mobilegate/pkg/classifier"
	"github.com/dmitrymomot/mobilegate/pkg/logger"
	"github.com/dmitrymomot/mobilegate/pkg/pages"
)

// Gate is HTTP middleware applying Decide to every request.
type Gate struct {
	classifier  *classifier.Classifier
	log         *slog.Logger
	unsupported http.Handler
	metrics     *metrics
}

// Option configures a Gate.
type Option func(*Gate)

// WithClassifier sets the classifier used for requests that were not
// classified upstream. Nil is ignored.
func WithClassifier(c *classifier.Classifier) Option {
	return func(g *Gate) {
		if c != nil {
			g.classifier = c
		}
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gate) {
		if l != nil {
			g.log = l
		}
	}
}

// WithUnsupportedPage sets the handler serving UnsupportedPath. Nil is
// ignored.
func WithUnsupportedPage(h http.Handler) Option {
	return func(g *Gate) {
		if h != nil {
			g.unsupported = h
		}
	}
}

// WithMetrics counts decisions in reg. It panics if the counter cannot be
// registered.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(g *Gate) {
		if reg == nil {
			return
		}
		m, err := newMetrics(reg)
		if err != nil {
			panic(err)
		}
		g.metrics = m
	}
}

// New creates a Gate. Without options it uses the default classifier
// patterns, discards logs and serves pages.MobileNotSupported.
func New(opts ...Option) *Gate {
	g := &Gate{
		log: logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.classifier == nil {
		g.classifier = classifier.New()
	}
	if g.unsupported == nil {
		g.unsupported = pages.Handler(pages.MobileNotSupported())
	}
	return g
}

// Middleware gates requests for next. A classification stored by
// classifier.Middleware is reused; otherwise the request is classified and
// the result stored in its context.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, ok := classifier.FromContext(r.Context())
		if !ok {
			res = g.classifier.Explain(classifier.SignalsFromRequest(r))
			r = r.WithContext(classifier.WithContext(r.Context(), res))
		}

		path := r.URL.Path
		decision := Decide(path, res.Classification)
		g.metrics.observe(decision, res.Classification.String())

		ctx := r.Context()
		g.log.DebugContext(ctx, "gate decision",
			logger.Component("gate"),
			logger.Path(path),
			logger.Decision(decision),
			logger.Classification(res.Classification),
			logger.Reason(res.Reason),
		)

		switch decision {
		case ServeUnsupportedPage:
			g.unsupported.ServeHTTP(w, r)
		case RedirectToUnsupported:
			g.log.InfoContext(ctx, "redirecting mobile request",
				logger.Component("gate"),
				logger.Path(path),
				logger.Target(UnsupportedPath),
				logger.Reason(res.Reason),
				logger.UserAgent(r.UserAgent()),
			)
			g.redirect(w, r)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func (g *Gate) redirect(w http.ResponseWriter, r *http.Request) {
	if !IsDataStar(r) {
		http.Redirect(w, r, UnsupportedPath, http.StatusFound)
		return
	}
	sse := datastar.NewSSE(w, r)
	if err := sse.Redirect(UnsupportedPath); err != nil {
		g.log.ErrorContext(r.Context(), "failed to send datastar redirect",
			logger.Component("gate"),
			logger.Error(err),
		)
	}
}

// IsDataStar reports whether r was issued by DataStar: it accepts an event
// stream, carries the datastar query parameter, or has a DataStar content
// type.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	if r.URL.Query().Has("datastar") {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}
