package viewportguard

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/mobilegate/pkg/logger"
)

// Signals is the DataStar signal payload reported by the browser.
type Signals struct {
	ViewportWidth *int   `json:"viewportWidth"`
	Path          string `json:"path"`
}

// HandlerOption configures Handler.
type HandlerOption func(*handler)

// WithLogger sets the logger used by Handler.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *handler) {
		if l != nil {
			h.log = l
		}
	}
}

type handler struct {
	log *slog.Logger
}

// Handler serves DataStar guard checks. The browser sends its viewport width
// and location as signals; when the guard decides to navigate, the response
// carries an SSE redirect. A missing or non-positive width never navigates.
func Handler(opts ...HandlerOption) http.Handler {
	h := &handler{log: logger.Discard()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var signals Signals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.log.DebugContext(r.Context(), "invalid viewport signals", logger.Component("viewportguard"), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	env := &sseEnvironment{
		sse:  datastar.NewSSE(w, r),
		path: signals.Path,
	}
	if env.path == "" {
		env.path = refererPath(r)
	}
	if signals.ViewportWidth == nil || *signals.ViewportWidth <= 0 {
		return
	}
	env.width = *signals.ViewportWidth

	if CheckAndRedirect(env) {
		h.log.InfoContext(r.Context(), "viewport guard redirect",
			logger.Component("viewportguard"),
			logger.Path(env.path),
			logger.Target(env.target),
			slog.Int("viewport_width", env.width),
			logger.Error(env.err),
		)
	}
}

func refererPath(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return RootPath
	}
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" {
		return RootPath
	}
	return u.Path
}

// sseEnvironment answers a single guard check; resize notifications arrive
// as separate requests, so OnResize never fires.
type sseEnvironment struct {
	sse    *datastar.ServerSentEventGenerator
	width  int
	path   string
	target string
	err    error
}

func (e *sseEnvironment) ViewportWidth() int  { return e.width }
func (e *sseEnvironment) CurrentPath() string { return e.path }

func (e *sseEnvironment) NavigateTo(path string) {
	e.target = path
	e.err = e.sse.Redirect(path)
}

func (e *sseEnvironment) OnResize(func()) func() { return func() {} }
