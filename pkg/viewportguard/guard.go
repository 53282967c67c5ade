package viewportguard

import (
	"strings"
	"sync"
)

const (
	// Threshold is the widest viewport still treated as small.
	Threshold = 768

	// UnsupportedPath is where small viewports are sent.
	UnsupportedPath = "/mobile-not-supported"

	// RootPath is where large viewports leave the unsupported page to.
	RootPath = "/"
)

// Environment abstracts the execution context the guard runs in.
type Environment interface {
	ViewportWidth() int
	CurrentPath() string
	NavigateTo(path string)
	// OnResize registers handler for viewport resize notifications and
	// returns a function that removes it.
	OnResize(handler func()) (unsubscribe func())
}

// Target decides where a viewport of the given width on currentPath should go.
// It returns false when no navigation is needed.
func Target(width int, currentPath string) (string, bool) {
	small := width <= Threshold
	onUnsupported := strings.Contains(currentPath, UnsupportedPath)

	switch {
	case small && !onUnsupported:
		return UnsupportedPath, true
	case !small && onUnsupported:
		return RootPath, true
	default:
		return "", false
	}
}

// CheckAndRedirect reads the live viewport width and location from env and
// navigates when Target says so. It reports whether it navigated.
func CheckAndRedirect(env Environment) bool {
	target, ok := Target(env.ViewportWidth(), env.CurrentPath())
	if !ok {
		return false
	}
	env.NavigateTo(target)
	return true
}

// Setup mounts a new Guard on env and returns its teardown.
func Setup(env Environment) (teardown func()) {
	return New(env).Mount()
}

// Guard owns the resize subscription for one Environment.
type Guard struct {
	env Environment

	mu          sync.Mutex
	generation  uint64
	unsubscribe func()
}

// New creates an unmounted Guard for env.
func New(env Environment) *Guard {
	return &Guard{env: env}
}

// Mount runs the initial check and subscribes to resize notifications.
// Mounting an already mounted guard registers no additional listener and
// skips the initial check. The returned teardown only affects the mount it
// was returned from.
func (g *Guard) Mount() (teardown func()) {
	g.mu.Lock()
	if g.unsubscribe != nil {
		gen := g.generation
		g.mu.Unlock()
		return g.teardown(gen)
	}
	g.generation++
	gen := g.generation
	g.unsubscribe = g.env.OnResize(func() { CheckAndRedirect(g.env) })
	g.mu.Unlock()

	CheckAndRedirect(g.env)
	return g.teardown(gen)
}

// Unmount removes the resize listener if one is registered.
func (g *Guard) Unmount() {
	g.mu.Lock()
	unsubscribe := g.unsubscribe
	g.unsubscribe = nil
	g.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Mounted reports whether the guard currently listens for resize events.
func (g *Guard) Mounted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.unsubscribe != nil
}

func (g *Guard) teardown(gen uint64) func() {
	return func() {
		g.mu.Lock()
		if g.generation != gen || g.unsubscribe == nil {
			g.mu.Unlock()
			return
		}
		unsubscribe := g.unsubscribe
		g.unsubscribe = nil
		g.mu.Unlock()

		unsubscribe()
	}
}
