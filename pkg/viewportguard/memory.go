package viewportguard

import "sync"

// MemoryEnvironment is an in-process Environment. NavigateTo records the
// navigation and moves the current location, the way a full location
// assignment would.
type MemoryEnvironment struct {
	resize Listeners

	mu          sync.Mutex
	width       int
	path        string
	navigations []string
}

var _ Environment = (*MemoryEnvironment)(nil)

// NewMemoryEnvironment returns an environment with the given viewport width
// and location path.
func NewMemoryEnvironment(width int, path string) *MemoryEnvironment {
	return &MemoryEnvironment{width: width, path: path}
}

func (e *MemoryEnvironment) ViewportWidth() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.width
}

func (e *MemoryEnvironment) CurrentPath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.path
}

func (e *MemoryEnvironment) NavigateTo(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.path = path
	e.navigations = append(e.navigations, path)
}

func (e *MemoryEnvironment) OnResize(handler func()) func() {
	return e.resize.Add(handler)
}

// Resize changes the viewport width and notifies resize listeners.
func (e *MemoryEnvironment) Resize(width int) {
	e.mu.Lock()
	e.width = width
	e.mu.Unlock()

	e.resize.Emit()
}

// Navigations returns every path navigated to, oldest first.
func (e *MemoryEnvironment) Navigations() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.navigations...)
}

// ResizeListeners returns the number of registered resize listeners.
func (e *MemoryEnvironment) ResizeListeners() int {
	return e.resize.Len()
}
