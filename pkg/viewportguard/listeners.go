package viewportguard

import "sync"

// Listeners is a synchronous handler registry for resize notifications.
// The zero value is ready to use.
type Listeners struct {
	mu       sync.Mutex
	nextID   uint64
	handlers []listener
}

type listener struct {
	id uint64
	fn func()
}

// Add registers fn and returns a function that removes it. The returned
// function may be called any number of times.
func (l *Listeners) Add(fn func()) (remove func()) {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.handlers = append(l.handlers, listener{id: id, fn: fn})
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, h := range l.handlers {
			if h.id == id {
				l.handlers = append(l.handlers[:i], l.handlers[i+1:]...)
				return
			}
		}
	}
}

// Emit calls every registered handler in registration order. Handlers run
// outside the registry lock and may add or remove listeners.
func (l *Listeners) Emit() {
	l.mu.Lock()
	snapshot := make([]func(), len(l.handlers))
	for i, h := range l.handlers {
		snapshot[i] = h.fn
	}
	l.mu.Unlock()

	for _, fn := range snapshot {
		fn()
	}
}

// Len returns the number of registered handlers.
func (l *Listeners) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.handlers)
}
