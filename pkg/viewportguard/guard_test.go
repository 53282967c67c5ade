package viewportguard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mobilegate/pkg/viewportguard"
)

func TestTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		width    int
		path     string
		target   string
		navigate bool
	}{
		{name: "small on root", width: 700, path: "/", target: "/mobile-not-supported", navigate: true},
		{name: "small on unsupported", width: 700, path: "/mobile-not-supported", navigate: false},
		{name: "large on unsupported", width: 1200, path: "/mobile-not-supported", target: "/", navigate: true},
		{name: "large on root", width: 1200, path: "/", navigate: false},
		{name: "threshold is small", width: 768, path: "/dashboard", target: "/mobile-not-supported", navigate: true},
		{name: "just above threshold", width: 769, path: "/dashboard", navigate: false},
		{name: "unsupported segment in nested path", width: 700, path: "/en/mobile-not-supported", navigate: false},
		{name: "large on nested unsupported", width: 1024, path: "/en/mobile-not-supported", target: "/", navigate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			target, ok := viewportguard.Target(tt.width, tt.path)
			assert.Equal(t, tt.navigate, ok)
			assert.Equal(t, tt.target, target)
		})
	}
}

func TestCheckAndRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		width       int
		path        string
		navigations []string
	}{
		{name: "700 on root", width: 700, path: "/", navigations: []string{"/mobile-not-supported"}},
		{name: "700 on unsupported", width: 700, path: "/mobile-not-supported", navigations: nil},
		{name: "1200 on unsupported", width: 1200, path: "/mobile-not-supported", navigations: []string{"/"}},
		{name: "1200 on root", width: 1200, path: "/", navigations: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := viewportguard.NewMemoryEnvironment(tt.width, tt.path)

			navigated := viewportguard.CheckAndRedirect(env)

			assert.Equal(t, len(tt.navigations) > 0, navigated)
			assert.Equal(t, tt.navigations, env.Navigations())
		})
	}
}

func TestSetup(t *testing.T) {
	t.Parallel()

	t.Run("checks on load", func(t *testing.T) {
		t.Parallel()
		env := viewportguard.NewMemoryEnvironment(500, "/")
		teardown := viewportguard.Setup(env)
		defer teardown()

		assert.Equal(t, []string{"/mobile-not-supported"}, env.Navigations())
		assert.Equal(t, 1, env.ResizeListeners())
	})

	t.Run("follows resize events", func(t *testing.T) {
		t.Parallel()
		env := viewportguard.NewMemoryEnvironment(1280, "/")
		teardown := viewportguard.Setup(env)
		defer teardown()
		assert.Empty(t, env.Navigations())

		env.Resize(700)
		assert.Equal(t, "/mobile-not-supported", env.CurrentPath())

		env.Resize(600)
		assert.Len(t, env.Navigations(), 1, "already on unsupported page")

		env.Resize(1200)
		assert.Equal(t, []string{"/mobile-not-supported", "/"}, env.Navigations())
	})

	t.Run("teardown stops navigation", func(t *testing.T) {
		t.Parallel()
		env := viewportguard.NewMemoryEnvironment(1280, "/")
		teardown := viewportguard.Setup(env)

		teardown()
		teardown()
		assert.Equal(t, 0, env.ResizeListeners())

		env.Resize(500)
		env.Resize(1500)
		assert.Empty(t, env.Navigations())
	})
}

func TestGuard_MountIsIdempotent(t *testing.T) {
	t.Parallel()

	env := viewportguard.NewMemoryEnvironment(1280, "/")
	g := viewportguard.New(env)

	first := g.Mount()
	second := g.Mount()
	assert.True(t, g.Mounted())
	assert.Equal(t, 1, env.ResizeListeners())

	env.Resize(700)
	assert.Equal(t, []string{"/mobile-not-supported"}, env.Navigations(), "one listener, one navigation")

	second()
	assert.False(t, g.Mounted())
	first()
	assert.Equal(t, 0, env.ResizeListeners())
}

func TestGuard_StaleTeardown(t *testing.T) {
	t.Parallel()

	env := viewportguard.NewMemoryEnvironment(1280, "/")
	g := viewportguard.New(env)

	stale := g.Mount()
	stale()
	current := g.Mount()

	stale()
	assert.True(t, g.Mounted(), "teardown from an earlier mount must not unmount")
	assert.Equal(t, 1, env.ResizeListeners())

	current()
	assert.False(t, g.Mounted())
}

func TestGuard_RepeatedCycles(t *testing.T) {
	t.Parallel()

	env := viewportguard.NewMemoryEnvironment(1280, "/")
	g := viewportguard.New(env)

	for range 5 {
		teardown := g.Mount()
		assert.Equal(t, 1, env.ResizeListeners())
		teardown()
		assert.Equal(t, 0, env.ResizeListeners())
	}

	g.Unmount()
	assert.False(t, g.Mounted())
}
