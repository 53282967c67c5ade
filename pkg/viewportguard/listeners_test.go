package viewportguard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mobilegate/pkg/viewportguard"
)

func TestListeners(t *testing.T) {
	t.Parallel()

	var l viewportguard.Listeners
	var calls []string

	removeA := l.Add(func() { calls = append(calls, "a") })
	l.Add(func() { calls = append(calls, "b") })
	assert.Equal(t, 2, l.Len())

	l.Emit()
	assert.Equal(t, []string{"a", "b"}, calls)

	removeA()
	removeA()
	assert.Equal(t, 1, l.Len())

	calls = nil
	l.Emit()
	assert.Equal(t, []string{"b"}, calls)
}

func TestListeners_RemoveDuringEmit(t *testing.T) {
	t.Parallel()

	var l viewportguard.Listeners
	count := 0
	var remove func()
	remove = l.Add(func() {
		count++
		remove()
	})

	l.Emit()
	l.Emit()
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, l.Len())
}
