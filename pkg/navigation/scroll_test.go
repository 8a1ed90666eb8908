package navigation

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingLock struct {
	unlocks atomic.Int32
}

func (c *countingLock) Lock()   {}
func (c *countingLock) Unlock() { c.unlocks.Add(1) }

func TestNavbarScrolled(t *testing.T) {
	assert.False(t, NavbarScrolled(0))
	assert.False(t, NavbarScrolled(50))
	assert.True(t, NavbarScrolled(51))
}

func TestScrollTarget(t *testing.T) {
	assert.Equal(t, 520, ScrollTarget(600, 80))
	assert.Equal(t, 536, ScrollTarget(600, 64))
	assert.Equal(t, 520, ScrollTarget(600, 0), "unknown height falls back to 80")
}

func TestViewport_ResizeIsDebounced(t *testing.T) {
	lock := &countingLock{}
	menu := NewMenu(lock)
	menu.Open()
	v := NewViewport(menu, 30*time.Millisecond)

	for range 5 {
		v.Resized()
		time.Sleep(5 * time.Millisecond)
	}
	assert.True(t, menu.IsOpen(), "still resizing")

	assert.Eventually(t, func() bool { return !menu.IsOpen() }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), lock.unlocks.Load())
}

func TestViewport_OrientationClosesAtOnce(t *testing.T) {
	menu := NewMenu(nil)
	menu.Open()
	v := NewViewport(menu, time.Hour)
	v.Resized()

	v.OrientationChanged()

	assert.False(t, menu.IsOpen())
}

func TestViewport_StopCancelsPendingResize(t *testing.T) {
	menu := NewMenu(nil)
	menu.Open()
	v := NewViewport(menu, 20*time.Millisecond)

	v.Resized()
	v.Stop()
	time.Sleep(60 * time.Millisecond)

	assert.True(t, menu.IsOpen())
}
