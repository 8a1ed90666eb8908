package navigation

import (
	"sync"
	"time"
)

const (
	// NavbarScrollThreshold is the scroll position past which the navbar shows its scrolled style.
	NavbarScrollThreshold = 50
	// DefaultNavbarHeight is used when the navbar height is unknown.
	DefaultNavbarHeight = 80
	// ResizeDebounce is how long resizes must pause before the viewport is treated as changed.
	ResizeDebounce = 250 * time.Millisecond
)

func NavbarScrolled(scrollY int) bool {
	return scrollY > NavbarScrollThreshold
}

// ScrollTarget is where the page scrolls to so that a section starting at top
// lands just below the fixed navbar.
func ScrollTarget(top, navbarHeight int) int {
	if navbarHeight <= 0 {
		navbarHeight = DefaultNavbarHeight
	}
	return top - navbarHeight
}

// Viewport closes the menu when the viewport changes. Orientation changes
// apply at once; resizes are debounced.
type Viewport struct {
	mu    sync.Mutex
	menu  *Menu
	wait  time.Duration
	timer *time.Timer
}

// NewViewport returns a Viewport for menu. A non-positive wait uses ResizeDebounce.
func NewViewport(menu *Menu, wait time.Duration) *Viewport {
	if wait <= 0 {
		wait = ResizeDebounce
	}
	return &Viewport{menu: menu, wait: wait}
}

// Resized restarts the debounce timer.
func (v *Viewport) Resized() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.timer != nil {
		v.timer.Stop()
	}
	v.timer = time.AfterFunc(v.wait, v.menu.ViewportChanged)
}

func (v *Viewport) OrientationChanged() {
	v.Stop()
	v.menu.ViewportChanged()
}

// Stop cancels a pending resize.
func (v *Viewport) Stop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
}
