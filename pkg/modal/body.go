package modal

import "sync"

// Body is the page-level scroll lock. Locks are counted so a menu and a
// dialog can hold it at the same time; scrolling returns once every holder
// has unlocked.
type Body struct {
	mu    sync.Mutex
	count int
}

func NewBody() *Body {
	return &Body{}
}

func (b *Body) Lock() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.count++
}

// Unlock is a no-op when the body is not locked.
func (b *Body) Unlock() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.count > 0 {
		b.count--
	}
}

func (b *Body) Locked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count > 0
}
