package faq

import "sync"

// Accordion keeps at most one FAQ item open.
type Accordion struct {
	mu     sync.Mutex
	size   int
	active int
}

func NewAccordion(size int) *Accordion {
	return &Accordion{size: size, active: -1}
}

// Toggle closes every item and opens i unless i was the open one.
// Out of range indexes are ignored.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= a.size {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.active == i {
		a.active = -1
		return
	}
	a.active = i
}

// Active returns the open item, or false when all are closed.
func (a *Accordion) Active() (int, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active, a.active >= 0
}

func (a *Accordion) IsOpen(i int) bool {
	idx, ok := a.Active()
	return ok && idx == i
}
