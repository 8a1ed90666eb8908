package animation

import (
	"sync"
	"time"
)

const (
	// Threshold is the share of an element that must be inside the viewport to reveal it.
	Threshold = 0.1
	// BottomMargin shrinks the viewport from the bottom, in pixels.
	BottomMargin = 50
	// StaggerStep is added to the transition delay of each following element in a group.
	StaggerStep = 100 * time.Millisecond
)

type Effect string

const (
	FadeIn       Effect = "fade-in"
	SlideInLeft  Effect = "slide-in-left"
	SlideInRight Effect = "slide-in-right"
)

// Box is the vertical extent of an element in page coordinates.
type Box struct {
	ID     string
	Top    int
	Height int
}

// Element is an animated element. Visible never goes back to false.
type Element struct {
	Box
	Effect  Effect
	Delay   time.Duration
	Visible bool
}

// Revealer tracks animated elements and reveals them as they scroll into view.
type Revealer struct {
	mu       sync.Mutex
	elements []*Element
	byID     map[string]*Element
}

func NewRevealer() *Revealer {
	return &Revealer{byID: make(map[string]*Element)}
}

// Add registers a group of elements sharing an effect. The i-th element of
// the group waits i*StaggerStep before its transition starts. Ids already
// registered are ignored.
func (r *Revealer) Add(effect Effect, boxes ...Box) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range boxes {
		if _, ok := r.byID[b.ID]; ok {
			continue
		}
		e := &Element{Box: b, Effect: effect, Delay: time.Duration(i) * StaggerStep}
		r.elements = append(r.elements, e)
		r.byID[b.ID] = e
	}
}

// Scrolled checks every hidden element against the viewport
// [scrollY, scrollY+viewportHeight-BottomMargin) and returns the ids revealed by this call.
func (r *Revealer) Scrolled(scrollY, viewportHeight int) []string {
	top := scrollY
	bottom := scrollY + viewportHeight - BottomMargin

	r.mu.Lock()
	defer r.mu.Unlock()
	revealed := make([]string, 0)
	for _, e := range r.elements {
		if e.Visible || !intersects(e.Box, top, bottom) {
			continue
		}
		e.Visible = true
		revealed = append(revealed, e.ID)
	}
	return revealed
}

func (r *Revealer) Element(id string) (Element, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byID[id]
	if !ok {
		return Element{}, false
	}
	return *e, true
}

func (r *Revealer) Visible(id string) bool {
	e, ok := r.Element(id)
	return ok && e.Visible
}

func intersects(b Box, top, bottom int) bool {
	if bottom <= top {
		return false
	}
	if b.Height <= 0 {
		return b.Top >= top && b.Top < bottom
	}
	overlap := min(b.Top+b.Height, bottom) - max(b.Top, top)
	if overlap <= 0 {
		return false
	}
	return float64(overlap)/float64(b.Height) >= Threshold
}
