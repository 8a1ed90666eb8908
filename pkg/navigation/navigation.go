package navigation

import (
	"sync"

	"github.com/kasa/kasa-web/pkg/modal"
)

const (
	// SwipeThreshold is how far, in pixels, an upward swipe must travel to close the menu.
	SwipeThreshold = 50
	// ScrollOffset is added to the scroll position before picking the active section.
	ScrollOffset = 100
)

var sectionNames = map[string]string{
	"home":    "Welcome",
	"about":   "About Us",
	"events":  "Our Events",
	"contact": "Contact",
}

// SectionLabel is the text of the section indicator. Unknown ids show Welcome.
func SectionLabel(id string) string {
	name, ok := sectionNames[id]
	if !ok {
		name = sectionNames["home"]
	}
	return "Section: " + name
}

type Section struct {
	ID     string
	Top    int
	Height int
}

// ActiveSection returns the id of the section containing scrollY+ScrollOffset.
// When sections overlap the last match wins.
func ActiveSection(scrollY int, sections []Section) (string, bool) {
	pos := scrollY + ScrollOffset
	active, found := "", false
	for _, s := range sections {
		if pos >= s.Top && pos < s.Top+s.Height {
			active, found = s.ID, true
		}
	}
	return active, found
}

// Menu is the mobile navigation menu. While open it holds the page scroll lock.
type Menu struct {
	mu         sync.Mutex
	open       bool
	lock       modal.ScrollLock
	touchStart int
}

// NewMenu returns a closed menu. lock may be nil.
func NewMenu(lock modal.ScrollLock) *Menu {
	return &Menu{lock: lock}
}

func (m *Menu) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *Menu) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setOpen(true)
}

func (m *Menu) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setOpen(false)
}

func (m *Menu) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setOpen(!m.open)
	return m.open
}

// HandleKey closes the menu on Escape.
func (m *Menu) HandleKey(key string) {
	if key == modal.KeyEscape {
		m.Close()
	}
}

// HandleOutsideClick closes the menu when a click lands outside both the
// menu and its toggle button.
func (m *Menu) HandleOutsideClick(insideMenu, onToggle bool) {
	if !insideMenu && !onToggle {
		m.Close()
	}
}

// LinkFollowed closes the menu after a navigation link is used.
func (m *Menu) LinkFollowed() {
	m.Close()
}

// ViewportChanged closes the menu on resize or orientation change.
func (m *Menu) ViewportChanged() {
	m.Close()
}

func (m *Menu) TouchStart(y int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touchStart = y
}

// TouchEnd closes the menu when the finger moved up by more than SwipeThreshold.
func (m *Menu) TouchEnd(y int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.touchStart-y > SwipeThreshold {
		m.setOpen(false)
	}
}

// setOpen expects m.mu to be held.
func (m *Menu) setOpen(open bool) {
	if m.open == open {
		return
	}
	m.open = open
	if m.lock == nil {
		return
	}
	if open {
		m.lock.Lock()
	} else {
		m.lock.Unlock()
	}
}
