package modal

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Target is the element a click landed on. The zero value is no target.
type Target int

const (
	TargetNone Target = iota
	TargetOverlay
	TargetCloseButton
	TargetPanel
)

const KeyEscape = "Escape"

// ScrollLock blocks and restores scrolling of the page behind a dialog.
type ScrollLock interface {
	Lock()
	Unlock()
}

// Shell is the generic dialog container shared by the calendar, event detail
// and share dialogs. It only knows whether it is open.
type Shell struct {
	mu    sync.Mutex
	name  string
	state State
	lock  ScrollLock
}

// NewShell returns a closed shell. lock may be nil, in which case scrolling is
// left alone.
func NewShell(name string, lock ScrollLock) *Shell {
	return &Shell{name: name, lock: lock}
}

func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Shell) IsOpen() bool {
	return s.State() == Open
}

// Open reports whether the shell transitioned from closed to open.
func (s *Shell) Open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Open {
		return false
	}
	s.state = Open
	if s.lock != nil {
		s.lock.Lock()
	}
	log.Tracef("modal %s opened", s.name)
	return true
}

// Close reports whether the shell transitioned from open to closed.
func (s *Shell) Close() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Closed {
		return false
	}
	s.state = Closed
	if s.lock != nil {
		s.lock.Unlock()
	}
	log.Tracef("modal %s closed", s.name)
	return true
}

// HandleKey closes an open shell on Escape.
func (s *Shell) HandleKey(key string) bool {
	if key != KeyEscape {
		return false
	}
	return s.Close()
}

// HandleClick closes the shell for clicks on the overlay or the close button.
// Clicks inside the panel are ignored.
func (s *Shell) HandleClick(target Target) bool {
	switch target {
	case TargetOverlay, TargetCloseButton:
		return s.Close()
	default:
		return false
	}
}
