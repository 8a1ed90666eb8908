package calendar

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/kasa/kasa-web/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

// EventLookup is the read side of the store used by grid building.
type EventLookup interface {
	EventsOn(date Date) []Event
}

// Store owns the ordered list of events. Reads and writes are serialized;
// callers never see the backing slice.
type Store struct {
	mu     sync.RWMutex
	events []Event
	bus    *event_bus.EventBus
}

// NewStore creates an empty store. bus may be nil.
func NewStore(bus *event_bus.EventBus) *Store {
	return &Store{bus: bus}
}

// Add appends a new event. Duplicate titles and dates are allowed.
func (s *Store) Add(date Date, title, description string) Event {
	event := Event{
		ID:          uuid.New(),
		Date:        date,
		Title:       title,
		Description: description,
	}

	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()

	log.Debugf("calendar event added: %s %s", event.ID, event.Date)
	s.publish(event_bus.CalendarEventAdded, event)
	return event
}

// Remove deletes the event with the given id and reports whether it existed.
func (s *Store) Remove(id uuid.UUID) bool {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	removed := s.events[idx]
	s.events = slices.Delete(s.events, idx, idx+1)
	s.mu.Unlock()

	s.publish(event_bus.CalendarEventRemoved, removed)
	return true
}

// Update replaces the fields of the event with the given id in place.
func (s *Store) Update(id uuid.UUID, date Date, title, description string) bool {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.events[idx].Date = date
	s.events[idx].Title = title
	s.events[idx].Description = description
	updated := s.events[idx]
	s.mu.Unlock()

	s.publish(event_bus.CalendarEventUpdated, updated)
	return true
}

func (s *Store) Get(id uuid.UUID) (Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Event{}, false
	}
	return s.events[idx], true
}

// EventsOn returns every event on date in insertion order. The result is
// never nil. A nil store holds no events.
func (s *Store) EventsOn(date Date) []Event {
	if s == nil {
		return []Event{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Event, 0)
	for _, e := range s.events {
		if e.Date == date {
			result = append(result, e)
		}
	}
	return result
}

// Upcoming returns at most limit events dated on or after from, earliest first.
// Events sharing a date keep insertion order.
func (s *Store) Upcoming(from Date, limit int) []Event {
	if s == nil || limit <= 0 {
		return []Event{}
	}

	s.mu.RLock()
	result := make([]Event, 0, len(s.events))
	for _, e := range s.events {
		if !e.Date.Before(from) {
			result = append(result, e)
		}
	}
	s.mu.RUnlock()

	slices.SortStableFunc(result, func(a, b Event) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case b.Date.Before(a.Date):
			return 1
		default:
			return 0
		}
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// All returns a copy of every event in insertion order.
func (s *Store) All() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// indexOf expects s.mu to be held.
func (s *Store) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.events, func(e Event) bool { return e.ID == id })
}

func (s *Store) publish(eventType event_bus.EventType, e Event) {
	if s.bus == nil {
		return
	}
	data := event_bus.CalendarEventChanged{ID: e.ID.String(), Date: e.Date.String(), Title: e.Title}
	if err := s.bus.Publish(event_bus.NewEvent(context.Background(), eventType, data)); err != nil {
		log.Errorf("failed to publish %s: %v", eventType, err)
	}
}
