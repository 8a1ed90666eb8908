package calendar

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kasa/kasa-web/internal/event_bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(nil)
	store.Add(NewDate(2025, time.November, 15), "Culture Night", "")
	store.Add(NewDate(2025, time.September, 20), "Welcome Back Mixer", "")
	store.Add(NewDate(2025, time.October, 11), "Homecoming Day", "first")
	store.Add(NewDate(2025, time.October, 11), "Homecoming Day", "second")
	store.Add(NewDate(2025, time.December, 6), "End of Semester", "")
	return store
}

func TestStore_EventsOn(t *testing.T) {
	store := seedStore(t)

	found := store.EventsOn(NewDate(2025, time.October, 11))

	require.Len(t, found, 2)
	assert.Equal(t, "first", found[0].Description)
	assert.Equal(t, "second", found[1].Description)
	for _, e := range found {
		assert.Equal(t, NewDate(2025, time.October, 11), e.Date)
	}
}

func TestStore_EventsOnEmptyDate(t *testing.T) {
	store := seedStore(t)

	found := store.EventsOn(NewDate(2025, time.October, 12))

	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestStore_Upcoming(t *testing.T) {
	store := seedStore(t)
	today := NewDate(2025, time.October, 1)

	upcoming := store.Upcoming(today, 3)

	require.Len(t, upcoming, 3)
	for i, e := range upcoming {
		assert.False(t, e.Date.Before(today), e.Title)
		if i > 0 {
			assert.False(t, e.Date.Before(upcoming[i-1].Date), "sorted ascending")
		}
	}
	assert.Equal(t, "first", upcoming[0].Description)
	assert.Equal(t, "second", upcoming[1].Description)
	assert.Equal(t, "Culture Night", upcoming[2].Title)
}

func TestStore_UpcomingIncludesToday(t *testing.T) {
	store := seedStore(t)

	upcoming := store.Upcoming(NewDate(2025, time.December, 6), 3)

	require.Len(t, upcoming, 1)
	assert.Equal(t, "End of Semester", upcoming[0].Title)
}

func TestStore_UpcomingNonPositiveLimit(t *testing.T) {
	store := seedStore(t)

	assert.Empty(t, store.Upcoming(NewDate(2000, time.January, 1), 0))
	assert.Empty(t, store.Upcoming(NewDate(2000, time.January, 1), -1))
}

func TestStore_DuplicateTitlesUpdateById(t *testing.T) {
	store := NewStore(nil)
	a := store.Add(NewDate(2025, time.October, 11), "Homecoming Day", "a")
	b := store.Add(NewDate(2025, time.October, 11), "Homecoming Day", "b")

	ok := store.Update(b.ID, NewDate(2025, time.October, 12), "Homecoming Day", "moved")

	require.True(t, ok)
	gotA, _ := store.Get(a.ID)
	gotB, _ := store.Get(b.ID)
	assert.Equal(t, "a", gotA.Description)
	assert.Equal(t, NewDate(2025, time.October, 11), gotA.Date)
	assert.Equal(t, "moved", gotB.Description)
	assert.Equal(t, NewDate(2025, time.October, 12), gotB.Date)
}

func TestStore_RemoveById(t *testing.T) {
	store := NewStore(nil)
	a := store.Add(NewDate(2025, time.October, 11), "Homecoming Day", "a")
	b := store.Add(NewDate(2025, time.October, 11), "Homecoming Day", "b")

	assert.True(t, store.Remove(a.ID))
	assert.False(t, store.Remove(a.ID))
	assert.Equal(t, []Event{b}, store.All())
}

func TestStore_UnknownId(t *testing.T) {
	store := seedStore(t)

	assert.False(t, store.Update(uuid.New(), NewDate(2025, time.October, 1), "x", ""))
	assert.False(t, store.Remove(uuid.New()))
	_, found := store.Get(uuid.New())
	assert.False(t, found)
	assert.Equal(t, 5, store.Len())
}

func TestStore_AllReturnsCopy(t *testing.T) {
	store := seedStore(t)

	all := store.All()
	all[0].Title = "changed"

	assert.Equal(t, "Culture Night", store.All()[0].Title)
}

func TestStore_PublishesChanges(t *testing.T) {
	bus := event_bus.NewEventBus()
	var got []event_bus.EventType
	for _, et := range []event_bus.EventType{event_bus.CalendarEventAdded, event_bus.CalendarEventUpdated, event_bus.CalendarEventRemoved} {
		event_bus.SubscribeTyped(bus, et, func(e event_bus.EventT[event_bus.CalendarEventChanged]) error {
			got = append(got, e.Type)
			assert.Equal(t, "Homecoming Day", e.Data.Title)
			return nil
		})
	}
	store := NewStore(bus)

	e := store.Add(NewDate(2025, time.October, 11), "Homecoming Day", "")
	store.Update(e.ID, NewDate(2025, time.October, 11), "Homecoming Day", "updated")
	store.Remove(e.ID)

	assert.Equal(t, []event_bus.EventType{
		event_bus.CalendarEventAdded,
		event_bus.CalendarEventUpdated,
		event_bus.CalendarEventRemoved,
	}, got)
}
