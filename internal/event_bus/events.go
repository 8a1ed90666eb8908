package event_bus

import "time"

const (
	CalendarEventAdded   EventType = "calendar.event.added"
	CalendarEventUpdated EventType = "calendar.event.updated"
	CalendarEventRemoved EventType = "calendar.event.removed"
	SubscriptionStored   EventType = "subscription.stored"
	ContactSubmitted     EventType = "contact.submitted"
)

type CalendarEventChanged struct {
	ID    string
	Date  string
	Title string
}

type SubscriptionStoredData struct {
	Email              string
	EventNotifications bool
	WeeklyDigest       bool
	Timestamp          time.Time
}

type ContactSubmittedData struct {
	FirstName string
	LastName  string
	Email     string
}
