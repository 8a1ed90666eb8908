package calendar

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrTitleRequired = errors.New("event title is required")
)

// Event is one calendar entry. ID is assigned by the Store and is the only lookup key.
type Event struct {
	ID          uuid.UUID
	Date        Date
	Title       string
	Description string
}

// Draft carries the user-editable fields of an Event.
type Draft struct {
	Date        Date
	Title       string
	Description string
}

func (d Draft) Validate() error {
	if d.Date.IsZero() {
		return errors.New("event date is required")
	}
	if d.Title == "" {
		return ErrTitleRequired
	}
	return nil
}
