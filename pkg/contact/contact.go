package contact

import (
	"context"
	"errors"
	"strings"

	"github.com/kasa/kasa-web/internal/event_bus"
	"github.com/kasa/kasa-web/pkg/subscription"
	log "github.com/sirupsen/logrus"
)

var (
	ErrMissingFields = errors.New("required contact fields are missing")
	ErrInvalidEmail  = errors.New("contact email is invalid")
)

const (
	MsgMissingFields = "Please fill in all required fields."
	MsgInvalidEmail  = "Please enter a valid email address."
)

// UserMessage maps a validation error onto the text shown to the visitor.
// It reports false for errors that are not validation failures.
func UserMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrMissingFields):
		return MsgMissingFields, true
	case errors.Is(err, ErrInvalidEmail):
		return MsgInvalidEmail, true
	}
	return "", false
}

type Message struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Subject   string
	Body      string
}

// Validate trims the required fields. Missing fields are reported before a
// malformed email.
func (m *Message) Validate() error {
	m.FirstName = strings.TrimSpace(m.FirstName)
	m.LastName = strings.TrimSpace(m.LastName)
	m.Email = strings.TrimSpace(m.Email)

	if m.FirstName == "" || m.LastName == "" || m.Email == "" {
		return ErrMissingFields
	}
	if !subscription.IsValidEmail(m.Email) {
		return ErrInvalidEmail
	}
	return nil
}

type Service struct {
	eventBus *event_bus.EventBus
}

func NewService(eventBus *event_bus.EventBus) *Service {
	return &Service{eventBus: eventBus}
}

// Submit validates m and announces it on the bus. Nothing is stored.
func (s *Service) Submit(ctx context.Context, m Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	log.Infof("contact message from %s %s", m.FirstName, m.LastName)

	if s.eventBus == nil {
		return nil
	}
	err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.ContactSubmitted, event_bus.ContactSubmittedData{
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
	}))
	if err != nil {
		log.Errorf("failed to publish contact submitted event: %v", err)
	}
	return nil
}
