package contact

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kasa/kasa-web/internal/event_bus"
	"github.com/kasa/kasa-web/internal/utils"
	"github.com/kasa/kasa-web/pkg/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		message Message
		wantErr error
	}{
		{"valid", Message{FirstName: "Ada", LastName: "Obi", Email: "ada@kent.edu"}, nil},
		{"missing first name", Message{LastName: "Obi", Email: "ada@kent.edu"}, ErrMissingFields},
		{"blank last name", Message{FirstName: "Ada", LastName: "  ", Email: "ada@kent.edu"}, ErrMissingFields},
		{"missing email", Message{FirstName: "Ada", LastName: "Obi"}, ErrMissingFields},
		{"invalid email", Message{FirstName: "Ada", LastName: "Obi", Email: "ada@kent"}, ErrInvalidEmail},
		{"missing beats invalid", Message{LastName: "Obi", Email: "ada"}, ErrMissingFields},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.message.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestErrors_AreLowercaseWithoutPunctuation(t *testing.T) {
	for _, err := range []error{ErrMissingFields, ErrInvalidEmail} {
		msg := err.Error()
		assert.Equal(t, strings.ToLower(msg[:1]), msg[:1], msg)
		assert.False(t, strings.HasSuffix(msg, "."), msg)
	}
}

func TestUserMessage(t *testing.T) {
	msg, ok := UserMessage(fmt.Errorf("submit: %w", ErrMissingFields))
	assert.True(t, ok)
	assert.Equal(t, "Please fill in all required fields.", msg)

	msg, ok = UserMessage(ErrInvalidEmail)
	assert.True(t, ok)
	assert.Equal(t, "Please enter a valid email address.", msg)

	_, ok = UserMessage(errors.New("bus closed"))
	assert.False(t, ok)
}

func TestService_SubmitPublishes(t *testing.T) {
	bus := event_bus.NewEventBus()
	var got []event_bus.ContactSubmittedData
	event_bus.SubscribeTyped(bus, event_bus.ContactSubmitted, func(e event_bus.EventT[event_bus.ContactSubmittedData]) error {
		got = append(got, e.Data)
		return nil
	})
	service := NewService(bus)

	require.NoError(t, service.Submit(context.Background(), Message{FirstName: " Ada", LastName: "Obi", Email: "ada@kent.edu"}))
	assert.Error(t, service.Submit(context.Background(), Message{FirstName: "Ada"}))

	assert.Equal(t, []event_bus.ContactSubmittedData{{FirstName: "Ada", LastName: "Obi", Email: "ada@kent.edu"}}, got)
}

func setupHandler(t *testing.T) (*Handler, *notification.Center) {
	t.Helper()
	bus := event_bus.NewEventBus()
	center := notification.NewCenter(&utils.MockClock{FixedNow: time.Date(2025, time.October, 3, 9, 0, 0, 0, time.UTC)}, 0)
	center.Listen(bus)
	return NewHandler(NewService(bus), center), center
}

func TestHandler_Submit(t *testing.T) {
	handler, center := setupHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"firstName":"Ada","lastName":"Obi","email":"ada@kent.edu","message":"Hello"}`))
	w := httptest.NewRecorder()

	handler.Submit(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "We'll get back to you soon.")
	active := center.Active()
	require.Len(t, active, 1)
	assert.Equal(t, notification.TypeSuccess, active[0].Type)
	assert.Equal(t, notification.MsgContactThanks, active[0].Message)
}

func TestHandler_SubmitInvalid(t *testing.T) {
	tests := []struct {
		body    string
		message string
	}{
		{`{"firstName":"Ada","email":"ada@kent.edu"}`, MsgMissingFields},
		{`{"firstName":"Ada","lastName":"Obi","email":"ada.kent.edu"}`, MsgInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			handler, center := setupHandler(t)
			w := httptest.NewRecorder()

			handler.Submit(w, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			active := center.Active()
			require.Len(t, active, 1)
			assert.Equal(t, notification.TypeError, active[0].Type)
			assert.Equal(t, tt.message, active[0].Message)
		})
	}
}
