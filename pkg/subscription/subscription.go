package subscription

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrEmailRequired        = errors.New("email is required")
	ErrInvalidEmail         = errors.New("please enter a valid email address")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether email has the local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Form is what the visitor submits.
type Form struct {
	Email              string
	EventNotifications bool
	WeeklyDigest       bool
}

// Subscription is the object written under the storage key.
type Subscription struct {
	Email              string    `json:"email"`
	EventNotifications bool      `json:"eventNotifications"`
	WeeklyDigest       bool      `json:"weeklyDigest"`
	Timestamp          time.Time `json:"timestamp"`
}

// Validate trims the email and checks it is present and well formed.
func (f *Form) Validate() error {
	f.Email = strings.TrimSpace(f.Email)
	if f.Email == "" {
		return ErrEmailRequired
	}
	if !IsValidEmail(f.Email) {
		return ErrInvalidEmail
	}
	return nil
}
