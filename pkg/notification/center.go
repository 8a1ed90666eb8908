package notification

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kasa/kasa-web/internal/event_bus"
	"github.com/kasa/kasa-web/internal/utils"
	log "github.com/sirupsen/logrus"
)

const DefaultTTL = 4 * time.Second

const (
	MsgSubscribed    = "Thank you for subscribing! You'll receive updates about upcoming KASA events."
	MsgContactThanks = "Thank you for your message! We'll get back to you soon."
)

// Center keeps the notifications that have not expired yet.
type Center struct {
	mu     sync.Mutex
	clock  utils.Clock
	ttl    time.Duration
	active []Notification
}

func NewCenter(clock utils.Clock, ttl time.Duration) *Center {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{clock: clock, ttl: ttl}
}

func (c *Center) Show(message string, t Type) Notification {
	if t == "" {
		t = TypeInfo
	}
	now := c.clock.Now()
	n := Notification{
		ID:        uuid.New(),
		Message:   message,
		Type:      t,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}

	c.mu.Lock()
	c.active = append(c.active, n)
	c.mu.Unlock()

	log.Debugf("notification %s (%s): %s", n.ID, n.Type, n.Message)
	return n
}

// Notify shows an info notification.
func (c *Center) Notify(message string) {
	c.Show(message, TypeInfo)
}

// Active prunes expired notifications and returns the rest, oldest first.
func (c *Center) Active() []Notification {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = slices.DeleteFunc(c.active, func(n Notification) bool { return n.Expired(now) })
	return slices.Clone(c.active)
}

// Dismiss removes a notification before it expires.
func (c *Center) Dismiss(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.IndexFunc(c.active, func(n Notification) bool { return n.ID == id })
	if idx < 0 {
		return false
	}
	c.active = slices.Delete(c.active, idx, idx+1)
	return true
}

// Listen shows a success notification for every stored subscription and
// submitted contact form. The returned function removes both subscriptions.
func (c *Center) Listen(bus *event_bus.EventBus) (unsubscribe func()) {
	unsubStored := event_bus.SubscribeTyped(bus, event_bus.SubscriptionStored,
		func(e event_bus.EventT[event_bus.SubscriptionStoredData]) error {
			c.Show(MsgSubscribed, TypeSuccess)
			return nil
		})
	unsubContact := event_bus.SubscribeTyped(bus, event_bus.ContactSubmitted,
		func(e event_bus.EventT[event_bus.ContactSubmittedData]) error {
			c.Show(MsgContactThanks, TypeSuccess)
			return nil
		})
	return func() {
		unsubStored()
		unsubContact()
	}
}
