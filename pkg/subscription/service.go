package subscription

import (
	"context"
	"fmt"

	"github.com/kasa/kasa-web/internal/event_bus"
	"github.com/kasa/kasa-web/internal/utils"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Subscribe(ctx context.Context, form Form) (Subscription, error)
}

type ServiceImpl struct {
	repo     Repository
	key      string
	clock    utils.Clock
	eventBus *event_bus.EventBus
}

// NewService writes every subscription under key. eventBus may be nil.
func NewService(repo Repository, key string, clock utils.Clock, eventBus *event_bus.EventBus) *ServiceImpl {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &ServiceImpl{repo: repo, key: key, clock: clock, eventBus: eventBus}
}

// Subscribe validates the form and replaces whatever was stored before.
func (s *ServiceImpl) Subscribe(ctx context.Context, form Form) (Subscription, error) {
	if err := form.Validate(); err != nil {
		return Subscription{}, err
	}

	sub := Subscription{
		Email:              form.Email,
		EventNotifications: form.EventNotifications,
		WeeklyDigest:       form.WeeklyDigest,
		Timestamp:          s.clock.Now().UTC(),
	}
	if err := s.repo.Store(ctx, s.key, sub); err != nil {
		return Subscription{}, fmt.Errorf("failed to store subscription: %w", err)
	}
	log.Debugf("subscription stored under %s", s.key)

	if s.eventBus != nil {
		err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.SubscriptionStored, event_bus.SubscriptionStoredData{
			Email:              sub.Email,
			EventNotifications: sub.EventNotifications,
			WeeklyDigest:       sub.WeeklyDigest,
			Timestamp:          sub.Timestamp,
		}))
		if err != nil {
			log.Errorf("failed to publish subscription stored event: %v", err)
		}
	}
	return sub, nil
}
